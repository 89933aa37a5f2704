// Package middleware provides HTTP middleware for bearer authentication.
package middleware

import (
	"net/http"
	"strings"
)

// TokenValidator checks a presented bearer credential. Implementations
// may verify a signed token or compare against a configured secret.
type TokenValidator interface {
	ValidateToken(tokenString string) error
}

// TokenValidatorFunc adapts a function to the TokenValidator interface.
type TokenValidatorFunc func(tokenString string) error

// ValidateToken calls the wrapped function.
func (f TokenValidatorFunc) ValidateToken(tokenString string) error {
	return f(tokenString)
}

// BearerAuth creates middleware that requires a valid bearer credential
// on every request it wraps.
func BearerAuth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := ExtractBearerToken(r)
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if err := validator.ValidateToken(token); err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ExtractBearerToken pulls the bearer credential out of the
// Authorization header. The "Bearer" prefix is matched
// case-insensitively.
func ExtractBearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
