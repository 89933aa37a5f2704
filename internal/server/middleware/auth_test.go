package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validatorAccepting(expected string) TokenValidator {
	return TokenValidatorFunc(func(token string) error {
		if token != expected {
			return fmt.Errorf("invalid token")
		}
		return nil
	})
}

func protectedHandler(t *testing.T) (http.Handler, *bool) {
	t.Helper()
	called := false
	handler := BearerAuth(validatorAccepting("good-token"))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			w.WriteHeader(http.StatusOK)
		}))
	return handler, &called
}

func TestBearerAuth_ValidToken(t *testing.T) {
	handler, called := protectedHandler(t)

	req := httptest.NewRequest("POST", "/generate", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
}

func TestBearerAuth_CaseInsensitivePrefix(t *testing.T) {
	handler, _ := protectedHandler(t)

	req := httptest.NewRequest("POST", "/generate", nil)
	req.Header.Set("Authorization", "bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBearerAuth_MissingHeader(t *testing.T) {
	handler, called := protectedHandler(t)

	req := httptest.NewRequest("POST", "/generate", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestBearerAuth_WrongToken(t *testing.T) {
	handler, called := protectedHandler(t)

	req := httptest.NewRequest("POST", "/generate", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestBearerAuth_MalformedHeader(t *testing.T) {
	handler, _ := protectedHandler(t)

	for _, header := range []string{"good-token", "Bearer", "Basic abc", "Bearer a b"} {
		req := httptest.NewRequest("POST", "/generate", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header: %q", header)
	}
}

func TestExtractBearerToken(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "BEARER token-value")

	token, ok := ExtractBearerToken(req)
	require.True(t, ok)
	assert.Equal(t, "token-value", token)
}
