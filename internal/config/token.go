// Package config - token.go provides bearer token hashing and
// verification for the AI-facing endpoints.
package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// TokenCost is the bcrypt cost used when hashing bearer tokens.
const TokenCost = 12

// HashToken hashes a bearer token for storage in configuration. The
// plaintext token is handed to the caller once and never persisted.
func HashToken(token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("token cannot be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(token), TokenCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash token: %w", err)
	}
	return string(hash), nil
}

// VerifyToken verifies a presented bearer token against the configured
// hash. Comparison time is independent of where the tokens differ.
func VerifyToken(token, storedHash string) bool {
	if token == "" || storedHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(token)) == nil
}
