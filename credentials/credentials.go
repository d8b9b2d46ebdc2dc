// Package credentials implements timing-safe verification of the shared
// admin secret.
package credentials

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Compare reports whether provided equals expected. Length is not treated as
// secret and may short-circuit the check; once lengths match, every byte is
// consumed regardless of where the inputs first differ, so response latency
// reveals nothing about the expected value.
func Compare(provided, expected string) bool {
	if len(provided) != len(expected) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) == 1
}

// CompareHash checks provided against a bcrypt hash of the expected secret,
// for deployments that configure a hashed admin key rather than the
// plaintext value.
func CompareHash(provided, expectedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(expectedHash), []byte(provided)) == nil
}

// HashKey produces a bcrypt hash suitable for the hashed-key configuration.
func HashKey(key string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	return string(bytes), err
}
