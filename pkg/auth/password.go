package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// CheckPassword verifies the submitted password against the configured
// credential: a bcrypt hash when one is set, otherwise a constant-time
// comparison against the plain shared password. Returns false when
// neither credential is configured.
func CheckPassword(password, plain, hash string) bool {
	if hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}
	if plain == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(plain)) == 1
}
