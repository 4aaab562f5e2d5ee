// Package auth implements the admin session: an HMAC-signed token in a
// cookie, issued after a shared-password check. There is a single
// operator identity; this is deliberately placeholder-grade access
// control for an internal dashboard.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
)

const sessionCookieName = "consult_session"
const minSecretLen = 32

// OperatorSubject is the subject signed into every admin session token.
const OperatorSubject = "operator"

// SessionCookieName returns the name of the admin session cookie.
func SessionCookieName() string {
	return sessionCookieName
}

// CreateSessionToken signs the subject with the session secret and
// returns base64(subject).hex(hmac).
func CreateSessionToken(subject string, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(subject))
	sig := hex.EncodeToString(mac.Sum(nil))
	return base64.URLEncoding.EncodeToString([]byte(subject)) + "." + sig
}

// VerifySessionToken validates a token and returns its subject.
func VerifySessionToken(token string, secret []byte) (string, error) {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return "", errors.New("invalid token format")
	}
	payload, err := base64.URLEncoding.DecodeString(parts[0])
	if err != nil {
		return "", err
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(parts[1])) {
		return "", errors.New("invalid signature")
	}
	return string(payload), nil
}

// SessionSecretBytes derives the signing key from the configured
// secret string, zero-padding to a 32-byte minimum.
func SessionSecretBytes(s string) []byte {
	b := []byte(s)
	if len(b) < minSecretLen {
		out := make([]byte, minSecretLen)
		copy(out, b)
		return out
	}
	return b
}
