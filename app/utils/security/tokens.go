package security

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// EditTokenBytes is the entropy of a generated edit token
const EditTokenBytes = 32

// GenerateEditToken returns a high-entropy URL-safe token. The clear token is
// shown to the submitter exactly once; only its digest is ever persisted.
func GenerateEditToken() (string, error) {
	buf := make([]byte, EditTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate edit token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// DigestToken returns the hex-encoded sha256 digest of a token
func DigestToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ContactLast4 returns the last four digits of a contact number, or the whole
// digit string when shorter. Non-digit characters are ignored.
func ContactLast4(contact string) string {
	digits := make([]rune, 0, len(contact))
	for _, r := range contact {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) <= 4 {
		return string(digits)
	}
	return string(digits[len(digits)-4:])
}
