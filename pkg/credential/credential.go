package credential

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Digest returns the hex-encoded SHA-256 digest of a plaintext credential.
// Seeded identities store passwords in this form.
func Digest(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// Verify compares a plaintext credential against a stored hex digest.
func Verify(plaintext, storedHex string) bool {
	return subtle.ConstantTimeCompare([]byte(Digest(plaintext)), []byte(storedHex)) == 1
}
