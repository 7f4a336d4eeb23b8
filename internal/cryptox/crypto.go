// Package cryptox implements the credential-hashing primitives: salt
// generation and the salted password digest stored for each user.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// SaltLength is the number of random bytes in a freshly generated salt.
// The stored hex form is twice as long.
const SaltLength = 16

// GenerateSalt returns length cryptographically random bytes, hex-encoded.
// A salt is generated once at signup and never rotated for that user.
func GenerateSalt(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// HashPassword computes the hex-encoded SHA-256 digest of password
// concatenated with salt. The concatenation carries no delimiter:
// stored hashes from earlier deployments were produced this way and
// must keep verifying.
func HashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}
