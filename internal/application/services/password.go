package services

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the lowercase hex SHA-256 digest of the plaintext.
// The digest is unsalted; stored hashes are directly comparable, which the
// combined credential lookup relies on.
func HashPassword(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether the candidate plaintext hashes to the
// stored digest. Pure; no I/O.
func VerifyPassword(storedDigest, candidate string) bool {
	return HashPassword(candidate) == storedDigest
}
