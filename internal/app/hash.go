package app

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
)

// HashContent returns the hex SHA256 digest of content.
func HashContent(content []byte) string {
	h := sha256.Sum256(content)
	return hex.EncodeToString(h[:])
}

// sameContent reports whether the file at path already holds content.
// A missing or unreadable file never matches.
func sameContent(path string, content []byte) bool {
	existing, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	if len(existing) != len(content) {
		return false
	}
	return HashContent(existing) == HashContent(content)
}
