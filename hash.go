package frontkit

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashText computes the SHA-256 hash of text. Whitespace is significant:
// two lines differing only in indentation translate to different lines.
func HashText(text string) string {
	hash := sha256.Sum256([]byte(text))
	return hex.EncodeToString(hash[:])
}

// CacheKey generates a cache key from a text hash and a dictionary fingerprint.
func CacheKey(hash, fingerprint string) string {
	return hash + ":" + fingerprint
}
