package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return fmt.Sprintf("%s:%s", prefix, Hash(data))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// KeyType returns the prefix of a key built by a Keyer, e.g. "report",
// stripping any scope prefix. Used as the label for cache hooks.
func KeyType(key string) string {
	end := strings.LastIndexByte(key, ':')
	if end < 0 {
		return "other"
	}
	return key[strings.LastIndexByte(key[:end], ':')+1 : end]
}
