// Package cache provides the search-result cache used by the web verifier.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the interface shared by the memory, disk and layered stores
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key builds a namespaced cache key from a category and its payload
// (typically a search query).
func Key(category, payload string) string {
	hash := sha256.Sum256([]byte(payload))
	return "clarion:v1:" + category + ":" + hex.EncodeToString(hash[:])
}
