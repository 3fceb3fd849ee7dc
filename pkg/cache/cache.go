// Package cache provides the key/value store used to memoize normalized
// tweets between requests.
//
// The Cache interface is small: byte values under string keys with a
// per-entry TTL. Backends:
//   - memory: In-process store for single-instance deployments and tests
//   - redis: Redis-backed store for production multi-instance deployments
//   - mongo: MongoDB collection with a TTL index
//   - null: Disabled cache (no credentials configured)
//
// Keys must be pre-sanitized with [SanitizeKey] before use: the document
// stores forbid the characters `. $ # [ ] /` in key paths.
package cache

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for caching operations.
var (
	// ErrUnavailable is returned when a cache backend cannot be reached.
	ErrUnavailable = errors.New("cache unavailable")
)

// Cache is the interface for cache storage backends.
//
// Get returns (data, true, nil) on a hit, (nil, false, nil) on a miss, and
// a non-nil error only for backend failures. An expired entry is a miss.
// Set stores data under key for ttl; a ttl of 0 means no expiration.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
