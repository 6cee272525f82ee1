// Package cache stores serialized strategy results.
//
// All backends implement [Cache]: a byte-oriented key/value store with
// per-entry expiration. The pipeline keys entries with a [Keyer], so the
// same tiling and strategy options always map to the same key.
//
// Backends:
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [RedisCache]: a shared Redis instance
//   - [MongoCache]: a MongoDB collection with a TTL index
//   - [BadgerCache]: an embedded Badger database
//   - [NullCache]: stores nothing
package cache

import (
	"context"
	"time"
)

// TTLRule is how long a computed rule stays cached. Rules are pure
// functions of their input, so this only bounds the size of the cache.
const TTLRule = 30 * 24 * time.Hour

// Cache is a key/value store for serialized results.
type Cache interface {
	// Get returns the value stored under key. A missing or expired entry
	// is reported as a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A non-positive ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}

// Clearer is implemented by backends that can drop every entry they own.
type Clearer interface {
	// Clear removes all entries and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}
