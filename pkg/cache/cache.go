// Package cache provides local caching of generated models and rendered
// artifacts. Keys are derived from a content hash of the generation inputs,
// so repeated runs with an unchanged configuration can skip regeneration
// while any geometry or section change produces a fresh entry.
package cache

import (
	"context"
	"time"
)

// Entry lifetimes. Models are cheap to regenerate, so both tiers expire
// after a day rather than accumulating stale geometry on disk.
const (
	TTLModel    = 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Cache is the storage interface used by the pipeline.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present (and unexpired).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
