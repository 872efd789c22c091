// Package cache provides artifact caching for rendered clouds.
//
// Computing a layout and rasterizing it is cheap for small clouds but adds
// up for large documents and for the preview server, which re-renders on
// every request. The cache stores rendered artifacts keyed by a hash of the
// input words and render options, with pluggable backends:
//   - file: on-disk cache for CLI usage
//   - null: disabled caching
//   - redis: shared cache for server deployments
//   - mongo: shared cache where an existing MongoDB is the operational store
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with optional TTL.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Lister is implemented by backends that can enumerate their keys.
// The CLI cache command uses it for inspection.
type Lister interface {
	Keys(ctx context.Context) ([]string, error)
}

// ScopedCache prefixes every key, isolating namespaces that share one
// backend (for example per-format artifacts in one Redis instance).
type ScopedCache struct {
	inner  Cache
	prefix string
}

// NewScopedCache wraps inner so all keys carry the given prefix.
func NewScopedCache(inner Cache, prefix string) *ScopedCache {
	return &ScopedCache{inner: inner, prefix: prefix}
}

// Get retrieves the prefixed key from the inner cache.
func (c *ScopedCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return c.inner.Get(ctx, c.prefix+key)
}

// Set stores the value under the prefixed key.
func (c *ScopedCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.inner.Set(ctx, c.prefix+key, data, ttl)
}

// Delete removes the prefixed key.
func (c *ScopedCache) Delete(ctx context.Context, key string) error {
	return c.inner.Delete(ctx, c.prefix+key)
}

// Close closes the inner cache.
func (c *ScopedCache) Close() error {
	return c.inner.Close()
}

var _ Cache = (*ScopedCache)(nil)
