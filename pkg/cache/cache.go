// Package cache provides pluggable result caching for the CLI and preview
// server. Computed layouts and rendered artifacts are keyed by content
// hashes so that an unchanged deck, options, and viewport hit the cache.
//
// Three backends are provided: a file cache for local CLI usage, a Redis
// cache for shared setups, and a null cache that disables caching entirely.
// All backends implement the same Cache interface.
//
// # Key Structure
//
// Keys are generated through a Keyer and follow the form prefix:hash. The
// layout key hashes the deck content hash together with the layout options
// and viewport; the render key hashes a layout hash with the render format.
package cache

import (
	"context"
	"strings"
	"time"
)

// TTL defaults per key type.
const (
	// TTLLayout is how long computed layouts stay cached.
	TTLLayout = 24 * time.Hour

	// TTLRender is how long rendered artifacts stay cached. Renders are
	// derived purely from a layout hash, so they can live longer.
	TTLRender = 7 * 24 * time.Hour
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The boolean reports whether the key was found;
	// a miss is not an error.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores a value with a time-to-live. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// keyType extracts the prefix of a structured cache key for metrics.
func keyType(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return "unknown"
}
