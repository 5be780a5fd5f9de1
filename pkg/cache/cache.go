// Package cache stores solved search reports so repeated requests for the
// same problem definition and options skip the search.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under the user cache directory (CLI)
//   - [RedisCache]: shared cache for server deployments
//   - [NullCache]: never stores anything (--no-cache)
//
// # Keys
//
// Keys are derived from the definition hash and every option that changes the
// outcome of a search, via a [Keyer]:
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.ReportKey(def.Hash(), cache.ReportKeyOpts{Strategy: "astar"})
//
// Wrap a backend with [Instrument] to emit observability cache hooks.
package cache

import (
	"context"
	"time"
)

// TTLs for cached entries. Reports depend only on the definition and the
// options, so they stay valid for a long time.
const (
	ReportTTL = 7 * 24 * time.Hour
	RenderTTL = 24 * time.Hour
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the stored value and whether it was found. Expired entries
	// are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
