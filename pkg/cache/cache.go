// Package cache stores rendered export artifacts keyed by grid content.
//
// Artifacts are pure functions of the grid and the render options, so a
// key built from [Hash] of the grid's canonical bytes plus the options
// identifies an artifact exactly. The CLI uses [FileCache] under the user
// cache directory; tests and --no-cache use [NullCache].
package cache

import (
	"context"
	"time"
)

// TTLs for cached artifacts.
const (
	ArtifactTTL = 7 * 24 * time.Hour
	NoExpiry    = time.Duration(0)
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}
