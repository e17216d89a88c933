package cache

import (
	"context"
	"time"
)

// NullCache satisfies [Cache] without storing artifacts. Every Get misses,
// so a runner built on it renders every format on every export. The CLI
// selects it for --no-cache.
type NullCache struct{}

func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }
