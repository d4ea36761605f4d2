// Package cache stores rendered layouts and artifacts.
//
// [Cache] is a byte store with expiry. [FileCache] backs the CLI from the
// XDG cache directory, [RedisCache] backs a fleet of layout services, and
// [NullCache] disables caching. Wrap any of them with [Instrument] to report
// hits and misses through [observability.CacheHooks].
//
// Keys come from a [Keyer]: every key is a type prefix followed by the
// SHA-256 of the document hash and the options that affect the output, so
// changing any option produces a different entry.
//
//	c, _ := cache.NewFileCache(dir)
//	c = cache.Instrument(c)
//	key := cache.NewDefaultKeyer().LayoutKey(cache.Hash(src), cache.LayoutKeyOpts{Width: 800, Height: 600})
//
// [observability.CacheHooks]: github.com/matzehuels/stackbox/pkg/observability.CacheHooks
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry. A zero ttl never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Default expiries per entry type.
const (
	TTLCheck    = 24 * time.Hour
	TTLLayout   = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)
