// Package cache provides line translation caching implementations.
package cache

import (
	"context"
	"strings"
	"time"
)

// TranslationCache is the interface for translation caching.
type TranslationCache interface {
	// Get retrieves a cached translation. Returns empty string and false if not found or expired.
	Get(key string) (string, bool)

	// Set stores a translation in the cache.
	Set(key string, value string) error
}

// Config selects and configures a cache backend.
type Config struct {
	URL  string        // "redis://..." for Redis, "memory" or empty for in-process
	File string        // snapshot file for the in-memory cache, optional
	TTL  time.Duration // 0 = no expiration
}

// Handle is an opened cache plus the function that releases it. For the
// in-memory cache with a snapshot file, Close writes the snapshot.
type Handle struct {
	Cache TranslationCache
	Close func(ctx context.Context) error
}

// Open opens the backend described by cfg. Snapshot files are read and
// written through store.
func Open(ctx context.Context, cfg Config, store FileStore) (*Handle, error) {
	if strings.HasPrefix(cfg.URL, "redis://") || strings.HasPrefix(cfg.URL, "rediss://") {
		rc, err := NewRedisCache(RedisConfig{URL: cfg.URL, TTL: cfg.TTL})
		if err != nil {
			return nil, err
		}
		return &Handle{
			Cache: rc,
			Close: func(context.Context) error { return rc.Close() },
		}, nil
	}

	mc := NewInMemoryCache(cfg.TTL)
	if cfg.File == "" {
		return &Handle{Cache: mc, Close: func(context.Context) error { return nil }}, nil
	}

	if _, err := LoadSnapshotFile(ctx, store, cfg.File, mc); err != nil {
		return nil, err
	}
	return &Handle{
		Cache: mc,
		Close: func(ctx context.Context) error {
			return SaveSnapshotFile(ctx, store, cfg.File, mc)
		},
	}, nil
}
