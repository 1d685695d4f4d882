package cache

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ZaguanLabs/frontkit"
)

// DefaultKeyPrefix namespaces every key written to Redis.
const DefaultKeyPrefix = "frontkit:"

// redisTimeout bounds each Redis round trip.
const redisTimeout = 5 * time.Second

// RedisCache shares line translations between machines. Lookup failures
// are treated as misses so a flaky server slows a run down without failing
// it; they are counted in Failures.
type RedisCache struct {
	client    *redis.Client
	ttl       time.Duration
	keyPrefix string
	failures  atomic.Int64
}

// RedisConfig holds configuration for the Redis cache.
type RedisConfig struct {
	URL       string        // Redis connection URL (e.g., "redis://localhost:6379/0")
	TTL       time.Duration // 0 = no expiration
	KeyPrefix string        // Prefix for all keys (default: "frontkit:")
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, &frontkit.CacheError{Message: "invalid redis url", Cause: err}
	}

	c := NewRedisCacheFromClient(redis.NewClient(opts), cfg.TTL, cfg.KeyPrefix)
	if err := c.Ping(); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

// NewRedisCacheFromClient creates a RedisCache from an existing Redis client.
func NewRedisCacheFromClient(client *redis.Client, ttl time.Duration, keyPrefix string) *RedisCache {
	if keyPrefix == "" {
		keyPrefix = DefaultKeyPrefix
	}
	if ttl < 0 {
		ttl = 0
	}
	return &RedisCache{
		client:    client,
		ttl:       ttl,
		keyPrefix: keyPrefix,
	}
}

// Get looks key up in Redis.
func (c *RedisCache) Get(key string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	val, err := c.client.Get(ctx, c.keyPrefix+key).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return "", false
	case err != nil:
		c.failures.Add(1)
		return "", false
	}
	return val, true
}

// Set stores value under key with the configured TTL.
func (c *RedisCache) Set(key string, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	if err := c.client.Set(ctx, c.keyPrefix+key, value, c.ttl).Err(); err != nil {
		return &frontkit.CacheError{Message: "redis set " + key, Cause: err}
	}
	return nil
}

// Failures returns the number of lookups that failed with a server error.
func (c *RedisCache) Failures() int64 {
	return c.failures.Load()
}

// Close closes the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Ping checks that the server answers.
func (c *RedisCache) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	if err := c.client.Ping(ctx).Err(); err != nil {
		return &frontkit.CacheError{Message: "redis ping", Cause: err}
	}
	return nil
}

var _ TranslationCache = (*RedisCache)(nil)
