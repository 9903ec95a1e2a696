package dataset

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOptions configures the Redis-backed document cache.
type RedisOptions struct {
	// URL is the Redis connection string (e.g. "redis://localhost:6379").
	URL string

	// KeyPrefix namespaces cache keys. Default: "attck".
	KeyPrefix string

	// TTL is how long cached documents live. Zero means no expiry, which
	// suits these datasets: they change on upstream release, not on a
	// clock, and a force-refresh overwrites the entry.
	TTL time.Duration

	// ConnectTimeout is the maximum time to wait for connection
	// establishment. Default: 5s.
	ConnectTimeout time.Duration
}

// RedisCache caches documents in Redis so multiple hosts can share one
// fetched copy.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache connects to Redis and verifies the connection with a ping.
func NewRedisCache(opts RedisOptions) (*RedisCache, error) {
	if opts.URL == "" {
		opts.URL = "redis://localhost:6379"
	}
	if opts.KeyPrefix == "" {
		opts.KeyPrefix = "attck"
	}
	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 5 * time.Second
	}

	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("dataset: parsing Redis URL: %w", err)
	}
	redisOpts.DialTimeout = opts.ConnectTimeout

	client := redis.NewClient(redisOpts)

	ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("dataset: connecting to Redis: %w", err)
	}

	return &RedisCache{client: client, prefix: opts.KeyPrefix, ttl: opts.TTL}, nil
}

// Get returns the cached document bytes for key. redis.Nil is a miss.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("dataset: reading cache key %s: %w", key, err)
	}
	return data, true, nil
}

// Set stores document bytes under key with the configured TTL.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte) error {
	if err := c.client.Set(ctx, c.key(key), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("dataset: writing cache key %s: %w", key, err)
	}
	return nil
}

// Close closes the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) key(key string) string {
	return c.prefix + ":document:" + key
}
