package cache

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOptions configures [NewRedisCache].
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	// Prefix namespaces the keys; Clear only removes keys under it.
	Prefix string
}

// DefaultRedisPrefix is used when RedisOptions.Prefix is empty.
const DefaultRedisPrefix = "tilings:"

// RedisCache stores entries in Redis with native expiration.
type RedisCache struct {
	client *redis.Client
	prefix string
}

// NewRedisCache connects to Redis and checks the connection.
func NewRedisCache(ctx context.Context, opts RedisOptions) (*RedisCache, error) {
	if opts.Prefix == "" {
		opts.Prefix = DefaultRedisPrefix
	}
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", opts.Addr, err)
	}
	return &RedisCache{client: client, prefix: opts.Prefix}, nil
}

// Get reads an entry, retrying transient network failures.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	hit := false
	err := RetryWithBackoff(ctx, func() error {
		v, err := c.client.Get(ctx, c.prefix+key).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if err != nil {
			return classify(err)
		}
		data, hit = v, true
		return nil
	})
	return data, hit, err
}

// Set writes an entry. A non-positive ttl keeps it forever.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	return RetryWithBackoff(ctx, func() error {
		return classify(c.client.Set(ctx, c.prefix+key, data, ttl).Err())
	})
}

// Delete removes an entry.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return classify(c.client.Del(ctx, c.prefix+key).Err())
}

// Clear removes every key under the prefix.
func (c *RedisCache) Clear(ctx context.Context) (int, error) {
	var keys []string
	it := c.client.Scan(ctx, 0, c.prefix+"*", 100).Iterator()
	for it.Next(ctx) {
		keys = append(keys, it.Val())
	}
	if err := it.Err(); err != nil {
		return 0, err
	}
	if len(keys) == 0 {
		return 0, nil
	}
	n, err := c.client.Del(ctx, keys...).Result()
	return int(n), err
}

// Close closes the client.
func (c *RedisCache) Close() error { return c.client.Close() }

// classify marks network errors as retryable.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return Retryable(fmt.Errorf("%w: %w", ErrUnavailable, err))
	}
	return err
}

var (
	_ Cache   = (*RedisCache)(nil)
	_ Clearer = (*RedisCache)(nil)
)
