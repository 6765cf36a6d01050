package cache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/honeycomb/pkg/observability"
)

// RedisCache stores entries in Redis. Network failures are retried with
// backoff before they are returned.
type RedisCache struct {
	client redis.UniversalClient
	prefix string
}

// RedisOption configures a RedisCache.
type RedisOption func(*RedisCache)

// WithKeyPrefix prepends prefix to every Redis key.
func WithKeyPrefix(prefix string) RedisOption {
	return func(c *RedisCache) { c.prefix = prefix }
}

// NewRedisCache connects to the server at url ("redis://host:6379/0") and
// pings it once.
func NewRedisCache(ctx context.Context, url string, opts ...RedisOption) (*RedisCache, error) {
	ropts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	c := NewRedisCacheFromClient(redis.NewClient(ropts), opts...)
	if err := c.Ping(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

// NewRedisCacheFromClient wraps an existing client.
func NewRedisCacheFromClient(client redis.UniversalClient, opts ...RedisOption) *RedisCache {
	c := &RedisCache{client: client}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ping checks connectivity.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.do(ctx, "ping", func() error {
		return c.client.Ping(ctx).Err()
	})
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := c.do(ctx, "get", func() error {
		var err error
		data, err = c.client.Get(ctx, c.prefix+key).Bytes()
		return err
	})
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.do(ctx, "set", func() error {
		return c.client.Set(ctx, c.prefix+key, data, ttl).Err()
	})
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.do(ctx, "delete", func() error {
		return c.client.Del(ctx, c.prefix+key).Err()
	})
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// do runs fn with retries on network errors and reports failures to the
// cache hooks. redis.Nil passes through untouched.
func (c *RedisCache) do(ctx context.Context, op string, fn func() error) error {
	err := RetryWithBackoff(ctx, func() error {
		err := fn()
		if isNetworkError(err) {
			return Retryable(fmt.Errorf("%w: redis %s: %v", ErrNetwork, op, err))
		}
		return err
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		observability.Cache().OnCacheError(ctx, op, err)
	}
	return err
}

func isNetworkError(err error) bool {
	if err == nil {
		return false
	}
	var ne net.Error
	return errors.As(err, &ne) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

var _ Cache = (*RedisCache)(nil)
