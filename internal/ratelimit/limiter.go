// Package ratelimit implements a fixed-window request limiter backed by Redis.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "dailyform:ratelimit:"

// Result describes the state of a caller's window after one request.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAfter time.Duration
}

// Limiter counts requests per key.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

// RedisLimiter allows Limit requests per key per Window using INCR + EXPIRE.
type RedisLimiter struct {
	client redis.Cmdable
	limit  int
	window time.Duration
}

func NewRedisLimiter(client redis.Cmdable, limit int, window time.Duration) *RedisLimiter {
	if limit <= 0 {
		limit = 100
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RedisLimiter{client: client, limit: limit, window: window}
}

// NewRedisClient parses a redis:// URL into a client.
func NewRedisClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	return redis.NewClient(opts), nil
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	k := keyPrefix + key

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	ttl := pipe.TTL(ctx, k)
	if _, err := pipe.Exec(ctx); err != nil {
		return Result{}, fmt.Errorf("rate limit counter: %w", err)
	}

	reset := ttl.Val()
	if reset < 0 {
		// First hit of the window, or a key that lost its expiry.
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return Result{}, fmt.Errorf("rate limit expiry: %w", err)
		}
		reset = l.window
	}

	return evaluate(incr.Val(), l.limit, reset), nil
}

func evaluate(count int64, limit int, reset time.Duration) Result {
	remaining := limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:    count <= int64(limit),
		Limit:      limit,
		Remaining:  remaining,
		ResetAfter: reset,
	}
}
