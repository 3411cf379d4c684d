// Package rd provides a redis client for counters and caching
package rd

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config configures redis connectivity
type Config struct {
	Addr string
	DB   int
}

// ErrMiss reports an absent key
var ErrMiss = errors.New("rd: miss")

// RD is a redis client
type RD struct {
	rdb *redis.Client
}

// Open connects to redis and verifies the connection
func Open(ctx context.Context, cfg Config) (*RD, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return &RD{rdb: rdb}, nil
}

// Get returns the value at key or ErrMiss
func (c *RD) Get(ctx context.Context, key string) (string, error) {
	v, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrMiss
	}
	return v, err
}

// Set stores value at key with a ttl
func (c *RD) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

// IncrWindow bumps a fixed-window counter under key.
// The window expiry is set only when the key is fresh, so the window
// boundary stays anchored to the first hit
func (c *RD) IncrWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	var incr *redis.IntCmd
	var ttl *redis.DurationCmd
	_, err := c.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		incr = p.Incr(ctx, key)
		p.ExpireNX(ctx, key, window)
		ttl = p.TTL(ctx, key)
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return incr.Val(), ttl.Val(), nil
}

// Ping verifies connectivity
func (c *RD) Ping(ctx context.Context) error { return c.rdb.Ping(ctx).Err() }

// Close closes the client
func (c *RD) Close() error { return c.rdb.Close() }
