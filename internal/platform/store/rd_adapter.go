package store

import (
	"context"
	"errors"
	"time"

	"homefeed/internal/platform/store/rd"
)

// newRDAdapter wraps an existing *rd.RD as the store.Redis seam
func newRDAdapter(c *rd.RD) Redis {
	return &redisAdapter{inner: c}
}

// redisAdapter adapts *rd.RD to the store.Redis interface
type redisAdapter struct {
	inner *rd.RD
}

var _ Redis = (*redisAdapter)(nil)

func (a *redisAdapter) Get(ctx context.Context, key string) (string, error) {
	v, err := a.inner.Get(ctx, key)
	if errors.Is(err, rd.ErrMiss) {
		return "", ErrCacheMiss
	}
	return v, err
}

func (a *redisAdapter) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return a.inner.Set(ctx, key, value, ttl)
}

func (a *redisAdapter) IncrWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	return a.inner.IncrWindow(ctx, key, window)
}

func (a *redisAdapter) Ping(ctx context.Context) error { return a.inner.Ping(ctx) }

func (a *redisAdapter) Close() error { return a.inner.Close() }
