package rd

import (
	"context"
	"time"
)

// Windower is the counter surface the limiter needs; *RD and the
// store redis seam both satisfy it
type Windower interface {
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// Limiter is a fixed-window counter limiter backed by redis.
// One window per key; the first hit opens the window
type Limiter struct {
	C      Windower
	Limit  int64
	Window time.Duration
	Prefix string
}

// NewLimiter builds a Limiter with limit hits per window
func NewLimiter(c Windower, limit int64, window time.Duration) *Limiter {
	return &Limiter{C: c, Limit: limit, Window: window, Prefix: "rl:"}
}

// Allow reports whether key has budget left in the current window.
// retryAfter is whole seconds until the window resets, rounded up
func (l *Limiter) Allow(ctx context.Context, key string) (allowed bool, retryAfter int, err error) {
	count, ttl, err := l.C.IncrWindow(ctx, l.Prefix+key, l.Window)
	if err != nil {
		return false, 0, err
	}
	if count <= l.Limit {
		return true, 0, nil
	}
	if ttl <= 0 {
		ttl = l.Window
	}
	secs := int((ttl + time.Second - 1) / time.Second)
	return false, secs, nil
}
