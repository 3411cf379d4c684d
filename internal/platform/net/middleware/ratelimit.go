package middleware

import (
	"context"
	stdjson "encoding/json"
	"net/http"
	"strconv"
	"time"

	"homefeed/internal/platform/logger"
	pnet "homefeed/internal/platform/net"
)

// LimitDecision is the outcome of a limiter check
type LimitDecision struct {
	Allowed    bool
	RetryAfter time.Duration
}

// LimiterPort is the seam to a rate limit backend (Redis in production)
// Allow returns an error only when the backend itself failed
type LimiterPort interface {
	Allow(ctx context.Context, key string) (LimitDecision, error)
}

type limitWire struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retryAfter"`
}

// RateLimit enforces a per client IP quota. The limiter is best effort:
// when its backing store is unreachable the request proceeds unlimited
// (availability over strict quota enforcement)
func RateLimit(p LimiterPort) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			dec, err := p.Allow(r.Context(), pnet.ClientIP(r))
			if err != nil {
				logger.C(r.Context()).Warn().Err(err).Msg("rate limiter unavailable; failing open")
				next.ServeHTTP(w, r)
				return
			}
			if !dec.Allowed {
				retry := int(dec.RetryAfter.Round(time.Second).Seconds())
				if retry < 1 {
					retry = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(retry))
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = stdjson.NewEncoder(w).Encode(limitWire{
					Error:      "Too many requests",
					RetryAfter: retry,
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// LimiterFunc adapts a plain function to LimiterPort
type LimiterFunc func(ctx context.Context, key string) (LimitDecision, error)

// Allow implements LimiterPort
func (f LimiterFunc) Allow(ctx context.Context, key string) (LimitDecision, error) {
	return f(ctx, key)
}
