// Package service contains insights workflows with a redis read-through cache
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"homefeed/internal/platform/logger"
	"homefeed/internal/platform/store"
	"homefeed/internal/services/insights/domain"
	"homefeed/internal/services/insights/repo"
)

const defaultCacheTTL = 5 * time.Minute

// Service defines the service contract for insights
type Service interface{ domain.InsightsPort }

// Svc implements the Service interface
// reads go through redis when available; a cache failure degrades to a
// clickhouse query, never to an error
type Svc struct {
	Repo  repo.Repo
	cache store.Redis
	ttl   time.Duration
	log   logger.Logger
}

// New creates a new insights service. cache may be nil (cacheless mode)
func New(r repo.Repo, cache store.Redis, ttl time.Duration) *Svc {
	if r == nil {
		panic("insights.Service requires a non nil Repo")
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Svc{Repo: r, cache: cache, ttl: ttl, log: *logger.Named("insights")}
}

// PageStats returns lifetime view aggregates for every slug with traffic
func (s *Svc) PageStats(ctx context.Context) ([]domain.PageStat, error) {
	return cached(ctx, s, "insights:pages", func() ([]domain.PageStat, error) {
		return s.Repo.PageStats(ctx)
	})
}

// CommentStats returns lifetime comment aggregates per slug
func (s *Svc) CommentStats(ctx context.Context) ([]domain.CommentStat, error) {
	return cached(ctx, s, "insights:comments", func() ([]domain.CommentStat, error) {
		return s.Repo.CommentStats(ctx)
	})
}

// Trending ranks slugs by views inside the trailing window
func (s *Svc) Trending(ctx context.Context, window time.Duration, limit int) ([]domain.TrendingPage, error) {
	key := fmt.Sprintf("insights:trending:%d:%d", int64(window.Seconds()), limit)
	return cached(ctx, s, key, func() ([]domain.TrendingPage, error) {
		return s.Repo.Trending(ctx, window, limit)
	})
}

// cached wraps a repo read with the redis read-through
func cached[T any](ctx context.Context, s *Svc, key string, load func() ([]T, error)) ([]T, error) {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, key)
		if err == nil {
			var out []T
			if uerr := json.Unmarshal([]byte(raw), &out); uerr == nil {
				return out, nil
			}
			s.log.Warn().Str("key", key).Msg("insights cache entry unreadable, refetching")
		} else if !errors.Is(err, store.ErrCacheMiss) {
			s.log.Warn().Err(err).Str("key", key).Msg("insights cache read failed")
		}
	}

	out, err := load()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if b, merr := json.Marshal(out); merr == nil {
			if serr := s.cache.Set(ctx, key, string(b), s.ttl); serr != nil {
				s.log.Warn().Err(serr).Str("key", key).Msg("insights cache write failed")
			}
		}
	}
	return out, nil
}
