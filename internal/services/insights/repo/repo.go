// Package repo provides clickhouse access for the insights service
package repo

import (
	"context"
	"time"

	"homefeed/internal/platform/store"
	"homefeed/internal/services/insights/domain"
)

// Repo defines the repository contract for insights
type Repo interface {
	PageStats(ctx context.Context) ([]domain.PageStat, error)
	CommentStats(ctx context.Context) ([]domain.CommentStat, error)
	Trending(ctx context.Context, window time.Duration, limit int) ([]domain.TrendingPage, error)
}

// CH implements Repo over the clickhouse seam
type CH struct {
	db store.Clickhouse
}

// NewCH creates a clickhouse-backed Repo
func NewCH(db store.Clickhouse) *CH {
	if db == nil {
		panic("insights.Repo requires a non nil Clickhouse")
	}
	return &CH{db: db}
}

func (r *CH) PageStats(ctx context.Context) ([]domain.PageStat, error) {
	const sql = `
SELECT slug, count() AS views, max(ts) AS last_viewed_at
FROM page_views
GROUP BY slug
`
	return store.ManyCH(ctx, r.db, func(row store.Row) (domain.PageStat, error) {
		var s domain.PageStat
		err := row.Scan(&s.Slug, &s.Views, &s.LastViewedAt)
		return s, err
	}, sql)
}

func (r *CH) CommentStats(ctx context.Context) ([]domain.CommentStat, error) {
	const sql = `
SELECT slug, count() AS comments, max(ts) AS last_comment_at
FROM comments
GROUP BY slug
`
	return store.ManyCH(ctx, r.db, func(row store.Row) (domain.CommentStat, error) {
		var s domain.CommentStat
		err := row.Scan(&s.Slug, &s.Comments, &s.LastCommentAt)
		return s, err
	}, sql)
}

func (r *CH) Trending(ctx context.Context, window time.Duration, limit int) ([]domain.TrendingPage, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	const sql = `
SELECT slug, count() AS views, max(ts) AS last_viewed_at
FROM page_views
WHERE ts >= now() - INTERVAL ? SECOND
GROUP BY slug
ORDER BY views DESC, slug ASC
LIMIT ?
`
	return store.ManyCH(ctx, r.db, func(row store.Row) (domain.TrendingPage, error) {
		var s domain.TrendingPage
		err := row.Scan(&s.Slug, &s.Views, &s.LastViewedAt)
		return s, err
	}, sql, int64(window.Seconds()), limit)
}
