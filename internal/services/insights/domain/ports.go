package domain

import (
	"context"
	"time"
)

// InsightsPort is the read surface the activity adapters consume
type InsightsPort interface {
	// PageStats returns lifetime view aggregates for every slug with traffic
	PageStats(ctx context.Context) ([]PageStat, error)
	// CommentStats returns lifetime comment aggregates per slug
	CommentStats(ctx context.Context) ([]CommentStat, error)
	// Trending ranks slugs by views inside the trailing window
	Trending(ctx context.Context, window time.Duration, limit int) ([]TrendingPage, error)
}
