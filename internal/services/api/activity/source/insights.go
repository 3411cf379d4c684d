package source

import (
	"context"
	"fmt"
	"time"

	"homefeed/internal/services/api/activity/domain"
	contentdomain "homefeed/internal/services/content/domain"
	insightsdomain "homefeed/internal/services/insights/domain"
)

// postIndex maps slugs to their posts for title/url lookup
func postIndex(cat domain.Catalog) map[string]contentdomain.Post {
	idx := make(map[string]contentdomain.Post, len(cat.Posts))
	for _, p := range cat.Posts {
		idx[p.Slug] = p
	}
	return idx
}

// crossed returns the highest threshold at or below n, or 0
func crossed(n int64, thresholds []int64) int64 {
	var hit int64
	for _, t := range thresholds {
		if n >= t {
			hit = t
		}
	}
	return hit
}

// trendingAdapter surfaces posts with recent traffic spikes
type trendingAdapter struct {
	insights insightsdomain.InsightsPort
	window   time.Duration
	limit    int
}

func (trendingAdapter) Source() domain.Source { return domain.SourceTrending }

func (a trendingAdapter) Collect(ctx context.Context, cat domain.Catalog) ([]domain.Item, error) {
	pages, err := a.insights.Trending(ctx, a.window, a.limit)
	if err != nil {
		return nil, err
	}
	idx := postIndex(cat)
	out := make([]domain.Item, 0, len(pages))
	for _, pg := range pages {
		post, ok := idx[pg.Slug]
		if !ok {
			// traffic on a page the catalog does not know about
			continue
		}
		out = append(out, domain.Item{
			ID:        fmt.Sprintf("trending:%s", pg.Slug),
			Type:      domain.SourceTrending,
			Title:     fmt.Sprintf("Trending: %s", post.Title),
			URL:       post.URL,
			Timestamp: pg.LastViewedAt,
			Meta:      map[string]any{"views": pg.Views},
		})
	}
	return out, nil
}

// milestoneAdapter mints an item when a post crosses a view threshold
type milestoneAdapter struct {
	insights   insightsdomain.InsightsPort
	thresholds []int64
}

func (milestoneAdapter) Source() domain.Source { return domain.SourceMilestone }

func (a milestoneAdapter) Collect(ctx context.Context, cat domain.Catalog) ([]domain.Item, error) {
	stats, err := a.insights.PageStats(ctx)
	if err != nil {
		return nil, err
	}
	idx := postIndex(cat)
	var out []domain.Item
	for _, st := range stats {
		hit := crossed(st.Views, a.thresholds)
		if hit == 0 {
			continue
		}
		post, ok := idx[st.Slug]
		if !ok {
			continue
		}
		out = append(out, domain.Item{
			ID:        fmt.Sprintf("milestone:%s:%d", st.Slug, hit),
			Type:      domain.SourceMilestone,
			Title:     fmt.Sprintf("%s passed %d views", post.Title, hit),
			URL:       post.URL,
			Timestamp: st.LastViewedAt,
			Meta:      map[string]any{"views": st.Views, "threshold": hit},
		})
	}
	return out, nil
}

// engagementAdapter surfaces posts with high lifetime traffic
type engagementAdapter struct {
	insights insightsdomain.InsightsPort
	minViews int64
}

func (engagementAdapter) Source() domain.Source { return domain.SourceEngagement }

func (a engagementAdapter) Collect(ctx context.Context, cat domain.Catalog) ([]domain.Item, error) {
	stats, err := a.insights.PageStats(ctx)
	if err != nil {
		return nil, err
	}
	idx := postIndex(cat)
	var out []domain.Item
	for _, st := range stats {
		if st.Views < a.minViews {
			continue
		}
		post, ok := idx[st.Slug]
		if !ok {
			continue
		}
		out = append(out, domain.Item{
			ID:        fmt.Sprintf("engagement:%s", st.Slug),
			Type:      domain.SourceEngagement,
			Title:     post.Title,
			Summary:   fmt.Sprintf("%d readers and counting", st.Views),
			URL:       post.URL,
			Timestamp: st.LastViewedAt,
			Meta:      map[string]any{"views": st.Views},
		})
	}
	return out, nil
}

// commentsAdapter mints an item when a post crosses a comment count threshold
type commentsAdapter struct {
	insights   insightsdomain.InsightsPort
	thresholds []int64
}

func (commentsAdapter) Source() domain.Source { return domain.SourceComments }

func (a commentsAdapter) Collect(ctx context.Context, cat domain.Catalog) ([]domain.Item, error) {
	stats, err := a.insights.CommentStats(ctx)
	if err != nil {
		return nil, err
	}
	idx := postIndex(cat)
	var out []domain.Item
	for _, st := range stats {
		hit := crossed(st.Comments, a.thresholds)
		if hit == 0 {
			continue
		}
		post, ok := idx[st.Slug]
		if !ok {
			continue
		}
		out = append(out, domain.Item{
			ID:        fmt.Sprintf("comments:%s:%d", st.Slug, hit),
			Type:      domain.SourceComments,
			Title:     fmt.Sprintf("%s reached %d comments", post.Title, hit),
			URL:       post.URL,
			Timestamp: st.LastCommentAt,
			Meta:      map[string]any{"comments": st.Comments, "threshold": hit},
		})
	}
	return out, nil
}
