package source

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"homefeed/internal/services/api/activity/domain"
	contentdomain "homefeed/internal/services/content/domain"
	insightsdomain "homefeed/internal/services/insights/domain"
)

type stubInsights struct {
	pages    []insightsdomain.PageStat
	comments []insightsdomain.CommentStat
	trending []insightsdomain.TrendingPage
	err      error
}

func (s stubInsights) PageStats(context.Context) ([]insightsdomain.PageStat, error) {
	return s.pages, s.err
}

func (s stubInsights) CommentStats(context.Context) ([]insightsdomain.CommentStat, error) {
	return s.comments, s.err
}

func (s stubInsights) Trending(context.Context, time.Duration, int) ([]insightsdomain.TrendingPage, error) {
	return s.trending, s.err
}

func catalogWith(slugs ...string) domain.Catalog {
	cat := domain.Catalog{}
	for _, slug := range slugs {
		cat.Posts = append(cat.Posts, contentdomain.Post{
			ID:          uuid.New(),
			Slug:        slug,
			Title:       "Post " + slug,
			URL:         "https://example.com/blog/" + slug,
			PublishedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		})
	}
	return cat
}

func TestCrossed(t *testing.T) {
	th := []int64{1000, 5000, 10000}
	cases := []struct{ n, want int64 }{
		{0, 0},
		{999, 0},
		{1000, 1000},
		{4999, 1000},
		{5000, 5000},
		{99999, 10000},
	}
	for _, c := range cases {
		if got := crossed(c.n, th); got != c.want {
			t.Fatalf("crossed(%d): got %d want %d", c.n, got, c.want)
		}
	}
}

func TestMilestoneAdapter(t *testing.T) {
	at := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	a := milestoneAdapter{
		insights: stubInsights{pages: []insightsdomain.PageStat{
			{Slug: "go-tips", Views: 5200, LastViewedAt: at},
			{Slug: "quiet", Views: 120, LastViewedAt: at},
			{Slug: "orphan", Views: 9000, LastViewedAt: at},
		}},
		thresholds: []int64{1000, 5000, 10000},
	}

	items, err := a.Collect(context.Background(), catalogWith("go-tips", "quiet"))
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items: %+v", items)
	}
	it := items[0]
	if it.ID != "milestone:go-tips:5000" {
		t.Fatalf("id: %q", it.ID)
	}
	if it.Title != "Post go-tips passed 5000 views" {
		t.Fatalf("title: %q", it.Title)
	}
	if it.Meta["threshold"] != int64(5000) {
		t.Fatalf("meta: %+v", it.Meta)
	}
}

func TestEngagementAdapter(t *testing.T) {
	at := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	a := engagementAdapter{
		insights: stubInsights{pages: []insightsdomain.PageStat{
			{Slug: "busy", Views: 700, LastViewedAt: at},
			{Slug: "idle", Views: 100, LastViewedAt: at},
		}},
		minViews: 500,
	}

	items, err := a.Collect(context.Background(), catalogWith("busy", "idle"))
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(items) != 1 || items[0].ID != "engagement:busy" {
		t.Fatalf("items: %+v", items)
	}
	if items[0].Summary != "700 readers and counting" {
		t.Fatalf("summary: %q", items[0].Summary)
	}
}

func TestCommentsAdapter(t *testing.T) {
	at := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	a := commentsAdapter{
		insights: stubInsights{comments: []insightsdomain.CommentStat{
			{Slug: "hot", Comments: 57, LastCommentAt: at},
			{Slug: "cold", Comments: 3, LastCommentAt: at},
		}},
		thresholds: []int64{10, 50, 100},
	}

	items, err := a.Collect(context.Background(), catalogWith("hot", "cold"))
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(items) != 1 || items[0].ID != "comments:hot:50" {
		t.Fatalf("items: %+v", items)
	}
}

func TestTrendingAdapter_SkipsUnknownSlugs(t *testing.T) {
	at := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	a := trendingAdapter{
		insights: stubInsights{trending: []insightsdomain.TrendingPage{
			{Slug: "known", Views: 300, LastViewedAt: at},
			{Slug: "ghost", Views: 900, LastViewedAt: at},
		}},
		window: 7 * 24 * time.Hour,
		limit:  10,
	}

	items, err := a.Collect(context.Background(), catalogWith("known"))
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items: %+v", items)
	}
	if items[0].ID != "trending:known" || items[0].Title != "Trending: Post known" {
		t.Fatalf("item: %+v", items[0])
	}
}
