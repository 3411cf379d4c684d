package source

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"homefeed/internal/services/api/activity/domain"
	contentdomain "homefeed/internal/services/content/domain"
)

func TestBlogAdapter_SkipsUnpublished(t *testing.T) {
	pub := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	cat := domain.Catalog{Posts: []contentdomain.Post{
		{
			ID:          uuid.New(),
			Slug:        "live",
			Title:       "Live post",
			Summary:     "<p>Body <b>text</b></p>",
			URL:         "https://example.com/blog/live",
			Tags:        []string{"go"},
			Views:       12,
			PublishedAt: pub,
		},
		{ID: uuid.New(), Slug: "draft", Title: "Draft"},
	}}

	items, err := blogAdapter{}.Collect(context.Background(), cat)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items: %+v", items)
	}
	it := items[0]
	if !strings.HasPrefix(it.ID, "blog:") || it.Type != domain.SourceBlog {
		t.Fatalf("item: %+v", it)
	}
	if it.Summary != "Body text" {
		t.Fatalf("summary: %q", it.Summary)
	}
	if !it.Timestamp.Equal(pub) {
		t.Fatalf("timestamp: %v", it.Timestamp)
	}
	if it.Meta["views"] != int64(12) {
		t.Fatalf("meta: %+v", it.Meta)
	}
}

func TestProjectAdapter_FlagsFeatured(t *testing.T) {
	at := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	cat := domain.Catalog{Projects: []contentdomain.Project{
		{ID: uuid.New(), Slug: "a", Title: "A", Featured: true, CreatedAt: at},
		{ID: uuid.New(), Slug: "b", Title: "B", CreatedAt: at},
	}}

	items, err := projectAdapter{}.Collect(context.Background(), cat)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items: %+v", items)
	}
	if items[0].Meta["featured"] != true {
		t.Fatalf("featured meta: %+v", items[0].Meta)
	}
	if items[1].Meta != nil {
		t.Fatalf("plain project should carry no meta: %+v", items[1].Meta)
	}
}

func TestChangelogAdapter_PrefixesVersion(t *testing.T) {
	at := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	cat := domain.Catalog{Changelog: []contentdomain.ChangelogEntry{
		{ID: uuid.New(), Version: "v1.4.0", Title: "Dark mode", ReleasedAt: at},
		{ID: uuid.New(), Title: "Hotfix", ReleasedAt: at},
	}}

	items, err := changelogAdapter{}.Collect(context.Background(), cat)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if items[0].Title != "v1.4.0: Dark mode" {
		t.Fatalf("title: %q", items[0].Title)
	}
	if items[1].Title != "Hotfix" {
		t.Fatalf("title: %q", items[1].Title)
	}
}

func TestNewRegistry_GatesOptionalAdapters(t *testing.T) {
	reg := NewRegistry(Deps{})
	want := []domain.Source{domain.SourceBlog, domain.SourceProject, domain.SourceChangelog}
	got := reg.Sources()
	if len(got) != len(want) {
		t.Fatalf("sources: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sources: %v", got)
		}
	}

	reg = NewRegistry(Deps{Insights: stubInsights{}})
	if len(reg) != 7 {
		t.Fatalf("with insights: %v", reg.Sources())
	}
	if _, ok := reg[domain.SourceGitHub]; ok {
		t.Fatal("github should stay off without a login")
	}
}

func TestThresholdDefaults(t *testing.T) {
	var th Thresholds
	th.defaults()
	if th.ViewMilestones[0] != 1000 || th.CommentMilestones[0] != 10 {
		t.Fatalf("defaults: %+v", th)
	}
	if th.EngagementMinViews != 500 || th.TrendingLimit != 10 {
		t.Fatalf("defaults: %+v", th)
	}
	if th.TrendingWindow != 7*24*time.Hour {
		t.Fatalf("window: %v", th.TrendingWindow)
	}

	th = Thresholds{EngagementMinViews: 9}
	th.defaults()
	if th.EngagementMinViews != 9 {
		t.Fatal("explicit values should survive defaults")
	}
}
