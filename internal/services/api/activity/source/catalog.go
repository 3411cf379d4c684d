package source

import (
	"context"
	"fmt"

	"homefeed/internal/core/normalize"
	"homefeed/internal/services/api/activity/domain"
)

const summaryRunes = 280

// blogAdapter turns published posts into feed items
type blogAdapter struct{}

func (blogAdapter) Source() domain.Source { return domain.SourceBlog }

func (blogAdapter) Collect(_ context.Context, cat domain.Catalog) ([]domain.Item, error) {
	out := make([]domain.Item, 0, len(cat.Posts))
	for _, p := range cat.Posts {
		if p.PublishedAt.IsZero() {
			continue
		}
		meta := map[string]any{}
		if len(p.Tags) > 0 {
			meta["tags"] = p.Tags
		}
		if p.Views > 0 {
			meta["views"] = p.Views
		}
		if len(meta) == 0 {
			meta = nil
		}
		out = append(out, domain.Item{
			ID:        fmt.Sprintf("blog:%s", p.ID),
			Type:      domain.SourceBlog,
			Title:     p.Title,
			Summary:   normalize.Summary(p.Summary, summaryRunes),
			URL:       p.URL,
			Timestamp: p.PublishedAt,
			Meta:      meta,
		})
	}
	return out, nil
}

// projectAdapter turns portfolio projects into feed items
type projectAdapter struct{}

func (projectAdapter) Source() domain.Source { return domain.SourceProject }

func (projectAdapter) Collect(_ context.Context, cat domain.Catalog) ([]domain.Item, error) {
	out := make([]domain.Item, 0, len(cat.Projects))
	for _, p := range cat.Projects {
		var meta map[string]any
		if p.Featured {
			meta = map[string]any{"featured": true}
		}
		out = append(out, domain.Item{
			ID:        fmt.Sprintf("project:%s", p.ID),
			Type:      domain.SourceProject,
			Title:     p.Title,
			Summary:   normalize.Summary(p.Description, summaryRunes),
			URL:       p.URL,
			Timestamp: p.CreatedAt,
			Meta:      meta,
		})
	}
	return out, nil
}

// changelogAdapter turns released changelog entries into feed items
type changelogAdapter struct{}

func (changelogAdapter) Source() domain.Source { return domain.SourceChangelog }

func (changelogAdapter) Collect(_ context.Context, cat domain.Catalog) ([]domain.Item, error) {
	out := make([]domain.Item, 0, len(cat.Changelog))
	for _, e := range cat.Changelog {
		title := e.Title
		if e.Version != "" {
			title = fmt.Sprintf("%s: %s", e.Version, e.Title)
		}
		out = append(out, domain.Item{
			ID:        fmt.Sprintf("changelog:%s", e.ID),
			Type:      domain.SourceChangelog,
			Title:     title,
			Summary:   normalize.Summary(e.Body, summaryRunes),
			URL:       e.URL,
			Timestamp: e.ReleasedAt,
		})
	}
	return out, nil
}
