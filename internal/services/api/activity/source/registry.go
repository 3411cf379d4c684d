// Package source implements the feed adapters, one per content type
package source

import (
	"time"

	ghclient "homefeed/internal/adapters/github"
	"homefeed/internal/services/api/activity/domain"
	insightsdomain "homefeed/internal/services/insights/domain"
)

// Thresholds configures the insight-driven adapters
type Thresholds struct {
	// view counts that mint a milestone item, ascending
	ViewMilestones []int64
	// comment counts that mint a comment milestone item, ascending
	CommentMilestones []int64
	// minimum lifetime views for the engagement adapter
	EngagementMinViews int64
	// trailing window and size for the trending adapter
	TrendingWindow time.Duration
	TrendingLimit  int
}

func (t *Thresholds) defaults() {
	if len(t.ViewMilestones) == 0 {
		t.ViewMilestones = []int64{1000, 5000, 10000, 25000, 50000, 100000}
	}
	if len(t.CommentMilestones) == 0 {
		t.CommentMilestones = []int64{10, 50, 100, 500}
	}
	if t.EngagementMinViews <= 0 {
		t.EngagementMinViews = 500
	}
	if t.TrendingWindow <= 0 {
		t.TrendingWindow = 7 * 24 * time.Hour
	}
	if t.TrendingLimit <= 0 {
		t.TrendingLimit = 10
	}
}

// Deps carries the external collaborators injected into adapters
type Deps struct {
	Insights insightsdomain.InsightsPort
	GitHub   *ghclient.Client
	Login    string
	PerPage  int

	Thresholds Thresholds
}

// Registry maps every enabled source to its adapter
type Registry map[domain.Source]domain.Adapter

// NewRegistry builds the full adapter set
func NewRegistry(d Deps) Registry {
	d.Thresholds.defaults()

	reg := Registry{
		domain.SourceBlog:      blogAdapter{},
		domain.SourceProject:   projectAdapter{},
		domain.SourceChangelog: changelogAdapter{},
	}
	if d.Insights != nil {
		reg[domain.SourceTrending] = trendingAdapter{
			insights: d.Insights,
			window:   d.Thresholds.TrendingWindow,
			limit:    d.Thresholds.TrendingLimit,
		}
		reg[domain.SourceMilestone] = milestoneAdapter{
			insights:   d.Insights,
			thresholds: d.Thresholds.ViewMilestones,
		}
		reg[domain.SourceEngagement] = engagementAdapter{
			insights: d.Insights,
			minViews: d.Thresholds.EngagementMinViews,
		}
		reg[domain.SourceComments] = commentsAdapter{
			insights:   d.Insights,
			thresholds: d.Thresholds.CommentMilestones,
		}
	}
	if d.GitHub != nil && d.Login != "" {
		reg[domain.SourceGitHub] = githubAdapter{
			client:  d.GitHub,
			login:   d.Login,
			perPage: d.PerPage,
		}
	}
	return reg
}

// Sources lists the registered sources in canonical order
func (r Registry) Sources() []domain.Source {
	out := make([]domain.Source, 0, len(r))
	for _, s := range domain.AllSources() {
		if _, ok := r[s]; ok {
			out = append(out, s)
		}
	}
	return out
}
