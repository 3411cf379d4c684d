// Package domain holds the activity feed types and contracts
package domain

import (
	"strings"
	"time"

	contentdomain "homefeed/internal/services/content/domain"
)

// Source tags the adapter an item came from
type Source string

// Known sources
const (
	SourceBlog       Source = "blog"
	SourceProject    Source = "project"
	SourceChangelog  Source = "changelog"
	SourceTrending   Source = "trending"
	SourceMilestone  Source = "milestone"
	SourceEngagement Source = "engagement"
	SourceComments   Source = "comments"
	SourceGitHub     Source = "github"
)

// AllSources lists every known source in display order
func AllSources() []Source {
	return []Source{
		SourceBlog,
		SourceProject,
		SourceChangelog,
		SourceTrending,
		SourceMilestone,
		SourceEngagement,
		SourceComments,
		SourceGitHub,
	}
}

// Valid reports whether s names a known source
func (s Source) Valid() bool {
	switch s {
	case SourceBlog, SourceProject, SourceChangelog, SourceTrending,
		SourceMilestone, SourceEngagement, SourceComments, SourceGitHub:
		return true
	}
	return false
}

// ParseSources normalizes a comma separated source list.
// Unknown names are dropped, duplicates collapse, order follows AllSources.
// An empty csv selects every source
func ParseSources(csv string) []Source {
	if strings.TrimSpace(csv) == "" {
		return AllSources()
	}
	want := map[Source]bool{}
	for _, raw := range strings.Split(csv, ",") {
		s := Source(strings.ToLower(strings.TrimSpace(raw)))
		if s.Valid() {
			want[s] = true
		}
	}
	out := make([]Source, 0, len(want))
	for _, s := range AllSources() {
		if want[s] {
			out = append(out, s)
		}
	}
	return out
}

// Item is the common record every adapter produces
type Item struct {
	ID        string         `json:"id"`
	Type      Source         `json:"type"`
	Title     string         `json:"title"`
	Summary   string         `json:"summary,omitempty"`
	URL       string         `json:"url,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	Meta      map[string]any `json:"meta,omitempty"`
}

// Catalog is the request-scoped read-only snapshot shared by adapters
type Catalog = contentdomain.Snapshot
