// Package domain holds the content catalog types shared by the feed adapters
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Post is a published blog post
type Post struct {
	ID          uuid.UUID
	Slug        string
	Title       string
	Summary     string // plain text, normalized at ingest
	URL         string
	Tags        []string
	Views       int64
	PublishedAt time.Time
	UpdatedAt   time.Time
}

// Project is a portfolio project entry
type Project struct {
	ID          uuid.UUID
	Slug        string
	Title       string
	Description string
	URL         string
	RepoURL     string
	Featured    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ChangelogEntry is one released site/changelog version
type ChangelogEntry struct {
	ID         uuid.UUID
	Version    string
	Title      string
	Body       string
	URL        string
	ReleasedAt time.Time
}

// Snapshot is a read-only, request-scoped view of the catalog
// adapters share it and never mutate it
type Snapshot struct {
	Posts     []Post
	Projects  []Project
	Changelog []ChangelogEntry
}
