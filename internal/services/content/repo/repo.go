// Package repo provides postgres access for the content catalog
package repo

import (
	"context"

	"homefeed/internal/modkit/repokit"
	"homefeed/internal/services/content/domain"
)

// Repo defines the repository contract for the content catalog
type Repo interface {
	Posts(ctx context.Context, limit int) ([]domain.Post, error)
	Projects(ctx context.Context, limit int) ([]domain.Project, error)
	Changelog(ctx context.Context, limit int) ([]domain.ChangelogEntry, error)
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func clampLimit(limit int) int {
	if limit <= 0 || limit > 500 {
		return 200
	}
	return limit
}

func (r *queries) Posts(ctx context.Context, limit int) ([]domain.Post, error) {
	const sql = `
select id, slug, title, summary, url, tags, views, published_at, updated_at
from posts
where published_at is not null
order by published_at desc
limit $1
`
	rows, err := r.q.Query(ctx, sql, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(
			&p.ID,
			&p.Slug,
			&p.Title,
			&p.Summary,
			&p.URL,
			&p.Tags,
			&p.Views,
			&p.PublishedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *queries) Projects(ctx context.Context, limit int) ([]domain.Project, error) {
	const sql = `
select id, slug, title, description, url, repo_url, featured, created_at, updated_at
from projects
order by created_at desc
limit $1
`
	rows, err := r.q.Query(ctx, sql, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(
			&p.ID,
			&p.Slug,
			&p.Title,
			&p.Description,
			&p.URL,
			&p.RepoURL,
			&p.Featured,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *queries) Changelog(ctx context.Context, limit int) ([]domain.ChangelogEntry, error) {
	const sql = `
select id, version, title, body, url, released_at
from changelog_entries
order by released_at desc
limit $1
`
	rows, err := r.q.Query(ctx, sql, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.ChangelogEntry
	for rows.Next() {
		var e domain.ChangelogEntry
		if err := rows.Scan(
			&e.ID,
			&e.Version,
			&e.Title,
			&e.Body,
			&e.URL,
			&e.ReleasedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
