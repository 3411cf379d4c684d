// Package service contains content catalog workflows
package service

import (
	"context"

	"homefeed/internal/modkit/repokit"
	"homefeed/internal/services/content/domain"
	"homefeed/internal/services/content/repo"
)

// Service defines the service contract for the content catalog
type Service interface{ domain.CatalogPort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	// per-collection fetch ceiling, 0 means the repo default
	Limit int
}

// New creates a new content service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("content.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("content.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Snapshot loads every collection inside one transaction so the feed sees
// a consistent catalog
func (s *Svc) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	var snap domain.Snapshot
	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		posts, err := r.Posts(ctx, s.Limit)
		if err != nil {
			return err
		}
		projects, err := r.Projects(ctx, s.Limit)
		if err != nil {
			return err
		}
		changelog, err := r.Changelog(ctx, s.Limit)
		if err != nil {
			return err
		}
		snap = domain.Snapshot{
			Posts:     posts,
			Projects:  projects,
			Changelog: changelog,
		}
		return nil
	})
	if err != nil {
		return domain.Snapshot{}, err
	}
	return snap, nil
}
