package domain

import "context"

// CatalogPort is the read surface the activity pipeline consumes
type CatalogPort interface {
	// Snapshot loads every collection in one pass
	Snapshot(ctx context.Context) (Snapshot, error)
}
