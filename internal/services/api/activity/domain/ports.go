package domain

import "context"

// Adapter transforms one content source's records into feed items.
// Collect must treat cat as read-only; a failure yields an error and zero
// items, never partial ones
type Adapter interface {
	Source() Source
	Collect(ctx context.Context, cat Catalog) ([]Item, error)
}

// ServicePort defines the service contract for the activity feed
type ServicePort interface {
	Feed(ctx context.Context, in FeedInput) (Feed, error)
	Sources(ctx context.Context) (SourceList, error)
}
