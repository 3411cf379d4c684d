// Package service contains the activity feed fan-out and aggregation workflows
package service

import (
	"context"
	"sync"
	"time"

	perr "homefeed/internal/platform/errors"
	"homefeed/internal/platform/logger"
	"homefeed/internal/services/api/activity/domain"
	"homefeed/internal/services/api/activity/source"
	contentdomain "homefeed/internal/services/content/domain"
)

const defaultAdapterTimeout = 5 * time.Second

// Service defines the service contract for the activity feed
type Service interface{ domain.ServicePort }

// Options tunes the fan-out
type Options struct {
	// AdapterTimeout bounds each adapter invocation, default 5s
	AdapterTimeout time.Duration
}

// Svc implements the Service interface
type Svc struct {
	catalog contentdomain.CatalogPort
	reg     source.Registry
	timeout time.Duration
	log     logger.Logger
}

// New creates a new activity service
func New(catalog contentdomain.CatalogPort, reg source.Registry, opt Options) *Svc {
	if catalog == nil {
		panic("activity.Service requires a non nil CatalogPort")
	}
	if len(reg) == 0 {
		panic("activity.Service requires a non empty adapter registry")
	}
	if opt.AdapterTimeout <= 0 {
		opt.AdapterTimeout = defaultAdapterTimeout
	}
	return &Svc{
		catalog: catalog,
		reg:     reg,
		timeout: opt.AdapterTimeout,
		log:     *logger.Named("activity"),
	}
}

// Feed collects the requested sources, aggregates, and pages the result
func (s *Svc) Feed(ctx context.Context, in domain.FeedInput) (domain.Feed, error) {
	sources := domain.ParseSources(in.Sources)
	items := s.collect(ctx, sources)
	return aggregate(items, in, sources), nil
}

// Sources enumerates the enabled sources with their current item counts
func (s *Svc) Sources(ctx context.Context) (domain.SourceList, error) {
	enabled := s.reg.Sources()
	items := s.collect(ctx, enabled)

	byType := map[domain.Source]int{}
	for _, it := range items {
		byType[it.Type]++
	}

	out := make([]domain.SourceCount, 0, len(enabled))
	for _, src := range enabled {
		out = append(out, domain.SourceCount{Source: src, Count: byType[src]})
	}
	return domain.SourceList{Success: true, Sources: out}, nil
}

// collect fans out to every selected adapter concurrently and joins on all of
// them. Each invocation carries its own timeout and recovers its own panics;
// a failed source logs a warning and contributes nothing
func (s *Svc) collect(ctx context.Context, sources []domain.Source) []domain.Item {
	cat, err := s.catalog.Snapshot(ctx)
	if err != nil {
		// the catalog-backed adapters will see an empty snapshot;
		// insight and github adapters can still contribute
		s.log.Warn().Err(err).Msg("catalog snapshot failed, continuing with empty catalog")
		cat = domain.Catalog{}
	}

	results := make([][]domain.Item, len(sources))
	var wg sync.WaitGroup
	for i, src := range sources {
		ad, ok := s.reg[src]
		if !ok {
			continue
		}
		wg.Add(1)
		go func(i int, src domain.Source, ad domain.Adapter) {
			defer wg.Done()
			items, err := s.invoke(ctx, src, ad, cat)
			if err != nil {
				s.log.Warn().Err(err).Str("source", string(src)).Msg("source adapter failed")
				return
			}
			results[i] = items
		}(i, src, ad)
	}
	wg.Wait()

	var out []domain.Item
	for _, items := range results {
		out = append(out, items...)
	}
	return out
}

// invoke runs one adapter under its timeout with panic containment.
// Failures come back tagged with the source name, timeout expiry included
func (s *Svc) invoke(ctx context.Context, src domain.Source, ad domain.Adapter, cat domain.Catalog) (items []domain.Item, err error) {
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	defer func() {
		if v := recover(); v != nil {
			items = nil
			err = perr.PanicErrf("adapter panicked: %v", v)
		}
	}()
	items, cerr := ad.Collect(cctx, cat)
	if cerr != nil {
		return nil, perr.Sourcef(string(src), "collect failed: %v", cerr)
	}
	return items, nil
}
