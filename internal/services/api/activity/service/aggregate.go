package service

import (
	"sort"
	"strings"
	"time"

	pstrings "homefeed/internal/platform/strings"
	"homefeed/internal/platform/timeutil"
	"homefeed/internal/services/api/activity/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 100
)

// aggregate applies the time window, sorts, and pages the collected items.
// total reflects the collected count before windowing/truncation
func aggregate(items []domain.Item, in domain.FeedInput, selected []domain.Source) domain.Feed {
	total := len(items)

	after, hasAfter := timeutil.ParseISO(in.After)
	before, hasBefore := timeutil.ParseISO(in.Before)

	kept := make([]domain.Item, 0, len(items))
	for _, it := range items {
		if hasAfter && !it.Timestamp.After(after) {
			continue
		}
		if hasBefore && !it.Timestamp.Before(before) {
			continue
		}
		kept = append(kept, it)
	}

	// newest first, id ascending on equal timestamps for determinism
	sort.Slice(kept, func(i, j int) bool {
		ti, tj := kept[i].Timestamp, kept[j].Timestamp
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return kept[i].ID < kept[j].ID
	})

	limit := clampLimit(in.Limit)
	if len(kept) > limit {
		kept = kept[:limit]
	}

	return domain.Feed{
		Success:    true,
		Count:      len(kept),
		Total:      total,
		Activities: kept,
		Filters: domain.Filters{
			Sources: echoSources(selected),
			Limit:   limit,
			After:   isoPtr(after, hasAfter),
			Before:  isoPtr(before, hasBefore),
		},
	}
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

// echoSources renders the normalized selection: "all" when every known
// source is selected (the default for an absent param), otherwise the
// surviving csv. An explicitly named subset always echoes its names, even
// when it happens to cover every registered adapter
func echoSources(selected []domain.Source) string {
	if len(selected) == len(domain.AllSources()) {
		return "all"
	}
	names := make([]string, 0, len(selected))
	for _, s := range selected {
		names = append(names, string(s))
	}
	return strings.Join(names, ",")
}

func isoPtr(t time.Time, ok bool) *string {
	if !ok {
		return nil
	}
	return pstrings.Ptr(timeutil.ISO(t))
}
