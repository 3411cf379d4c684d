package domain

// FeedInput is the parsed query for the activity feed
type FeedInput struct {
	Sources string `query:"sources" validate:"omitempty,max=200" example:"blog,github"`
	Limit   int    `query:"limit" example:"50"`
	After   string `query:"after" validate:"omitempty,rfc3339" example:"2025-01-01T00:00:00Z"`
	Before  string `query:"before" validate:"omitempty,rfc3339" example:"2025-06-01T00:00:00Z"`
}

// Filters echoes the normalized request parameters
type Filters struct {
	Sources string  `json:"sources"` // "all" or the surviving csv
	Limit   int     `json:"limit"`
	After   *string `json:"after"`
	Before  *string `json:"before"`
}

// Feed is the activity feed response body
type Feed struct {
	Success    bool    `json:"success"`
	Count      int     `json:"count"`
	Total      int     `json:"total"`
	Activities []Item  `json:"activities"`
	Filters    Filters `json:"filters"`
}

// SourceCount is one enabled source with its current item count
type SourceCount struct {
	Source Source `json:"source"`
	Count  int    `json:"count"`
}

// SourceList enumerates enabled sources for the feed
type SourceList struct {
	Success bool          `json:"success"`
	Sources []SourceCount `json:"sources"`
}
