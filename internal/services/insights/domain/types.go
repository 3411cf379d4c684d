// Package domain holds analytics types for the insights service
package domain

import "time"

// PageStat is the lifetime view aggregate for one page slug
type PageStat struct {
	Slug         string    `json:"slug"`
	Views        int64     `json:"views"`
	LastViewedAt time.Time `json:"lastViewedAt"`
}

// CommentStat is the lifetime comment aggregate for one page slug
type CommentStat struct {
	Slug          string    `json:"slug"`
	Comments      int64     `json:"comments"`
	LastCommentAt time.Time `json:"lastCommentAt"`
}

// TrendingPage is one slug ranked by views inside a recent window
type TrendingPage struct {
	Slug         string    `json:"slug"`
	Views        int64     `json:"views"`
	LastViewedAt time.Time `json:"lastViewedAt"`
}
