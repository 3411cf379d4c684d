package github

import (
	"encoding/json"
	"time"
)

// Event is a partial GitHub public event document with fields we use
type Event struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Actor     Actor           `json:"actor"`
	Repo      EventRepo       `json:"repo"`
	Payload   json.RawMessage `json:"payload"`
	Public    bool            `json:"public"`
	CreatedAt time.Time       `json:"created_at"`
}

// Actor is the user that triggered an event
type Actor struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
}

// EventRepo is the repository an event happened on
type EventRepo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"` // owner/name
	URL  string `json:"url"`
}

// PushPayload is the payload of a PushEvent
type PushPayload struct {
	Ref     string `json:"ref"`
	Size    int    `json:"size"`
	Commits []struct {
		SHA     string `json:"sha"`
		Message string `json:"message"`
	} `json:"commits"`
}

// ReleasePayload is the payload of a ReleaseEvent
type ReleasePayload struct {
	Action  string `json:"action"`
	Release struct {
		TagName string `json:"tag_name"`
		Name    string `json:"name"`
		HTMLURL string `json:"html_url"`
	} `json:"release"`
}

// CreatePayload is the payload of a CreateEvent
type CreatePayload struct {
	RefType string `json:"ref_type"`
	Ref     string `json:"ref"`
}
