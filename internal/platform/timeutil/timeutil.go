// Package timeutil contains time related helpers
package timeutil

import "time"

// ISO formats t as RFC3339 UTC, or returns "" for the zero value
func ISO(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// ParseISO parses an RFC3339 timestamp; the zero value and ok=false on failure
func ParseISO(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
