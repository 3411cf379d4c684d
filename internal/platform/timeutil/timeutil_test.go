package timeutil_test

import (
	"testing"
	"time"

	"homefeed/internal/platform/timeutil"
)

func TestISO(t *testing.T) {
	if got := timeutil.ISO(time.Time{}); got != "" {
		t.Fatalf("zero time: got %q", got)
	}
	at := time.Date(2025, 3, 1, 12, 30, 0, 0, time.FixedZone("CET", 3600))
	if got := timeutil.ISO(at); got != "2025-03-01T11:30:00Z" {
		t.Fatalf("got %q", got)
	}
}

func TestParseISO(t *testing.T) {
	if _, ok := timeutil.ParseISO(""); ok {
		t.Fatal("empty should not parse")
	}
	if _, ok := timeutil.ParseISO("not-a-time"); ok {
		t.Fatal("garbage should not parse")
	}
	got, ok := timeutil.ParseISO("2025-03-01T11:30:00Z")
	if !ok || !got.Equal(time.Date(2025, 3, 1, 11, 30, 0, 0, time.UTC)) {
		t.Fatalf("got %v ok=%v", got, ok)
	}
}
