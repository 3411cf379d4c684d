package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	perr "homefeed/internal/platform/errors"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c := NewClient(Options{
		BaseURL:   srv.URL,
		TokensCSV: "tok-a",
		RetryBase: time.Millisecond,
	})
	c.sleep = func(time.Duration) {}
	return c, srv
}

func TestListPublicEvents_OK(t *testing.T) {
	var gotAuth, gotUA string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("ETag", `"abc"`)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"1","type":"WatchEvent","repo":{"id":7,"name":"me/repo"},"created_at":"2025-03-01T10:00:00Z"}
		]`))
	})

	events, etag, notModified, err := c.ListPublicEvents(context.Background(), "me", 30, "")
	if err != nil {
		t.Fatalf("ListPublicEvents: %v", err)
	}
	if notModified {
		t.Fatal("unexpected 304")
	}
	if etag != `"abc"` {
		t.Fatalf("etag: %q", etag)
	}
	if len(events) != 1 || events[0].Type != "WatchEvent" || events[0].Repo.Name != "me/repo" {
		t.Fatalf("events: %+v", events)
	}
	if gotAuth != "token tok-a" {
		t.Fatalf("auth header: %q", gotAuth)
	}
	if gotUA == "" {
		t.Fatal("user agent missing")
	}
}

func TestListPublicEvents_NotModified(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("If-None-Match") != `"abc"` {
			t.Errorf("If-None-Match: %q", r.Header.Get("If-None-Match"))
		}
		w.Header().Set("ETag", `"abc"`)
		w.WriteHeader(http.StatusNotModified)
	})

	events, etag, notModified, err := c.ListPublicEvents(context.Background(), "me", 30, `"abc"`)
	if err != nil {
		t.Fatalf("ListPublicEvents: %v", err)
	}
	if !notModified || events != nil {
		t.Fatalf("notModified=%v events=%v", notModified, events)
	}
	if etag != `"abc"` {
		t.Fatalf("etag: %q", etag)
	}
}

func TestDo_RetriesTransientErrors(t *testing.T) {
	var hits atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	})

	events, _, _, err := c.ListPublicEvents(context.Background(), "me", 30, "")
	if err != nil {
		t.Fatalf("expected retry to succeed: %v", err)
	}
	if len(events) != 0 || hits.Load() != 2 {
		t.Fatalf("events=%v hits=%d", events, hits.Load())
	}
}

func TestDo_RateLimitExhaustsRetries(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "1")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, _, _, err := c.ListPublicEvents(context.Background(), "me", 30, "")
	if err == nil {
		t.Fatal("expected rate limit error")
	}
	if !perr.IsCode(err, perr.ErrorCodeTooManyRequests) {
		t.Fatalf("code: %v", perr.CodeOf(err))
	}
}

func TestAuthenticated(t *testing.T) {
	if NewClient(Options{}).Authenticated() {
		t.Fatal("tokenless client should not report authenticated")
	}
	if !NewClient(Options{TokensCSV: " a , b "}).Authenticated() {
		t.Fatal("token client should report authenticated")
	}
}

func TestTokenRotation(t *testing.T) {
	c := NewClient(Options{TokensCSV: "a,b"})
	first := c.getToken()
	second := c.getToken()
	if first == second {
		t.Fatalf("tokens did not rotate: %q %q", first, second)
	}
}

func TestComputeWait(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	if got := computeWait(0, now.Add(30*time.Second), 0, now); got != 30*time.Second {
		t.Fatalf("reset wait: %v", got)
	}
	if got := computeWait(0, time.Time{}, 7, now); got != 7*time.Second {
		t.Fatalf("retry-after wait: %v", got)
	}
	if got := computeWait(10, now.Add(time.Hour), 0, now); got != 0 {
		t.Fatalf("remaining quota should not wait: %v", got)
	}
}
