package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	phttp "homefeed/internal/platform/net/http"
	activityhttp "homefeed/internal/services/api/activity/http"
	"homefeed/internal/services/api/activity/domain"
	"homefeed/internal/services/api/activity/service"
	"homefeed/internal/services/api/activity/source"
	contentdomain "homefeed/internal/services/content/domain"
)

type fixedCatalog struct{}

func (fixedCatalog) Snapshot(context.Context) (contentdomain.Snapshot, error) {
	return contentdomain.Snapshot{}, nil
}

type cannedAdapter struct {
	src   domain.Source
	items []domain.Item
}

func (a cannedAdapter) Source() domain.Source { return a.src }

func (a cannedAdapter) Collect(context.Context, domain.Catalog) ([]domain.Item, error) {
	return a.items, nil
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	reg := source.Registry{
		domain.SourceBlog: cannedAdapter{src: domain.SourceBlog, items: []domain.Item{
			{
				ID:        "blog:hello",
				Type:      domain.SourceBlog,
				Title:     "Hello world",
				Timestamp: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
			},
		}},
		domain.SourceGitHub: cannedAdapter{src: domain.SourceGitHub},
	}
	svc := service.New(fixedCatalog{}, reg, service.Options{})

	srv := phttp.NewServer(phttp.ServerOptions{})
	srv.Router().Route("/api/activity", func(r phttp.Router) {
		activityhttp.Register(r, svc)
	})
	return srv.Handler()
}

func TestFeedEndpoint_OK(t *testing.T) {
	h := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/activity", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d body %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Success    bool          `json:"success"`
		Count      int           `json:"count"`
		Total      int           `json:"total"`
		Activities []domain.Item `json:"activities"`
		Filters    struct {
			Sources string  `json:"sources"`
			Limit   int     `json:"limit"`
			After   *string `json:"after"`
			Before  *string `json:"before"`
		} `json:"filters"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.Count != 1 || body.Total != 1 {
		t.Fatalf("body: %+v", body)
	}
	if body.Filters.Sources != "all" || body.Filters.Limit != 50 {
		t.Fatalf("filters: %+v", body.Filters)
	}
	if body.Activities[0].ID != "blog:hello" {
		t.Fatalf("activities: %+v", body.Activities)
	}
}

func TestFeedEndpoint_EmptyWindowKeepsArray(t *testing.T) {
	h := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/activity?after=2030-01-01T00:00:00Z", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d body %s", rec.Code, rec.Body.String())
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(body["activities"]) != "[]" {
		t.Fatalf("activities: got %s want []", body["activities"])
	}
	if string(body["count"]) != "0" {
		t.Fatalf("count: got %s", body["count"])
	}
}

func TestFeedEndpoint_NegativeLimitClampsToDefault(t *testing.T) {
	h := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/activity?limit=-1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d body %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Filters struct {
			Limit int `json:"limit"`
		} `json:"filters"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Filters.Limit != 50 {
		t.Fatalf("filters.limit: got %d want 50", body.Filters.Limit)
	}
}

func TestFeedEndpoint_SubsetEchoesNames(t *testing.T) {
	h := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/activity?sources=blog,github", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d body %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Filters struct {
			Sources string `json:"sources"`
		} `json:"filters"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// the named pair covers every adapter this server registers, and the
	// echo still reports the names rather than collapsing to "all"
	if body.Filters.Sources != "blog,github" {
		t.Fatalf("filters.sources: got %q want blog,github", body.Filters.Sources)
	}
}

func TestFeedEndpoint_RejectsMalformedAfter(t *testing.T) {
	h := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/activity?after=yesterday", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d body %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error == "" {
		t.Fatalf("expected an error field, got %s", rec.Body.String())
	}
}

func TestSourcesEndpoint(t *testing.T) {
	h := newTestServer(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/activity/sources", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d body %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Success bool `json:"success"`
		Sources []struct {
			Source string `json:"source"`
			Count  int    `json:"count"`
		} `json:"sources"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || len(body.Sources) != 2 {
		t.Fatalf("body: %+v", body)
	}
}
