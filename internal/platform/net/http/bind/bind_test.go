package bind_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "homefeed/internal/platform/errors"
	"homefeed/internal/platform/net/http/bind"
)

type feedQuery struct {
	Sources string  `query:"sources" validate:"omitempty,max=200"`
	Limit   int     `query:"limit" validate:"omitempty,min=0"`
	After   string  `query:"after" validate:"omitempty,rfc3339"`
	Flag    bool    `query:"flag"`
	Label   *string `query:"label"`
}

func req(t *testing.T, rawQuery string) *http.Request {
	t.Helper()
	return httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
}

func TestParseQuery_HappyPath(t *testing.T) {
	got, err := bind.ParseQuery[feedQuery](req(t, "sources=blog,github&limit=25&after=2025-01-01T00:00:00Z&flag=true&label=x"))
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	if got.Sources != "blog,github" || got.Limit != 25 || got.After != "2025-01-01T00:00:00Z" {
		t.Fatalf("got %+v", got)
	}
	if !got.Flag || got.Label == nil || *got.Label != "x" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseQuery_MissingParamsKeepZeroValues(t *testing.T) {
	got, err := bind.ParseQuery[feedQuery](req(t, ""))
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	if got.Sources != "" || got.Limit != 0 || got.Label != nil {
		t.Fatalf("got %+v", got)
	}
}

func TestParseQuery_BadIntIsInvalidArgument(t *testing.T) {
	_, err := bind.ParseQuery[feedQuery](req(t, "limit=lots"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if perr.HTTPStatus(err) != http.StatusBadRequest {
		t.Fatalf("status: got %d", perr.HTTPStatus(err))
	}
	if !strings.Contains(err.Error(), "limit") {
		t.Fatalf("error should name the parameter: %v", err)
	}
}

func TestParseQuery_BadTimestampFailsValidation(t *testing.T) {
	_, err := bind.ParseQuery[feedQuery](req(t, "after=yesterday"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if perr.HTTPStatus(err) != http.StatusBadRequest {
		t.Fatalf("status: got %d", perr.HTTPStatus(err))
	}
	if !strings.Contains(err.Error(), "RFC 3339") {
		t.Fatalf("message: %v", err)
	}
}

func TestParseQuery_AcceptsOffsetTimestamps(t *testing.T) {
	got, err := bind.ParseQuery[feedQuery](req(t, "after=2025-01-01T09:30:00%2B02:00"))
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	if got.After == "" {
		t.Fatalf("got %+v", got)
	}
}
