package errors

import (
	"context"
	stderrs "errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func pg(code string) *pgconn.PgError {
	return &pgconn.PgError{Code: code}
}

func TestExtractPgError(t *testing.T) {
	src := pg("23505")
	got, ok := ExtractPgError(Wrap(src, ErrorCodeDB, "insert post"))
	if !ok || got != src {
		t.Fatalf("ExtractPgError failed to unwrap: %v %v", got, ok)
	}
	if _, ok := ExtractPgError(stderrs.New("nope")); ok {
		t.Fatalf("ExtractPgError matched a non-pg error")
	}
}

func TestIsSQLState(t *testing.T) {
	if !IsSQLState(pg("40001"), "40001") {
		t.Fatalf("IsSQLState missed a matching code")
	}
	if IsSQLState(pg("40001"), "23505") {
		t.Fatalf("IsSQLState matched the wrong code")
	}
	if IsSQLState(stderrs.New("nope"), "40001") {
		t.Fatalf("IsSQLState matched a non-pg error")
	}
}

func TestDBErrorCodeMappings(t *testing.T) {
	cases := []struct {
		code string
		want ErrorCode
	}{
		{"23502", ErrorCodeValidation},  // not null
		{"23514", ErrorCodeValidation},  // check
		{"22P02", ErrorCodeValidation},  // invalid text representation
		{"40001", ErrorCodeUnavailable}, // serialization failure
		{"40P01", ErrorCodeUnavailable}, // deadlock
		{"57P03", ErrorCodeUnavailable}, // cannot connect now
		{"XXXXX", ErrorCodeDB},          // default branch
	}
	for _, c := range cases {
		got, ok := DBErrorCode(pg(c.code))
		if !ok {
			t.Fatalf("expected ok for PgError code %s", c.code)
		}
		if got != c.want {
			t.Fatalf("DBErrorCode(%s) = %v, want %v", c.code, got, c.want)
		}
	}

	if _, ok := DBErrorCode(stderrs.New("nope")); ok {
		t.Fatalf("DBErrorCode should return ok=false for non-pg error")
	}
}

func TestFromPg(t *testing.T) {
	if FromPg(nil) != nil {
		t.Fatalf("FromPg(nil) should be nil")
	}

	err := FromPg(pg("23502"))
	if CodeOf(err) != ErrorCodeValidation {
		t.Fatalf("FromPg code = %v, want %v", CodeOf(err), ErrorCodeValidation)
	}

	// non-pg errors pass through untouched
	plain := stderrs.New("boom")
	if out := FromPg(plain); out != plain {
		t.Fatalf("FromPg changed a non-pg error: %v", out)
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(pg("40001")) {
		t.Fatalf("serialization failure should be retryable")
	}
	if !IsRetryable(pg("40P01")) {
		t.Fatalf("deadlock should be retryable")
	}
	if IsRetryable(pg("23505")) {
		t.Fatalf("unique violation should not be retryable")
	}
	if IsRetryable(stderrs.New("nope")) {
		t.Fatalf("plain error should not be retryable")
	}
	if IsRetryable(context.DeadlineExceeded) {
		t.Fatalf("deadline exceeded should not be retryable")
	}
	if !IsRetryable(Newf(ErrorCodeUnavailable, "upstream down")) {
		t.Fatalf("unavailable project error should be retryable")
	}
	if IsRetryable(nil) {
		t.Fatalf("nil should not be retryable")
	}
}
