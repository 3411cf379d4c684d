package strings_test

import (
	"testing"

	str "homefeed/internal/platform/strings"
	"homefeed/internal/platform/testkit"
)

func TestIfEmpty(t *testing.T) {
	def := []int{1, 2}
	if got := str.IfEmpty(nil, def); len(got) != 2 {
		t.Fatalf("got %v", got)
	}
	in := []int{9}
	if got := str.IfEmpty(in, def); len(got) != 1 || got[0] != 9 {
		t.Fatalf("got %v", got)
	}
}

func TestMustString(t *testing.T) {
	if got := str.MustString("ok", "name"); got != "ok" {
		t.Fatalf("got %q", got)
	}
	testkit.MustPanic(t, func() { str.MustString("   ", "name") })
}

func TestMustPrefix(t *testing.T) {
	cases := map[string]string{
		"activity":    "/activity",
		"/activity":   "/activity",
		" /activity/": "/activity",
	}
	for in, want := range cases {
		if got := str.MustPrefix(in); got != want {
			t.Fatalf("MustPrefix(%q): got %q want %q", in, got, want)
		}
	}
	testkit.MustPanic(t, func() { str.MustPrefix("  ") })
	testkit.MustPanic(t, func() { str.MustPrefix("/") })
}

func TestPtrAndDeref(t *testing.T) {
	if str.Ptr("") != nil {
		t.Fatal("empty string should yield nil")
	}
	p := str.Ptr("x")
	if p == nil || str.Deref(p) != "x" {
		t.Fatalf("got %v", p)
	}
	if str.Deref(nil) != "" {
		t.Fatal("nil deref should be empty")
	}
}
