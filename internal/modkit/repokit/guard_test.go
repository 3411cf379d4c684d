package repokit_test

import (
	"context"
	"errors"
	"testing"

	"homefeed/internal/modkit/repokit"
	"homefeed/internal/platform/testkit"
)

type fakeGuarder struct{ err error }

func (g fakeGuarder) Guard(context.Context) error { return g.err }

func TestMustGuard(t *testing.T) {
	testkit.MustNotPanic(t, func() {
		repokit.MustGuard(context.Background(), fakeGuarder{})
	})
	testkit.MustPanic(t, func() {
		repokit.MustGuard(context.Background(), fakeGuarder{err: errors.New("pg unreachable")})
	})
}
