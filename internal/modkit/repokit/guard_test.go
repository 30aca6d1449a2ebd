package repokit

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakePinger records the ctx it was invoked with and returns a preset error
type fakePinger struct {
	lastCtx context.Context
	err     error
}

func (f *fakePinger) Ping(ctx context.Context) error {
	f.lastCtx = ctx
	return f.err
}

type fakeGuarder struct{ err error }

func (f fakeGuarder) Guard(context.Context) error { return f.err }

// assertPanicContains runs fn and asserts it panics with a message containing wantSub
func assertPanicContains(t *testing.T, name, wantSub string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("%s: expected panic, got none", name)
			return
		}
		var msg string
		switch x := r.(type) {
		case string:
			msg = x
		case error:
			msg = x.Error()
		default:
			msg = ""
		}
		if !strings.Contains(msg, wantSub) {
			t.Fatalf("%s: panic message mismatch, got %q want contains %q", name, msg, wantSub)
		}
	}()
	fn()
}

func TestMustPing_PanicsOnNilDependency(t *testing.T) {
	t.Parallel()
	assertPanicContains(t, "MustPing(nil)", "pg: nil dependency", func() {
		MustPing(context.Background(), "pg", nil)
	})
}

func TestMustPing_AddsDefaultTimeoutWhenNone(t *testing.T) {
	t.Parallel()

	p := &fakePinger{}
	MustPing(context.Background(), "pg", p)

	if p.lastCtx == nil {
		t.Fatalf("pinger not invoked")
	}
	if _, ok := p.lastCtx.Deadline(); !ok {
		t.Fatalf("expected a deadline on the ping context")
	}
}

func TestMustPing_PanicsOnPingError(t *testing.T) {
	t.Parallel()

	p := &fakePinger{err: errors.New("refused")}
	assertPanicContains(t, "MustPing(err)", "pg ping failed", func() {
		MustPing(context.Background(), "pg", p)
	})
}

func TestMustGuard(t *testing.T) {
	t.Parallel()

	MustGuard(context.Background(), fakeGuarder{}) // no panic

	assertPanicContains(t, "MustGuard(err)", "dependency guard failed", func() {
		MustGuard(context.Background(), fakeGuarder{err: errors.New("pg down")})
	})
}
