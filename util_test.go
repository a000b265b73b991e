package conic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats with both an absolute and a relative margin.
func approx(margin float64) cmp.Option {
	return cmpopts.EquateApprox(margin, margin)
}

func assertNear(t *testing.T, got Point, want Point, epsilon float64) {
	t.Helper()
	if d := got.Sub(want).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

func assertNearVec(t *testing.T, got Vec2, want Vec2, epsilon float64) {
	t.Helper()
	if d := got.Sub(want).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

// finiteDifference approximates the derivative of c at t by a central
// difference.
func finiteDifference(c ParametricCurve, t, delta float64) Vec2 {
	return c.Eval(t + delta).Sub(c.Eval(t - delta)).Mul(1 / (2 * delta))
}
