package conic

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Pt(0, 0).Lerp(Pt(4, 2), 0.25), Pt(1, 0.5))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointFinite(t *testing.T) {
	if Pt(1, 2).IsNaN() || Pt(1, 2).IsInf() {
		t.Error("finite point reported as non-finite")
	}
	if !Pt(math.NaN(), 0).IsNaN() {
		t.Error("NaN not detected")
	}
	if !Pt(0, math.Inf(-1)).IsInf() {
		t.Error("Inf not detected")
	}
}

func TestVecCross(t *testing.T) {
	if c := Vec(1, 0).Cross(Vec(0, 1)); c != 1 {
		t.Errorf("got %g, want 1", c)
	}
	diff(t, Vec(3, 4).Hypot(), 5.0)
	diff(t, Vec(0, 2).Normalize(), Vec(0, 1))
}
