package conic

import (
	"math"
	"testing"
)

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Rotate(0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(math.Pi/2)), Pt(-4, 3), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(a2).Transform(a1), px.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, py.Transform(a2).Transform(a1), py.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, pxy.Transform(a2).Transform(a1), pxy.Transform(a1.Mul(a2)), epsilon)
}

func TestAffineCoefficients(t *testing.T) {
	a := Translate(Vec(5, 6)).Mul(Scale(2, 3))
	diff(t, [6]float64{2, 0, 0, 3, 5, 6}, a.Coefficients())

	arc := ArcPath{Center: Pt(1, 2), Transform: [4]float64{3, 0.5, -1, 2}}
	diff(t, [6]float64{3, 0.5, -1, 2, 1, 2}, arc.Affine().Coefficients())
}

func TestAffineInvert(t *testing.T) {
	const epsilon = 1e-9
	a := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}
	aInv := a.Invert()

	for _, p := range []Point{Pt(1, 0), Pt(0, 1), Pt(1, 1)} {
		assertNear(t, p.Transform(aInv).Transform(a), p, epsilon)
		assertNear(t, p.Transform(a).Transform(aInv), p, epsilon)
	}
}

func TestAffineSVD(t *testing.T) {
	const epsilon = 1e-12
	tests := []struct {
		aff   Affine
		radii Vec2
		th    float64
	}{
		{Scale(3, 2), Vec(3, 2), 0},
		{Rotate(math.Pi / 6).Mul(Scale(3, 2)), Vec(3, 2), math.Pi / 6},
		{Rotate(-math.Pi / 5).Mul(Scale(1, 0.25)).Mul(Translate(Vec(7, 8))), Vec(1, 0.25), -math.Pi / 5},
		// Degenerate: everything collapses onto a line.
		{Affine{1, 1, 2, 2, 0, 0}, Vec(math.Sqrt(10), 0), math.Pi / 4},
	}
	for _, tt := range tests {
		radii, th := tt.aff.svd()
		assertNearVec(t, radii, tt.radii, epsilon)
		if d := math.Abs(th - tt.th); d > epsilon {
			t.Errorf("%v: got angle %g, want %g", tt.aff, th, tt.th)
		}
	}
}

func TestAffineTranslation(t *testing.T) {
	aff := Rotate(1).Mul(Translate(Vec(1, 0)))
	diff(t, Vec(math.Cos(1), math.Sin(1)), aff.Translation(), approx(1e-15))
}
