package conic

import (
	"errors"
	"math"
	"testing"
)

func TestFourPointsEndConditions(t *testing.T) {
	// The conic reproduces the end points and the Bézier end derivatives of
	// its control polygon.
	polygons := [][4]Point{
		{Pt(1, 0), Pt(1, 0.55), Pt(0.55, 1), Pt(0, 1)},
		{Pt(0, 0), Pt(1, 2), Pt(3, 2), Pt(4, 0)},
		{Pt(-2, 1), Pt(0, 3), Pt(2, 2.5), Pt(3, 0)},
	}
	domains := []struct {
		r     CurveRange
		sigma BilinearFactor
	}{
		{Range(0, 1), BilinearFactor{}},
		{Range(-3, 2), Sigma(2, 0.5)},
		{Range(10, 10.5), Sigma(0.3, 0.9)},
	}
	for _, pts := range polygons {
		for _, d := range domains {
			c, err := NewConicFromFourPoints(FourPointSpec{Points: pts, Range: d.r, Sigma: d.sigma})
			if err != nil {
				t.Fatal(err)
			}
			diff(t, d.r, c.Range)

			e := c.CharacterizeEndpoints()
			assertNear(t, e.P0, pts[0], 1e-9)
			assertNear(t, e.P1, pts[3], 1e-9)
			assertNearVec(t, e.D0, pts[1].Sub(pts[0]).Mul(3), 1e-9)
			assertNearVec(t, e.D1, pts[3].Sub(pts[2]).Mul(3), 1e-9)

			assertNear(t, c.Start(), pts[0], 1e-9)
			assertNear(t, c.End(), pts[3], 1e-9)
		}
	}
}

func TestFourPointsZeroSigmaIsUnit(t *testing.T) {
	pts := [4]Point{Pt(0, 0), Pt(1, 2), Pt(3, 2), Pt(4, 0)}
	c, err := NewConicFromFourPoints(FourPointSpec{Points: pts, Range: Range(0, 1)})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, UnitSigma, c.Sigma)
}

func TestFourPointsErrors(t *testing.T) {
	unit := Range(0, 1)
	bump := [4]Point{Pt(0, 0), Pt(1, 1), Pt(2, 1), Pt(3, 0)}
	tests := []struct {
		name string
		spec FourPointSpec
		want error
	}{
		{
			"coincident end points",
			FourPointSpec{Points: [4]Point{Pt(0, 0), Pt(1, 1), Pt(2, 1), Pt(0, 0)}, Range: unit},
			ErrDegenerateGeometry,
		},
		{
			"zero tangent",
			FourPointSpec{Points: [4]Point{Pt(0, 0), Pt(0, 0), Pt(2, 1), Pt(3, 0)}, Range: unit},
			ErrDegenerateGeometry,
		},
		{
			"end tangent along chord",
			FourPointSpec{Points: [4]Point{Pt(0, 0), Pt(1, 1), Pt(2, 0), Pt(3, 0)}, Range: unit},
			ErrDegenerateGeometry,
		},
		{
			"inflection",
			FourPointSpec{Points: [4]Point{Pt(0, 0), Pt(1, 1), Pt(2, -1), Pt(3, 0)}, Range: unit},
			ErrPoleInRange,
		},
		{
			"NaN point",
			FourPointSpec{Points: [4]Point{Pt(0, 0), Pt(math.NaN(), 1), Pt(2, 1), Pt(3, 0)}, Range: unit},
			ErrNonFinite,
		},
		{
			"unordered range",
			FourPointSpec{Points: bump, Range: Range(1, 0)},
			ErrInvalidRange,
		},
		{
			"negative sigma",
			FourPointSpec{Points: bump, Range: unit, Sigma: Sigma(-1, 1)},
			ErrInvalidSigma,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConicFromFourPoints(tt.spec)
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
			var gerr *GeometryError
			if !errors.As(err, &gerr) {
				t.Fatalf("got %T, want *GeometryError", err)
			}
			diff(t, "conic from four points", gerr.Op)
		})
	}
}

func TestThreePointsAndAngleCircle(t *testing.T) {
	// With the control point at the intersection of the end tangents, the
	// angle form traces a circular arc.
	const th = 0.7
	const r = 1.5
	center := Pt(2, -1)
	pts := [3]Point{
		center.Translate(VecFromAngle(0).Mul(r)),
		center.Translate(VecFromAngle(th).Mul(r / math.Cos(th))),
		center.Translate(VecFromAngle(2 * th).Mul(r)),
	}
	c, err := NewConicFromThreePointsAndAngle(ThreePointAngleSpec{
		Points: pts,
		Angle:  th,
		Range:  Range(-1, 1),
		Sigma:  Sigma(1.5, 1),
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, u := range c.Range.Linspace(17) {
		diff(t, r, c.Eval(u).Distance(center), approx(1e-12))
	}
	assertNear(t, c.Start(), pts[0], 1e-12)
	assertNear(t, c.End(), pts[2], 1e-12)
}

func TestThreePointsAndAngleErrors(t *testing.T) {
	pts := [3]Point{Pt(0, 0), Pt(1, 1), Pt(2, 0)}
	unit := Range(0, 1)
	tests := []struct {
		name string
		spec ThreePointAngleSpec
		want error
	}{
		{"pole", ThreePointAngleSpec{Points: pts, Angle: math.Pi, Range: unit}, ErrPoleInRange},
		{"infinite angle", ThreePointAngleSpec{Points: pts, Angle: math.Inf(1), Range: unit}, ErrNonFinite},
		{
			"coincident end points",
			ThreePointAngleSpec{Points: [3]Point{Pt(1, 1), Pt(2, 2), Pt(1, 1)}, Angle: 0.5, Range: unit},
			ErrDegenerateGeometry,
		},
		{"NaN range", ThreePointAngleSpec{Points: pts, Angle: 0.5, Range: Range(0, math.NaN())}, ErrInvalidRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewConicFromThreePointsAndAngle(tt.spec); !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
		})
	}

	// A collinear control polygon is a valid, if flat, conic.
	line := [3]Point{Pt(0, 0), Pt(1, 0), Pt(2, 0)}
	if _, err := NewConicFromThreePointsAndAngle(ThreePointAngleSpec{Points: line, Angle: 0.5, Range: unit}); err != nil {
		t.Fatal(err)
	}
}

func TestCubicFromFourPoints(t *testing.T) {
	pts := [4]Point{Pt(0, 0), Pt(1, 2), Pt(3, 2), Pt(4, 0)}
	c, err := NewCubicFromFourPoints(FourPointSpec{Points: pts, Range: Range(0, 1)})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, [2]Row4{{0, 3, 9, 4}, {0, 6, 6, 0}}, c.H)

	bez := CubicBez{pts[0], pts[1], pts[2], pts[3]}
	for _, u := range c.Range.Linspace(9) {
		assertNear(t, c.Eval(u), bez.Eval(u), 1e-12)
	}

	_, err = NewCubicFromFourPoints(FourPointSpec{Points: pts, Range: Range(0, 1), Sigma: Sigma(0, 1)})
	if !errors.Is(err, ErrInvalidSigma) {
		t.Fatalf("got %v, want %v", err, ErrInvalidSigma)
	}
}
