package conic

import "iter"

// CubicBez is a cubic Bézier segment given by its control points.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

var _ ParametricCurve = CubicBez{}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// PathElements returns the segment as a "move to" followed by a "cubic to".
func (c CubicBez) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(c.P0)) &&
			yield(CubicTo(c.P1, c.P2, c.P3))
	}
}

// Eval evaluates the segment at t ∈ [0, 1].
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

// Curve lifts the segment into homogeneous form over the range [0, 1].
func (c CubicBez) Curve() CubicCurve {
	return CubicCurve{
		Range: CurveRange{0, 1},
		H: [2]Row4{
			{c.P0.X, 3 * c.P1.X, 3 * c.P2.X, c.P3.X},
			{c.P0.Y, 3 * c.P1.Y, 3 * c.P2.Y, c.P3.Y},
		},
		Sigma: UnitSigma,
	}
}
