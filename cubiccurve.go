package conic

import "iter"

// CubicCurve is a planar cubic over the cubic weighted Bernstein basis
// [b³, b²a, ba², a³], with the two middle coefficients of each row
// pre-multiplied by 3.
//
// The curve has an implied denominator (a+b)³, whose coefficients in the same
// convention are [1, 3, 3, 1]. With the unit bilinear factor this makes the
// curve an ordinary cubic Bézier in t; other factors reparametrize it.
type CubicCurve struct {
	Range CurveRange
	H     [2]Row4
	Sigma BilinearFactor
}

var _ ParametricCurve = CubicCurve{}

// Eval evaluates the curve at t.
func (c CubicCurve) Eval(t float64) Point {
	a, b := blend(t, c.Sigma, c.Range)
	w := Row4{b * b * b, b * b * a, b * a * a, a * a * a}
	s := a + b
	d := s * s * s
	return Point{
		X: c.H[0].Dot(w) / d,
		Y: c.H[1].Dot(w) / d,
	}
}

// EvalMany evaluates the curve at each of ts.
func (c CubicCurve) EvalMany(ts []float64) []Point {
	out := make([]Point, len(ts))
	for i, t := range ts {
		out[i] = c.Eval(t)
	}
	return out
}

// Points returns an iterator over the curve evaluated at each of ts.
func (c CubicCurve) Points(ts iter.Seq[float64]) iter.Seq[Point] {
	return evalSeq(c, ts)
}

// EvalDerivativeScaled returns the derivative at t, multiplied by scale.
func (c CubicCurve) EvalDerivativeScaled(t, scale float64) Vec2 {
	a, b := blend(t, c.Sigma, c.Range)
	s := a + b
	d := s * s * s
	f := scale * (c.Sigma.P*b + c.Sigma.Q*a) / (d * d)
	return Vec2{
		X: f * cross3(c.H[0], cubicDenominator, a, b),
		Y: f * cross3(c.H[1], cubicDenominator, a, b),
	}
}

// CharacterizeEndpoints returns the positions at r0 and r1 and the
// derivatives there, scaled by r1 − r0.
func (c CubicCurve) CharacterizeEndpoints() Endpoints {
	x, y := c.H[0], c.H[1]
	ratio := c.Sigma.Ratio()
	return Endpoints{
		P0: Pt(x[0], y[0]),
		D0: Vec(x[1]-3*x[0], y[1]-3*y[0]).Mul(ratio),
		P1: Pt(x[3], y[3]),
		D1: Vec(3*x[3]-x[2], 3*y[3]-y[2]).Mul(1 / ratio),
	}
}

func (c CubicCurve) Start() Point { return Pt(c.H[0][0], c.H[1][0]) }
func (c CubicCurve) End() Point   { return Pt(c.H[0][3], c.H[1][3]) }

// ControlPoints returns the Bézier control points of the curve, undoing the
// pre-scaling of the middle coefficients.
func (c CubicCurve) ControlPoints() [4]Point {
	x, y := c.H[0], c.H[1]
	return [4]Point{
		Pt(x[0], y[0]),
		Pt(x[1]/3, y[1]/3),
		Pt(x[2]/3, y[2]/3),
		Pt(x[3], y[3]),
	}
}

// Displace translates every point of the curve by v. The implied denominator
// has the binomial weights 1, 3, 3, 1, so v is added with those weights.
func (c CubicCurve) Displace(v Vec2) CubicCurve {
	c.H[0] = c.H[0].Add(cubicDenominator.Mul(v.X))
	c.H[1] = c.H[1].Add(cubicDenominator.Mul(v.Y))
	return c
}

// BilinearTransform multiplies sigma componentwise by ratio.
func (c CubicCurve) BilinearTransform(ratio BilinearFactor) CubicCurve {
	c.Sigma = c.Sigma.Mul(ratio)
	return c
}

// RawChangeRange relabels the domain without touching the coefficients.
func (c CubicCurve) RawChangeRange(r CurveRange) CubicCurve {
	c.Range = r
	return c
}

// SelectRange restricts the curve to the sub-range r. This is the rational
// analogue of de Casteljau subdivision.
func (c CubicCurve) SelectRange(r CurveRange) CubicCurve {
	alpha, beta, gamma, delta, sigma := selectionWeights(c.Range, c.Sigma, r)
	return CubicCurve{
		Range: r,
		H:     ApplyCMat(c.H, Selection4(alpha, beta, gamma, delta)),
		Sigma: sigma,
	}
}

// Path returns the render-facing form of the curve.
func (c CubicCurve) Path() CubicPath {
	return CubicPath{R: c.Range, X: c.H[0], Y: c.H[1], Sigma: c.Sigma}
}
