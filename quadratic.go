package conic

import (
	"iter"
	"math"
)

// WeightedQuadratic is a planar rational quadratic (conic) curve in
// homogeneous form over the weighted basis.
//
// H holds the numerator rows for x and y followed by the shared denominator
// row. The point at t is
//
//	((H[0]·w) / (H[2]·w), (H[1]·w) / (H[2]·w))
//
// where w = [b², b·a, a²], a = σ.P·(t−r0) and b = σ.Q·(r1−t). The rows share
// an arbitrary common scale; see [WeightedQuadratic.Normalize].
//
// The denominator must not vanish on the open range. This is not checked by
// the evaluation and transform methods.
type WeightedQuadratic struct {
	Range CurveRange
	H     [3]Row3
	Sigma BilinearFactor
}

var _ ParametricCurve = WeightedQuadratic{}

// X returns the numerator row for x.
func (c WeightedQuadratic) X() Row3 { return c.H[0] }

// Y returns the numerator row for y.
func (c WeightedQuadratic) Y() Row3 { return c.H[1] }

// Denominator returns the denominator row.
func (c WeightedQuadratic) Denominator() Row3 { return c.H[2] }

// Eval evaluates the curve at t by homogeneous reduction.
func (c WeightedQuadratic) Eval(t float64) Point {
	w := ExpandWeighted2(t, c.Sigma, c.Range)
	d := c.H[2].Dot(w)
	return Point{
		X: c.H[0].Dot(w) / d,
		Y: c.H[1].Dot(w) / d,
	}
}

// EvalMany evaluates the curve at each of ts.
func (c WeightedQuadratic) EvalMany(ts []float64) []Point {
	out := make([]Point, len(ts))
	for i, t := range ts {
		out[i] = c.Eval(t)
	}
	return out
}

// Points returns an iterator over the curve evaluated at each of ts.
func (c WeightedQuadratic) Points(ts iter.Seq[float64]) iter.Seq[Point] {
	return evalSeq(c, ts)
}

// EvalDerivativeScaled returns the derivative of the curve at t, multiplied
// by scale.
//
// The derivative of the projective ratio is computed from cross-combinations
// of the numerator and denominator rows rather than from an explicit N'D − ND'
// expansion.
func (c WeightedQuadratic) EvalDerivativeScaled(t, scale float64) Vec2 {
	a, b := blend(t, c.Sigma, c.Range)
	w := Row3{b * b, b * a, a * a}
	d := c.H[2].Dot(w)
	f := scale * (c.Sigma.P*b + c.Sigma.Q*a) / (d * d)
	return Vec2{
		X: f * cross2(c.H[0], c.H[2], a, b),
		Y: f * cross2(c.H[1], c.H[2], a, b),
	}
}

// CharacterizeEndpoints returns the positions at r0 and r1 and the
// derivatives there, scaled by r1 − r0. Closed forms are used; the
// derivatives are compensated by the sigma ratio so that both ends report a
// consistent speed.
func (c WeightedQuadratic) CharacterizeEndpoints() Endpoints {
	x, y, d := c.H[0], c.H[1], c.H[2]
	ratio := c.Sigma.Ratio()
	f0 := ratio / (d[0] * d[0])
	f1 := 1 / (ratio * d[2] * d[2])
	return Endpoints{
		P0: Pt(x[0]/d[0], y[0]/d[0]),
		D0: Vec(
			f0*(x[1]*d[0]-x[0]*d[1]),
			f0*(y[1]*d[0]-y[0]*d[1]),
		),
		P1: Pt(x[2]/d[2], y[2]/d[2]),
		D1: Vec(
			f1*(x[2]*d[1]-x[1]*d[2]),
			f1*(y[2]*d[1]-y[1]*d[2]),
		),
	}
}

// Start implements [ParametricCurve].
func (c WeightedQuadratic) Start() Point { return c.Eval(c.Range[0]) }

// End implements [ParametricCurve].
func (c WeightedQuadratic) End() Point { return c.Eval(c.Range[1]) }

// Normalize rescales all rows by the reciprocal of the denominator row's
// norm, removing the projective scale ambiguity. The traced curve is
// unchanged.
func (c WeightedQuadratic) Normalize() WeightedQuadratic {
	c.H = normalizeRows(c.H)
	return c
}

// Displace translates every point of the curve by v.
func (c WeightedQuadratic) Displace(v Vec2) WeightedQuadratic {
	c.H[0] = c.H[0].Add(c.H[2].Mul(v.X))
	c.H[1] = c.H[1].Add(c.H[2].Mul(v.Y))
	return c
}

// BilinearTransform multiplies sigma componentwise by ratio. The point set
// traced over the range is unchanged; only the speed of traversal changes.
func (c WeightedQuadratic) BilinearTransform(ratio BilinearFactor) WeightedQuadratic {
	c.Sigma = c.Sigma.Mul(ratio)
	return c
}

// RawChangeRange relabels the domain without touching the coefficients. It is
// only meaningful in combination with a matching coefficient update.
func (c WeightedQuadratic) RawChangeRange(r CurveRange) WeightedQuadratic {
	c.Range = r
	return c
}

// SelectRange restricts the curve to the sub-range r. Evaluating the result
// over r reproduces the original curve on that interval.
//
// The curve must not have a pole inside its domain.
func (c WeightedQuadratic) SelectRange(r CurveRange) WeightedQuadratic {
	alpha, beta, gamma, delta, sigma := selectionWeights(c.Range, c.Sigma, r)
	return WeightedQuadratic{
		Range: r,
		H:     ApplyQMat(c.H, Selection3(alpha, beta, gamma, delta)),
		Sigma: sigma,
	}
}

// ToPower converts the curve to the power basis [1, t, t²], folding sigma
// into the coefficients.
func (c WeightedQuadratic) ToPower() PowerQuadratic {
	m := SigmaScale3(c.Sigma).Mul(WeightedToPower3(c.Range[0], c.Range[1]))
	return PowerQuadratic{
		Range: c.Range,
		H:     ApplyQMat(c.H, m),
		Sigma: UnitSigma,
	}
}

// IsFinite reports whether all coefficients, the range and sigma are finite.
func (c WeightedQuadratic) IsFinite() bool {
	return c.H[0].IsFinite() && c.H[1].IsFinite() && c.H[2].IsFinite() &&
		isFinite(c.Range[0]) && isFinite(c.Range[1]) &&
		isFinite(c.Sigma.P) && isFinite(c.Sigma.Q)
}

// PowerQuadratic is a rational quadratic curve over the power basis
// [1, t, t²]. Sigma is always folded into the coefficients; the field
// records the unit factor.
type PowerQuadratic struct {
	Range CurveRange
	H     [3]Row3
	Sigma BilinearFactor
}

var _ ParametricCurve = PowerQuadratic{}

// Eval evaluates the polynomial ratio at t.
func (c PowerQuadratic) Eval(t float64) Point {
	p := ExpandPower2(t)
	d := c.H[2].Dot(p)
	return Point{
		X: c.H[0].Dot(p) / d,
		Y: c.H[1].Dot(p) / d,
	}
}

func (c PowerQuadratic) Start() Point { return c.Eval(c.Range[0]) }
func (c PowerQuadratic) End() Point   { return c.Eval(c.Range[1]) }

// Discriminant returns a1² − 4·a0·a2 of the denominator. A positive value
// means the denominator has real roots.
func (c PowerQuadratic) Discriminant() float64 {
	d := c.H[2]
	return d[1]*d[1] - 4*d[0]*d[2]
}

// Normalize rescales all rows by the reciprocal of the denominator row's
// norm.
func (c PowerQuadratic) Normalize() PowerQuadratic {
	c.H = normalizeRows(c.H)
	return c
}

// ToWeighted converts the curve to the weighted basis with the unit bilinear
// factor.
func (c PowerQuadratic) ToWeighted() WeightedQuadratic {
	return WeightedQuadratic{
		Range: c.Range,
		H:     ApplyQMat(c.H, PowerToWeighted3(c.Range[0], c.Range[1])),
		Sigma: UnitSigma,
	}
}

// FigureSymmetricRange recentres the curve on 0. With d the midpoint of the
// range, t is replaced by t + d in every row; the result has the range
// [−h, h] where h is half the original width.
func (c PowerQuadratic) FigureSymmetricRange() PowerQuadratic {
	d := c.Range.Mid()
	h := c.Range.HalfWidth()
	for i, row := range c.H {
		c.H[i] = shiftPoly2(row, d)
	}
	c.Range = CurveRange{-h, h}
	return c
}

// shiftPoly2 returns the coefficients of p(u + d) in u, by Horner-style
// recomposition of p(t) = c0 + t·(c1 + t·c2).
func shiftPoly2(p Row3, d float64) Row3 {
	// Inner term c1 + t·c2 becomes (c1 + d·c2) + u·c2.
	in0 := p[1] + d*p[2]
	in1 := p[2]
	// Outer term c0 + t·inner becomes c0 + d·in0 + u·(in0 + d·in1) + u²·in1.
	return Row3{p[0] + d*in0, in0 + d*in1, in1}
}

func normalizeRows(h [3]Row3) [3]Row3 {
	n := h[2].Hypot()
	if n == 0 || math.IsNaN(n) {
		return h
	}
	f := 1 / n
	return [3]Row3{h[0].Mul(f), h[1].Mul(f), h[2].Mul(f)}
}

func evalSeq(c ParametricCurve, ts iter.Seq[float64]) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for t := range ts {
			if !yield(c.Eval(t)) {
				return
			}
		}
	}
}
