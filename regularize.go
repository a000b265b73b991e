package conic

import (
	"fmt"
	"math"
)

// RegularizedQuadratic is a conic in canonical symmetric form over the range
// [−RangeBound, RangeBound]:
//
//	(B·p, C·p) / (A0 + A2·τ²),  p = [1, τ, τ²]
//
// The linear term of the denominator has been eliminated by a bilinear
// reparametrization, so the curve traces the same points as its source but
// at a different speed.
//
// Center is the midpoint of the source range, which the recentring step
// subtracted from the parameter. Sigma is the bilinear factor that restores
// the source parametrization: a curve parametrized like this one over
// [Center−RangeBound, Center+RangeBound], with Sigma applied, moves at the
// source's speed.
type RegularizedQuadratic struct {
	RangeBound float64
	Center     float64
	A0, A2     float64
	B, C       Row3
	Sigma      BilinearFactor
}

var _ ParametricCurve = RegularizedQuadratic{}

// Range returns [−RangeBound, RangeBound].
func (c RegularizedQuadratic) Range() CurveRange {
	return CurveRange{-c.RangeBound, c.RangeBound}
}

// SourceRange returns the range of the curve this one was regularized from.
func (c RegularizedQuadratic) SourceRange() CurveRange {
	return CurveRange{c.Center - c.RangeBound, c.Center + c.RangeBound}
}

// Eval evaluates the curve at τ ∈ [−RangeBound, RangeBound].
func (c RegularizedQuadratic) Eval(tau float64) Point {
	p := ExpandPower2(tau)
	d := c.A0 + c.A2*tau*tau
	return Point{
		X: c.B.Dot(p) / d,
		Y: c.C.Dot(p) / d,
	}
}

func (c RegularizedQuadratic) Start() Point { return c.Eval(-c.RangeBound) }
func (c RegularizedQuadratic) End() Point   { return c.Eval(c.RangeBound) }

// ToPower returns the curve as a general power-form quadratic.
func (c RegularizedQuadratic) ToPower() PowerQuadratic {
	return PowerQuadratic{
		Range: c.Range(),
		H:     [3]Row3{c.B, c.C, {c.A0, 0, c.A2}},
		Sigma: UnitSigma,
	}
}

// ToWeighted returns the curve in the weighted basis with the unit bilinear
// factor, over the symmetric range.
func (c RegularizedQuadratic) ToWeighted() WeightedQuadratic {
	return c.ToPower().ToWeighted()
}

// CharacterizeEndpoints returns positions and derivatives, scaled by the
// width of the range, at both ends of the symmetric range.
func (c RegularizedQuadratic) CharacterizeEndpoints() Endpoints {
	return c.ToWeighted().CharacterizeEndpoints()
}

// ConvertToParabolic replaces the conic with the cubic that matches its end
// positions and end derivatives (Hermite interpolation). The cubic is placed
// on the source range with the restoring bilinear factor, so its endpoint
// characterization agrees with that of the source curve.
func (c RegularizedQuadratic) ConvertToParabolic() CubicCurve {
	e := c.CharacterizeEndpoints()
	// The factor 3 comes from the Bernstein normalization of the middle
	// coefficients.
	x := Row4{e.P0.X, 3*e.P0.X + e.D0.X, 3*e.P1.X - e.D1.X, e.P1.X}
	y := Row4{e.P0.Y, 3*e.P0.Y + e.D0.Y, 3*e.P1.Y - e.D1.Y, e.P1.Y}
	return CubicCurve{
		Range: c.SourceRange(),
		H:     [2]Row4{x, y},
		Sigma: c.Sigma,
	}
}

// Regularize recentres the curve and raises it to regularized symmetric form.
func (c WeightedQuadratic) Regularize() RegularizedQuadratic {
	return c.ToPower().Regularize()
}

// Regularize recentres the curve and raises it to regularized symmetric form.
func (c PowerQuadratic) Regularize() RegularizedQuadratic {
	center := c.Range.Mid()
	r := c.FigureSymmetricRange().RaiseToRegularizedSymmetric()
	r.Center = center
	return r
}

// regularTolerance bounds the relative size of the denominator's linear
// coefficient after regularization.
const regularTolerance = 1e-9

// RaiseToRegularizedSymmetric eliminates the linear term of the denominator
// of a curve with a symmetric range.
//
// With h the range bound, combo_s = D(h) and combo_d = D(−h) are the values
// of the denominator at the two ends. Reparametrizing with the bilinear
// factor (√|combo_d|, √|combo_s|) balances the denominator's end weights,
// which zeroes its linear coefficient. The reparametrization is applied by
// overwriting the bilinear factor in the weighted basis and collapsing back
// to the power basis.
//
// The curve must not have a pole on its closed range. A linear coefficient
// that does not vanish signals a defect in the algebra and panics with an
// [InvariantError].
func (c PowerQuadratic) RaiseToRegularizedSymmetric() RegularizedQuadratic {
	h := c.Range[1]
	den := c.H[2]
	comboS := den[0] + den[1]*h + den[2]*h*h
	comboD := den[0] - den[1]*h + den[2]*h*h
	if comboS == 0 || comboD == 0 || !isFinite(comboS) || !isFinite(comboD) {
		panic(InvariantError(fmt.Sprintf("denominator vanishes at the range bound ±%g", h)))
	}
	p := math.Sqrt(math.Abs(comboD))
	q := math.Sqrt(math.Abs(comboS))
	// Only the ratio p:q matters; balance the magnitudes.
	k := math.Sqrt(p * q)
	ratio := BilinearFactor{P: p / k, Q: q / k}

	collapse := PowerToWeighted3(-h, h).
		Mul(SigmaScale3(ratio)).
		Mul(WeightedToPower3(-h, h))
	hr := normalizeRows(ApplyQMat(c.H, collapse))

	a0, a1, a2 := hr[2][0], hr[2][1], hr[2][2]
	if math.Abs(a1) > regularTolerance*(math.Abs(a0)+math.Abs(a2)*h*h) {
		panic(InvariantError(fmt.Sprintf("regularized denominator has linear coefficient %g (a0 = %g, a2 = %g)", a1, a0, a2)))
	}
	return RegularizedQuadratic{
		RangeBound: h,
		Center:     c.Range.Mid(),
		A0:         a0,
		A2:         a2,
		B:          hr[0],
		C:          hr[1],
		Sigma:      ratio.Inverse(),
	}
}
