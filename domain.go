package conic

import (
	"fmt"
	"math"
)

// CurveRange is the parameter domain [R[0], R[1]] of a curve. A valid range
// is ordered, R[0] < R[1].
type CurveRange [2]float64

// Range returns the range [r0, r1].
func Range(r0, r1 float64) CurveRange {
	return CurveRange{r0, r1}
}

func (r CurveRange) String() string {
	return fmt.Sprintf("[%g, %g]", r[0], r[1])
}

// Width returns r1 − r0.
func (r CurveRange) Width() float64 { return r[1] - r[0] }

// Mid returns the midpoint of the range.
func (r CurveRange) Mid() float64 { return 0.5 * (r[0] + r[1]) }

// HalfWidth returns half of the range's width.
func (r CurveRange) HalfWidth() float64 { return 0.5 * (r[1] - r[0]) }

// Contains reports whether t lies in the closed range.
func (r CurveRange) Contains(t float64) bool {
	return t >= r[0] && t <= r[1]
}

// Valid reports whether the range is finite and ordered.
func (r CurveRange) Valid() bool {
	return isFinite(r[0]) && isFinite(r[1]) && r[0] < r[1]
}

// Lerp maps u ∈ [0, 1] onto the range.
func (r CurveRange) Lerp(u float64) float64 {
	return r[0] + u*(r[1]-r[0])
}

// Linspace returns n evenly spaced parameters covering the closed range.
func (r CurveRange) Linspace(n int) []float64 {
	if n < 2 {
		return []float64{r[0]}
	}
	ts := make([]float64, n)
	for i := range n {
		ts[i] = r.Lerp(float64(i) / float64(n-1))
	}
	// Avoid drifting past r1 due to rounding.
	ts[n-1] = r[1]
	return ts
}

// BilinearFactor (sigma) scales the two blending factors of the weighted
// basis. Changing it changes only the speed at which a curve is traversed,
// never the traced point set. The canonical value is (1, 1).
type BilinearFactor struct {
	P float64
	Q float64
}

// UnitSigma is the canonical bilinear factor.
var UnitSigma = BilinearFactor{1, 1}

// Sigma returns the bilinear factor (p, q).
func Sigma(p, q float64) BilinearFactor {
	return BilinearFactor{P: p, Q: q}
}

func (s BilinearFactor) String() string {
	return fmt.Sprintf("(%g, %g)", s.P, s.Q)
}

// Mul multiplies the factors componentwise.
func (s BilinearFactor) Mul(o BilinearFactor) BilinearFactor {
	return BilinearFactor{P: s.P * o.P, Q: s.Q * o.Q}
}

// Inverse returns (1/p, 1/q).
func (s BilinearFactor) Inverse() BilinearFactor {
	return BilinearFactor{P: 1 / s.P, Q: 1 / s.Q}
}

// Valid reports whether both components are finite and strictly positive.
func (s BilinearFactor) Valid() bool {
	return isFinite(s.P) && isFinite(s.Q) && s.P > 0 && s.Q > 0
}

// Ratio returns p/q.
func (s BilinearFactor) Ratio() float64 { return s.P / s.Q }

// orUnit treats the zero value as the canonical factor, so that callers can
// leave sigma unset.
func (s BilinearFactor) orUnit() BilinearFactor {
	if s == (BilinearFactor{}) {
		return UnitSigma
	}
	return s
}

// blend returns the two weighted-basis blending factors a = p·(t−r0) and
// b = q·(r1−t).
func blend(t float64, s BilinearFactor, r CurveRange) (a, b float64) {
	return s.P * (t - r[0]), s.Q * (r[1] - t)
}

// ExpandWeighted2 returns the quadratic weighted basis [b², b·a, a²] at t.
func ExpandWeighted2(t float64, s BilinearFactor, r CurveRange) Row3 {
	a, b := blend(t, s, r)
	return Row3{b * b, b * a, a * a}
}

// ExpandWeighted3 returns the cubic weighted basis [b³, b²·a, b·a², a³] at t.
func ExpandWeighted3(t float64, s BilinearFactor, r CurveRange) Row4 {
	a, b := blend(t, s, r)
	return Row4{b * b * b, b * b * a, b * a * a, a * a * a}
}

// ExpandPower2 returns the power basis [1, t, t²].
func ExpandPower2(t float64) Row3 {
	return Row3{1, t, t * t}
}

// selectionWeights computes the blend weights α, β, γ, δ that express the
// weighted basis of r in the weighted basis of the sub-range n, together with
// the bilinear factor of the sub-range.
func selectionWeights(r CurveRange, s BilinearFactor, n CurveRange) (alpha, beta, gamma, delta float64, ns BilinearFactor) {
	ak, bk := blend(n[0], s, r)
	al, bl := blend(n[1], s, r)
	alpha = bk / (ak + bk)
	beta = 1 - alpha
	gamma = bl / (al + bl)
	delta = 1 - gamma
	return alpha, beta, gamma, delta, BilinearFactor{P: al + bl, Q: ak + bk}
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
