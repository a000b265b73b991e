package conic

import (
	"testing"
)

func TestBasisMatricesInverse(t *testing.T) {
	for _, r := range []CurveRange{{0, 1}, {-4.5, 13.5}, {2, 2.5}, {-3, -1}} {
		v, w := r[0], r[1]
		diff(t, Identity3, WeightedToPower3(v, w).Mul(PowerToWeighted3(v, w)), approx(1e-12))
		diff(t, Identity3, PowerToWeighted3(v, w).Mul(WeightedToPower3(v, w)), approx(1e-12))
		diff(t, Identity4, WeightedToPower4(v, w).Mul(PowerToWeighted4(v, w)), approx(1e-12))
		diff(t, Identity4, PowerToWeighted4(v, w).Mul(WeightedToPower4(v, w)), approx(1e-12))
	}
}

func TestWeightedToPowerExpansion(t *testing.T) {
	r := Range(-1.5, 2.5)
	m3 := WeightedToPower3(r[0], r[1])
	m4 := WeightedToPower4(r[0], r[1])
	for _, tt := range r.Linspace(9) {
		w := ExpandWeighted2(tt, UnitSigma, r)
		p := ExpandPower2(tt)
		for i := range 3 {
			diff(t, w[i], m3[i].Dot(p), approx(1e-12))
		}
		w4 := ExpandWeighted3(tt, UnitSigma, r)
		p4 := Row4{1, tt, tt * tt, tt * tt * tt}
		for i := range 4 {
			diff(t, w4[i], m4[i].Dot(p4), approx(1e-12))
		}
	}
}

func TestSigmaScale(t *testing.T) {
	r := Range(0, 2)
	s := Sigma(1.5, 0.5)
	coeffs := Row3{1, -2, 3}
	coeffs4 := Row4{1, -2, 3, 0.5}
	for _, tt := range r.Linspace(5) {
		diff(t,
			coeffs.Dot(ExpandWeighted2(tt, s, r)),
			coeffs.MulMat(SigmaScale3(s)).Dot(ExpandWeighted2(tt, UnitSigma, r)),
			approx(1e-12))
		diff(t,
			coeffs4.Dot(ExpandWeighted3(tt, s, r)),
			coeffs4.MulMat(SigmaScale4(s)).Dot(ExpandWeighted3(tt, UnitSigma, r)),
			approx(1e-12))
	}
}

func TestSelectionIdentity(t *testing.T) {
	// Selecting the full range with the unit factor changes nothing.
	diff(t, Identity3, Selection3(1, 0, 0, 1))
	diff(t, Identity4, Selection4(1, 0, 0, 1))
}

func TestApplyQMat(t *testing.T) {
	h := [3]Row3{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	got := ApplyQMat(h, Identity3)
	diff(t, h, got)

	swap := Mat3{{0, 0, 1}, {0, 1, 0}, {1, 0, 0}}
	diff(t, [3]Row3{{3, 2, 1}, {6, 5, 4}, {9, 8, 7}}, ApplyQMat(h, swap))
}

func TestPolyMul(t *testing.T) {
	// (1 + x)(1 − x) = 1 − x²
	diff(t, []float64{1, 0, -1}, polyMul([]float64{1, 1}, []float64{1, -1}))
}
