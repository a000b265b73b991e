package conic

import (
	"fmt"
	"math"
)

// FourPointSpec describes a curve by four control points, in the manner of a
// cubic Bézier control polygon: the curve starts at Points[0] heading toward
// Points[1] and ends at Points[3] coming from Points[2].
//
// A zero Sigma means the canonical factor (1, 1).
type FourPointSpec struct {
	Points [4]Point
	Range  CurveRange
	Sigma  BilinearFactor
}

// ThreePointAngleSpec describes a conic by its end points Points[0] and
// Points[2], the control point Points[1] and an angle whose cosine is the
// conic's middle weight. For a circular arc whose control point is the
// intersection of its end tangents, Angle is half the swept angle.
//
// A zero Sigma means the canonical factor (1, 1).
type ThreePointAngleSpec struct {
	Points [3]Point
	Angle  float64
	Range  CurveRange
	Sigma  BilinearFactor
}

// parallelTolerance decides when two directions count as parallel, relative
// to the product of their lengths.
const parallelTolerance = 1e-12

func checkDomain(op string, r CurveRange, s BilinearFactor) error {
	if !r.Valid() {
		return geometryError(op, ErrInvalidRange, r.String())
	}
	if !s.Valid() {
		return geometryError(op, ErrInvalidSigma, s.String())
	}
	return nil
}

func checkPoints(op string, pts ...Point) error {
	for i, p := range pts {
		if p.IsNaN() || p.IsInf() {
			return geometryError(op, ErrNonFinite, fmt.Sprintf("point %d is %s", i, p))
		}
	}
	return nil
}

// NewConicFromFourPoints builds the conic that starts at Points[0], ends at
// Points[3], and whose derivatives there, scaled by the width of the range,
// are 3·(Points[1]−Points[0]) and 3·(Points[3]−Points[2]). These are the end
// conditions of the cubic Bézier with the same control polygon.
//
// It reports an error if the end tangent is parallel to the chord, in which
// case no such conic exists, or if the resulting conic has a pole in range.
func NewConicFromFourPoints(spec FourPointSpec) (WeightedQuadratic, error) {
	const op = "conic from four points"
	sigma := spec.Sigma.orUnit()
	if err := checkDomain(op, spec.Range, sigma); err != nil {
		return WeightedQuadratic{}, err
	}
	p := spec.Points
	if err := checkPoints(op, p[:]...); err != nil {
		return WeightedQuadratic{}, err
	}

	t0 := p[1].Sub(p[0])
	t1 := p[3].Sub(p[2])
	chord := p[3].Sub(p[0])
	switch {
	case chord.Hypot2() == 0:
		return WeightedQuadratic{}, geometryError(op, ErrDegenerateGeometry, "coincident end points")
	case t0.Hypot2() == 0 || t1.Hypot2() == 0:
		return WeightedQuadratic{}, geometryError(op, ErrDegenerateGeometry, "zero-length tangent")
	}
	det := chord.Cross(t1)
	if math.Abs(det) <= parallelTolerance*chord.Hypot()*t1.Hypot() {
		return WeightedQuadratic{}, geometryError(op, ErrDegenerateGeometry, "end tangent parallel to chord")
	}

	// With d0 = 1, matching the end derivatives gives two linear equations
	// in d1 and d2, solved here by Cramer's rule.
	rho := 1 / sigma.Ratio()
	d1 := 3 * rho * t0.Cross(t1) / det
	d2 := rho * rho * t0.Cross(chord) / det
	n1 := Vec2(p[0]).Mul(d1).Add(t0.Mul(3 * rho))

	c := WeightedQuadratic{
		Range: spec.Range,
		H: [3]Row3{
			{p[0].X, n1.X, d2 * p[3].X},
			{p[0].Y, n1.Y, d2 * p[3].Y},
			{1, d1, d2},
		},
		Sigma: sigma,
	}
	if !hasPositiveWeights(c.H[2]) {
		return WeightedQuadratic{}, geometryError(op, ErrPoleInRange, fmt.Sprintf("weights %v", c.H[2]))
	}
	return c, nil
}

// NewConicFromThreePointsAndAngle builds the rational quadratic Bézier with
// control points Points and weights (1, cos Angle, 1).
func NewConicFromThreePointsAndAngle(spec ThreePointAngleSpec) (WeightedQuadratic, error) {
	const op = "conic from three points and angle"
	sigma := spec.Sigma.orUnit()
	if err := checkDomain(op, spec.Range, sigma); err != nil {
		return WeightedQuadratic{}, err
	}
	p := spec.Points
	if err := checkPoints(op, p[:]...); err != nil {
		return WeightedQuadratic{}, err
	}
	if !isFinite(spec.Angle) {
		return WeightedQuadratic{}, geometryError(op, ErrNonFinite, fmt.Sprintf("angle %g", spec.Angle))
	}
	if p[0] == p[2] {
		return WeightedQuadratic{}, geometryError(op, ErrDegenerateGeometry, "coincident end points")
	}

	// The middle basis function carries the Bernstein factor 2.
	w := 2 * math.Cos(spec.Angle)
	c := WeightedQuadratic{
		Range: spec.Range,
		H: [3]Row3{
			{p[0].X, w * p[1].X, p[2].X},
			{p[0].Y, w * p[1].Y, p[2].Y},
			{1, w, 1},
		},
		Sigma: sigma,
	}
	if !hasPositiveWeights(c.H[2]) {
		return WeightedQuadratic{}, geometryError(op, ErrPoleInRange, fmt.Sprintf("angle %g", spec.Angle))
	}
	return c, nil
}

// NewCubicFromFourPoints lifts a cubic Bézier control polygon into
// homogeneous cubic form.
func NewCubicFromFourPoints(spec FourPointSpec) (CubicCurve, error) {
	const op = "cubic from four points"
	sigma := spec.Sigma.orUnit()
	if err := checkDomain(op, spec.Range, sigma); err != nil {
		return CubicCurve{}, err
	}
	p := spec.Points
	if err := checkPoints(op, p[:]...); err != nil {
		return CubicCurve{}, err
	}
	return CubicCurve{
		Range: spec.Range,
		H: [2]Row4{
			{p[0].X, 3 * p[1].X, 3 * p[2].X, p[3].X},
			{p[0].Y, 3 * p[1].Y, 3 * p[2].Y, p[3].Y},
		},
		Sigma: sigma,
	}, nil
}

// hasPositiveWeights reports whether d0·b² + d1·ab + d2·a² stays positive
// for all a, b ≥ 0 not both zero, given d0 > 0.
func hasPositiveWeights(d Row3) bool {
	if !(d[0] > 0) || !(d[2] > 0) {
		return false
	}
	return d[1] >= 0 || d[1]*d[1] < 4*d[0]*d[2]
}
