package conic

import (
	"iter"
	"math"
)

// PathElements implements [RenderPath].
//
// The unit-circle arc is approximated by cubic Béziers and then mapped
// through [ArcPath.Affine]. Affine maps preserve Béziers, so the error only
// scales with the largest radius of the ellipse.
func (a ArcPath) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		aff := a.Affine()
		start, end := a.AngleRange[0], a.AngleRange[1]
		sweep := end - start

		if !yield(MoveTo(a.Eval(start))) {
			return
		}

		radii, _ := aff.svd()
		scaledError := max(radii.X, radii.Y) / tolerance
		// Number of subdivisions per full turn based on error tolerance.
		// Note: this may slightly underestimate the error for quadrants.
		nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
		n := max(math.Ceil(nError*math.Abs(sweep)*(1.0/(2.0*math.Pi))), 1)
		angleStep := sweep / n
		armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), sweep)

		angle0 := start
		p0 := VecFromAngle(angle0)
		for range int(n) {
			angle1 := angle0 + angleStep
			p3 := VecFromAngle(angle1)
			// The tangent of the unit circle at θ is the point at θ + π/2.
			p1 := p0.Add(VecFromAngle(angle0 + math.Pi/2).Mul(armLen))
			p2 := p3.Sub(VecFromAngle(angle1 + math.Pi/2).Mul(armLen))

			angle0 = angle1
			p0 = p3

			if !yield(CubicTo(
				Point(p1).Transform(aff),
				Point(p2).Transform(aff),
				Point(p3).Transform(aff),
			)) {
				return
			}
		}
	}
}

// SweepAngle returns the signed angle covered by the arc.
func (a ArcPath) SweepAngle() float64 {
	return a.AngleRange[1] - a.AngleRange[0]
}

// Radii returns the semi-axes of the arc's ellipse, largest first, and the
// rotation of the major axis.
func (a ArcPath) Radii() (Vec2, float64) {
	return a.Affine().svd()
}
