package conic

import (
	"fmt"
	"math"
)

// DefaultTolerance is a default value for functions that take a tolerance
// argument. It is suitable for general-purpose use, such as 2D graphics.
const DefaultTolerance = 1e-6

// ConicKind identifies the variant of a [ConicClass].
type ConicKind int

const (
	NoneKind ConicKind = iota
	EllipticalKind
	ParabolicKind
	HyperbolicKind
)

func (k ConicKind) String() string {
	switch k {
	case NoneKind:
		return "none"
	case EllipticalKind:
		return "elliptical"
	case ParabolicKind:
		return "parabolic"
	case HyperbolicKind:
		return "hyperbolic"
	default:
		return fmt.Sprintf("ConicKind(%d)", int(k))
	}
}

// ConicClass is the result of subclassifying a rational quadratic arc. It is
// one of [NoConic], [Elliptical], [Parabolic] and [Hyperbolic]; the set is
// closed.
type ConicClass interface {
	Kind() ConicKind
	// Path returns the render-facing primitive, or nil for [NoConic].
	Path() RenderPath

	isConicClass()
}

// NoConic is the empty classification.
type NoConic struct{}

// Elliptical is an elliptical arc, kept in regularized form.
type Elliptical struct {
	Curve RegularizedQuadratic
}

// Parabolic is a conic that is represented by a cubic, either because it is
// a parabola or because it is too close to one to be drawn stably otherwise.
type Parabolic struct {
	Curve CubicCurve
}

// Hyperbolic is a hyperbola branch.
type Hyperbolic struct {
	Curve HyperbolicCurve
}

func (NoConic) Kind() ConicKind    { return NoneKind }
func (Elliptical) Kind() ConicKind { return EllipticalKind }
func (Parabolic) Kind() ConicKind  { return ParabolicKind }
func (Hyperbolic) Kind() ConicKind { return HyperbolicKind }

func (NoConic) Path() RenderPath      { return nil }
func (c Elliptical) Path() RenderPath { return c.ArcPath() }
func (c Parabolic) Path() RenderPath  { return c.Curve.Path() }
func (c Hyperbolic) Path() RenderPath { return c.Curve.Path() }

func (NoConic) isConicClass()    {}
func (Elliptical) isConicClass() {}
func (Parabolic) isConicClass()  {}
func (Hyperbolic) isConicClass() {}

// ellipseFrame holds an elliptical arc as center + even·cos θ + odd·sin θ.
type ellipseFrame struct {
	center    Point
	even, odd Vec2
	halfAngle float64
}

func (c RegularizedQuadratic) ellipseFrame() ellipseFrame {
	// Normalize a0 to 1.
	b := c.B.Mul(1 / c.A0)
	cc := c.C.Mul(1 / c.A0)
	a2 := c.A2 / c.A0
	k := math.Sqrt(a2)
	// With τ = tan(θ/2)/k the denominator becomes sec²(θ/2), and
	// n0 + n1·τ + n2·τ² turns into offset + even·cos θ + odd·sin θ.
	return ellipseFrame{
		center:    Pt(0.5*(b[0]+b[2]/a2), 0.5*(cc[0]+cc[2]/a2)),
		even:      Vec(0.5*(b[0]-b[2]/a2), 0.5*(cc[0]-cc[2]/a2)),
		odd:       Vec(b[1]/(2*k), cc[1]/(2*k)),
		halfAngle: 2 * math.Atan(c.RangeBound*k),
	}
}

// ArcPath converts the elliptical arc to its render-facing form.
func (c Elliptical) ArcPath() ArcPath {
	f := c.Curve.ellipseFrame()
	return ArcPath{
		AngleRange: [2]float64{-f.halfAngle, f.halfAngle},
		Center:     f.center,
		Transform:  [4]float64{f.even.X, f.even.Y, f.odd.X, f.odd.Y},
	}
}

// roundingFactor times the condition of the denominator is the smallest
// relative degeneracy that classification resolves.
const roundingFactor = 64 * 0x1p-52

// CreateFromOrdinary classifies a rational quadratic arc as an elliptical
// arc, a parabola (returned as a cubic) or a hyperbola branch.
//
// The tolerance decides when the arc is close enough to a parabola to be
// represented by one. Increasing it can only move a classification toward
// [Parabolic]. Tolerances below the rounding error of regularization, which
// grows with the magnitude of the range and of the denominator's
// coefficients, act as that error.
//
// Bad input, such as an unordered range, a non-positive bilinear factor or a
// denominator that vanishes on the closed range, is reported as a
// [*GeometryError]. The function panics with an [InvariantError] if the
// algebra produces an inconsistent result; that indicates a bug in this
// package.
func CreateFromOrdinary(c WeightedQuadratic, tolerance float64) (ConicClass, error) {
	const op = "classify"
	switch {
	case !c.Range.Valid():
		return NoConic{}, geometryError(op, ErrInvalidRange, c.Range.String())
	case !c.Sigma.Valid():
		return NoConic{}, geometryError(op, ErrInvalidSigma, c.Sigma.String())
	case !(tolerance > 0) || math.IsInf(tolerance, 0):
		return NoConic{}, geometryError(op, ErrInvalidTolerance, fmt.Sprint(tolerance))
	case !c.IsFinite():
		return NoConic{}, geometryError(op, ErrNonFinite, "")
	}
	if t, ok := c.pole(); ok {
		return NoConic{}, geometryError(op, ErrPoleInRange, fmt.Sprintf("t = %g", t))
	}

	reg := c.Regularize()
	// Below the floor, a2 is indistinguishable from rounding noise and its
	// sign carries no information.
	tolerance = max(tolerance, roundingFactor*c.denominatorCondition())
	h := reg.RangeBound
	if math.Abs(reg.A2)*h*h < math.Abs(reg.A0)*tolerance {
		return Parabolic{reg.ConvertToParabolic()}, nil
	}

	// The regularized denominator is a0 + a2·τ². Opposite signs give it real
	// roots and make a hyperbola, equal signs make an ellipse.
	if reg.A0*reg.A2 > 0 {
		f := reg.ellipseFrame()
		det := f.odd.Cross(f.even)
		frob2 := f.odd.Hypot2() + f.even.Hypot2()
		if math.Abs(det) < tolerance*frob2 {
			return Parabolic{reg.ConvertToParabolic()}, nil
		}
		return Elliptical{reg}, nil
	}

	return Hyperbolic{reg.hyperbolicCurve()}, nil
}

// hyperbolicCurve decomposes a regularized curve whose denominator has real
// roots into partial fractions.
func (c RegularizedQuadratic) hyperbolicCurve() HyperbolicCurve {
	s := 1.0
	if c.A0 < 0 {
		s = -1
	}
	lambda := math.Sqrt(s * c.A0)
	mu2 := -s * c.A2
	if !(mu2 > 0) {
		panic(InvariantError(fmt.Sprintf("hyperbolic candidate has a0 = %g, a2 = %g of equal signs", c.A0, c.A2)))
	}
	mu := math.Sqrt(mu2)

	// n(τ) = offset·D(τ) + r0 + n1·τ, and
	// (r0 + n1·τ)/D = minus/(λ − μτ) + plus/(λ + μτ).
	split := func(n Row3) (offset, minus, plus float64) {
		offset = n[2] / c.A2
		r0 := n[0] - offset*c.A0
		minus = 0.5 * s * (r0/lambda + n[1]/mu)
		plus = 0.5 * s * (r0/lambda - n[1]/mu)
		return offset, minus, plus
	}
	ox, mx, px := split(c.B)
	oy, my, py := split(c.C)
	return HyperbolicCurve{
		Range:  c.Range(),
		Lambda: lambda,
		Mu:     mu,
		Offset: Pt(ox, oy),
		Plus:   Vec(px, py),
		Minus:  Vec(mx, my),
	}
}

// pole returns a parameter in the closed range at which the denominator
// vanishes, if there is one.
func (c WeightedQuadratic) pole() (float64, bool) {
	d := c.H[2]
	// The end values have the signs of d[0] and d[2].
	if d[0] == 0 {
		return c.Range[0], true
	}
	if d[2] == 0 {
		return c.Range[1], true
	}
	if math.Signbit(d[0]) != math.Signbit(d[2]) {
		// A sign change implies a root strictly inside.
		roots, n := c.denominatorRoots()
		for _, t := range roots[:n] {
			if c.Range.Contains(t) {
				return t, true
			}
		}
		return c.Range.Mid(), true
	}
	roots, n := c.denominatorRoots()
	for _, t := range roots[:n] {
		if c.Range.Contains(t) {
			return t, true
		}
	}
	return 0, false
}

// denominatorCondition bounds the relative rounding error that the power form
// and regularization introduce into the denominator: the magnitude of its
// power terms over the range, relative to its smaller end value.
func (c WeightedQuadratic) denominatorCondition() float64 {
	d := c.ToPower().H[2]
	m := max(math.Abs(c.Range[0]), math.Abs(c.Range[1]))
	mag := math.Abs(d[0]) + math.Abs(d[1])*m + math.Abs(d[2])*m*m
	lo := min(math.Abs(ExpandPower2(c.Range[0]).Dot(d)), math.Abs(ExpandPower2(c.Range[1]).Dot(d)))
	return mag / lo
}

func (c WeightedQuadratic) denominatorRoots() ([2]float64, int) {
	d := c.ToPower().H[2]
	return SolveQuadratic(d[0], d[1], d[2])
}
