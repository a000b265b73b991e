package conic

import (
	"iter"
	"math"
)

// RenderPath is a render-facing primitive produced by classification. The
// rendering collaborator decides how to draw it; PathElements offers a
// ready-made conversion to "move to" and "cubic Bézier to" commands.
type RenderPath interface {
	// PathElements approximates the primitive with path elements. The
	// tolerance bounds the distance between the approximation and the exact
	// curve.
	PathElements(tolerance float64) iter.Seq[PathElement]
	Start() Point
	End() Point
}

var (
	_ RenderPath = ArcPath{}
	_ RenderPath = CubicPath{}
	_ RenderPath = HyperbolicPath{}
)

// ArcPath is an elliptical arc: the image of the unit-circle arc over
// AngleRange under the linear map Transform = (cx, cy, sx, sy), translated to
// Center. That is,
//
//	point(θ) = Center + (cx, cy)·cos θ + (sx, sy)·sin θ
type ArcPath struct {
	AngleRange [2]float64
	Center     Point
	Transform  [4]float64
}

// Affine returns the transform that maps the unit circle onto the arc's
// ellipse.
func (a ArcPath) Affine() Affine {
	m := a.Transform
	return Affine{m[0], m[1], m[2], m[3], a.Center.X, a.Center.Y}
}

// Eval returns the point at angle θ.
func (a ArcPath) Eval(th float64) Point {
	return Point(VecFromAngle(th)).Transform(a.Affine())
}

func (a ArcPath) Start() Point { return a.Eval(a.AngleRange[0]) }
func (a ArcPath) End() Point   { return a.Eval(a.AngleRange[1]) }

// CubicPath is the render-facing form of a [CubicCurve].
type CubicPath struct {
	R     CurveRange
	X, Y  Row4
	Sigma BilinearFactor
}

func (c CubicPath) curve() CubicCurve {
	return CubicCurve{Range: c.R, H: [2]Row4{c.X, c.Y}, Sigma: c.Sigma}
}

// Bez returns the cubic Bézier tracing the same points. The bilinear factor
// only affects the speed of traversal, so it does not enter.
func (c CubicPath) Bez() CubicBez {
	p := c.curve().ControlPoints()
	return CubicBez{p[0], p[1], p[2], p[3]}
}

// Eval evaluates the cubic at t ∈ R.
func (c CubicPath) Eval(t float64) Point { return c.curve().Eval(t) }

func (c CubicPath) Start() Point { return Pt(c.X[0], c.Y[0]) }
func (c CubicPath) End() Point   { return Pt(c.X[3], c.Y[3]) }

// PathElements implements [RenderPath]. The cubic is represented exactly.
func (c CubicPath) PathElements(tolerance float64) iter.Seq[PathElement] {
	return c.Bez().PathElements(tolerance)
}

// HyperbolicPath is the render-facing form of a [HyperbolicCurve].
type HyperbolicPath struct {
	Range  CurveRange
	Lambda float64
	Mu     float64
	Offset Point
	Plus   Vec2
	Minus  Vec2
}

func (h HyperbolicPath) curve() HyperbolicCurve {
	return HyperbolicCurve{
		Range:  h.Range,
		Lambda: h.Lambda,
		Mu:     h.Mu,
		Offset: h.Offset,
		Plus:   h.Plus,
		Minus:  h.Minus,
	}
}

// Eval evaluates the branch at t.
func (h HyperbolicPath) Eval(t float64) Point { return h.curve().Eval(t) }

func (h HyperbolicPath) Start() Point { return h.Eval(h.Range[0]) }
func (h HyperbolicPath) End() Point   { return h.Eval(h.Range[1]) }

// maxHyperbolicSegments caps the subdivision of a hyperbola branch.
const maxHyperbolicSegments = 64

// PathElements implements [RenderPath].
//
// The branch is split into equal parameter intervals, each approximated by
// the cubic Hermite interpolant of its ends. The number of intervals doubles
// until the error, sampled at the interior of every interval, is within
// tolerance.
//
// The count stops doubling at 64 intervals. A branch whose range ends close
// to a pole, at t = ±λ/μ, may need more than that; the 64 segments are then
// returned even though they exceed the tolerance. Callers that need the
// bound can split the range and render the pieces separately.
func (h HyperbolicPath) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		c := h.curve()
		n := 1
		var segs []CubicBez
		for {
			segs = h.hermite(c, n, segs[:0])
			if n >= maxHyperbolicSegments || h.maxError(c, n, segs) <= tolerance {
				break
			}
			n *= 2
		}
		if !yield(MoveTo(segs[0].P0)) {
			return
		}
		for _, s := range segs {
			if !yield(CubicTo(s.P1, s.P2, s.P3)) {
				return
			}
		}
	}
}

func (h HyperbolicPath) hermite(c HyperbolicCurve, n int, dst []CubicBez) []CubicBez {
	step := h.Range.Width() / float64(n)
	for i := range n {
		t0 := h.Range.Lerp(float64(i) / float64(n))
		t1 := h.Range.Lerp(float64(i+1) / float64(n))
		p0 := c.Eval(t0)
		p3 := c.Eval(t1)
		d0 := c.EvalDerivativeScaled(t0, step/3)
		d1 := c.EvalDerivativeScaled(t1, step/3)
		dst = append(dst, CubicBez{p0, p0.Translate(d0), p3.Translate(d1.Negate()), p3})
	}
	return dst
}

func (h HyperbolicPath) maxError(c HyperbolicCurve, n int, segs []CubicBez) float64 {
	var worst float64
	for i, s := range segs {
		for _, u := range [...]float64{0.25, 0.5, 0.75} {
			t := h.Range.Lerp((float64(i) + u) / float64(n))
			worst = math.Max(worst, s.Eval(u).Distance(c.Eval(t)))
		}
	}
	return worst
}
