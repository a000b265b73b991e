// Package conic provides an algebra for planar rational quadratic and cubic
// curves, and the subclassification of rational quadratic arcs into
// elliptical arcs, parabolas and hyperbola branches.
//
// # Homogeneous curves
//
// Curves are stored in homogeneous form: one row of coefficients per
// coordinate, plus a denominator row for rational quadratics. The rows are
// coefficients over a weighted Bernstein basis. For a parameter range
// [r0, r1] and a bilinear factor σ = (p, q), the blending factors are
//
//	a = p·(t − r0)
//	b = q·(r1 − t)
//
// and the quadratic basis is [b², b·a, a²]. Cubics use [b³, b²a, ba², a³]
// with an implied denominator (a + b)³; with the unit bilinear factor they
// are ordinary cubic Béziers.
//
// Unlike the Bézier segments of most 2D libraries, curves are parametrized
// over an arbitrary [CurveRange], not [0, 1]. The bilinear factor changes the
// speed at which a curve is traversed without changing the points it
// traces.
//
// This package includes the following curves:
//   - [WeightedQuadratic]
//   - [PowerQuadratic]
//   - [RegularizedQuadratic]
//   - [CubicCurve]
//   - [HyperbolicCurve]
//
// All of them implement [ParametricCurve]. They are values; transforms such
// as [WeightedQuadratic.SelectRange] or [WeightedQuadratic.Displace] return
// new curves.
//
// # Classification
//
// [CreateFromOrdinary] takes an arbitrary rational quadratic arc and
// returns a [ConicClass]: an [Elliptical] arc, a [Parabolic] curve
// (represented exactly by a cubic), or a [Hyperbolic] branch. Arcs that are
// nearly parabolic, as decided by a tolerance, are represented as
// parabolas, because the elliptical and hyperbolic forms become numerically
// unstable near that boundary.
//
// Each class offers a [RenderPath], which can be converted to path elements
// with [RenderPath.PathElements] and to SVG path data with [SVG].
//
// # Building curves
//
// [NewConicFromFourPoints], [NewConicFromThreePointsAndAngle] and
// [NewCubicFromFourPoints] build curves from control points. Unlike the
// low-level transforms, they validate their input and report bad geometry
// as a [*GeometryError].
package conic
