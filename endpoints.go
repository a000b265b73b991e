package conic

import "fmt"

// Endpoints characterizes a curve at both ends of its range: the positions
// and the derivatives, the latter scaled by the width of the range.
type Endpoints struct {
	P0 Point
	D0 Vec2
	P1 Point
	D1 Vec2
}

func (e Endpoints) String() string {
	return fmt.Sprintf("{%s %s; %s %s}", e.P0, e.D0, e.P1, e.D1)
}

// Tangents returns the unit tangents at both ends.
func (e Endpoints) Tangents() (Vec2, Vec2) {
	return e.D0.Normalize(), e.D1.Normalize()
}

// cross2 computes the numerator of the derivative of the ratio (n·w)/(d·w)
// for the quadratic weighted basis, up to the factor p·b + q·a, from the
// cross-combinations c_ij = n_j·d_i − n_i·d_j.
func cross2(n, d Row3, a, b float64) float64 {
	c01 := n[1]*d[0] - n[0]*d[1]
	c02 := n[2]*d[0] - n[0]*d[2]
	c12 := n[2]*d[1] - n[1]*d[2]
	return c01*b*b + 2*c02*a*b + c12*a*a
}

// cross3 is the cubic analogue of cross2.
func cross3(n, d Row4, a, b float64) float64 {
	c := func(i, j int) float64 { return n[j]*d[i] - n[i]*d[j] }
	a2, b2 := a*a, b*b
	return c(0, 1)*b2*b2 +
		2*c(0, 2)*a*b2*b +
		(3*c(0, 3)+c(1, 2))*a2*b2 +
		2*c(1, 3)*a2*a*b +
		c(2, 3)*a2*a2
}

// cubicDenominator is the implied denominator row of a [CubicCurve]: the
// expansion of (a+b)³ in the weighted basis with the middle coefficients
// pre-scaled by 3.
var cubicDenominator = Row4{1, 3, 3, 1}
