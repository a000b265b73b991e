package conic

import "math"

// Row3 is a row of three coefficients, one per basis function of a quadratic
// parameter expansion.
type Row3 [3]float64

// Row4 is a row of four coefficients, one per basis function of a cubic
// parameter expansion.
type Row4 [4]float64

// Mat3 is a row-major 3×3 matrix acting on [Row3] from the right.
type Mat3 [3]Row3

// Mat4 is a row-major 4×4 matrix acting on [Row4] from the right.
type Mat4 [4]Row4

// Dot returns the inner product of r and o.
func (r Row3) Dot(o Row3) float64 {
	return r[0]*o[0] + r[1]*o[1] + r[2]*o[2]
}

func (r Row3) Add(o Row3) Row3 {
	return Row3{r[0] + o[0], r[1] + o[1], r[2] + o[2]}
}

func (r Row3) Sub(o Row3) Row3 {
	return Row3{r[0] - o[0], r[1] - o[1], r[2] - o[2]}
}

func (r Row3) Mul(f float64) Row3 {
	return Row3{r[0] * f, r[1] * f, r[2] * f}
}

// Hypot returns the Euclidean norm of the row.
func (r Row3) Hypot() float64 {
	return math.Sqrt(r.Dot(r))
}

// MulMat computes the row vector r·m.
func (r Row3) MulMat(m Mat3) Row3 {
	var out Row3
	for j := range 3 {
		out[j] = r[0]*m[0][j] + r[1]*m[1][j] + r[2]*m[2][j]
	}
	return out
}

func (r Row3) IsFinite() bool {
	for _, v := range r {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// Dot returns the inner product of r and o.
func (r Row4) Dot(o Row4) float64 {
	return r[0]*o[0] + r[1]*o[1] + r[2]*o[2] + r[3]*o[3]
}

func (r Row4) Add(o Row4) Row4 {
	return Row4{r[0] + o[0], r[1] + o[1], r[2] + o[2], r[3] + o[3]}
}

func (r Row4) Sub(o Row4) Row4 {
	return Row4{r[0] - o[0], r[1] - o[1], r[2] - o[2], r[3] - o[3]}
}

func (r Row4) Mul(f float64) Row4 {
	return Row4{r[0] * f, r[1] * f, r[2] * f, r[3] * f}
}

// MulMat computes the row vector r·m.
func (r Row4) MulMat(m Mat4) Row4 {
	var out Row4
	for j := range 4 {
		out[j] = r[0]*m[0][j] + r[1]*m[1][j] + r[2]*m[2][j] + r[3]*m[3][j]
	}
	return out
}

func (r Row4) IsFinite() bool {
	for _, v := range r {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// Mul computes m·o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var out Mat3
	for i := range 3 {
		out[i] = m[i].MulMat(o)
	}
	return out
}

// Mul computes m·o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for i := range 4 {
		out[i] = m[i].MulMat(o)
	}
	return out
}

// Identity3 is the 3×3 identity matrix.
var Identity3 = Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// Identity4 is the 4×4 identity matrix.
var Identity4 = Mat4{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}

// ApplyQMat right-multiplies each homogeneous row by m. This changes the
// basis of the parameter expansion; it does not transform x and y.
func ApplyQMat(h [3]Row3, m Mat3) [3]Row3 {
	return [3]Row3{h[0].MulMat(m), h[1].MulMat(m), h[2].MulMat(m)}
}

// ApplyCMat right-multiplies each homogeneous row by m.
func ApplyCMat(h [2]Row4, m Mat4) [2]Row4 {
	return [2]Row4{h[0].MulMat(m), h[1].MulMat(m)}
}

// WeightedToPower3 returns the matrix taking coefficients in the unit-sigma
// weighted basis [(w−t)², (w−t)(t−v), (t−v)²] to coefficients in the power
// basis [1, t, t²].
func WeightedToPower3(v, w float64) Mat3 {
	return Mat3{
		{w * w, -2 * w, 1},
		{-v * w, v + w, -1},
		{v * v, -2 * v, 1},
	}
}

// PowerToWeighted3 is the inverse of [WeightedToPower3].
//
// It follows from 1 = (b+a)²/L², t = (v·b + w·a)(b+a)/L² and
// t² = (v·b + w·a)²/L², with a = t−v, b = w−t and L = w−v.
func PowerToWeighted3(v, w float64) Mat3 {
	l2 := (w - v) * (w - v)
	m := Mat3{
		{1, 2, 1},
		{v, v + w, w},
		{v * v, 2 * v * w, w * w},
	}
	for i := range m {
		m[i] = m[i].Mul(1 / l2)
	}
	return m
}

// WeightedToPower4 is the cubic analogue of [WeightedToPower3], for the basis
// [b³, b²a, ba², a³].
func WeightedToPower4(v, w float64) Mat4 {
	// b = w − t, a = −v + t as power polynomials.
	b := []float64{w, -1}
	a := []float64{-v, 1}
	var m Mat4
	for i := range 4 {
		p := []float64{1}
		for range 3 - i {
			p = polyMul(p, b)
		}
		for range i {
			p = polyMul(p, a)
		}
		copy(m[i][:], p)
	}
	return m
}

// PowerToWeighted4 is the inverse of [WeightedToPower4].
func PowerToWeighted4(v, w float64) Mat4 {
	// In the weighted basis 1 = (b+a)/L and t = (v·b + w·a)/L; t^k·1^(3−k)
	// then expands into the four cubic monomials.
	l := w - v
	one := []float64{1 / l, 1 / l}
	t := []float64{v / l, w / l}
	var m Mat4
	for k := range 4 {
		p := []float64{1}
		for range k {
			p = polyMul(p, t)
		}
		for range 3 - k {
			p = polyMul(p, one)
		}
		copy(m[k][:], p)
	}
	return m
}

// SigmaScale3 returns the diagonal matrix that folds a bilinear factor into
// weighted quadratic coefficients, so that the result can be evaluated with
// the unit factor.
func SigmaScale3(s BilinearFactor) Mat3 {
	return Mat3{
		{s.Q * s.Q, 0, 0},
		{0, s.P * s.Q, 0},
		{0, 0, s.P * s.P},
	}
}

// SigmaScale4 is the cubic analogue of [SigmaScale3].
func SigmaScale4(s BilinearFactor) Mat4 {
	p, q := s.P, s.Q
	return Mat4{
		{q * q * q, 0, 0, 0},
		{0, p * q * q, 0, 0},
		{0, 0, p * p * q, 0},
		{0, 0, 0, p * p * p},
	}
}

// Selection3 builds the quadratic sub-range selection matrix.
//
// The old basis factors are expressed in the new ones as b = α·b' + γ·a' and
// a = β·b' + δ·a'. Row i of the result holds the expansion of the i-th old
// basis function in the new basis.
func Selection3(alpha, beta, gamma, delta float64) Mat3 {
	return Mat3{
		{alpha * alpha, 2 * alpha * gamma, gamma * gamma},
		{alpha * beta, alpha*delta + beta*gamma, gamma * delta},
		{beta * beta, 2 * beta * delta, delta * delta},
	}
}

// Selection4 is the cubic analogue of [Selection3].
func Selection4(alpha, beta, gamma, delta float64) Mat4 {
	a2, b2, g2, d2 := alpha*alpha, beta*beta, gamma*gamma, delta*delta
	return Mat4{
		{a2 * alpha, 3 * a2 * gamma, 3 * alpha * g2, g2 * gamma},
		{a2 * beta, a2*delta + 2*alpha*beta*gamma, 2*alpha*gamma*delta + beta*g2, g2 * delta},
		{alpha * b2, 2*alpha*beta*delta + b2*gamma, alpha*d2 + 2*beta*gamma*delta, gamma * d2},
		{b2 * beta, 3 * b2 * delta, 3 * beta * d2, d2 * delta},
	}
}

// polyMul multiplies two polynomials given in increasing order of power.
func polyMul(p, q []float64) []float64 {
	out := make([]float64, len(p)+len(q)-1)
	for i, x := range p {
		for j, y := range q {
			out[i+j] += x * y
		}
	}
	return out
}
