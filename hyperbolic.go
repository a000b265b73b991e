package conic

// HyperbolicCurve is a hyperbola branch in partial-fraction form:
//
//	point(t) = Offset + Minus/(λ − μt) + Plus/(λ + μt)
//
// with λ, μ > 0. The asymptotes' directions are Minus and Plus; the poles at
// t = ±λ/μ lie outside Range.
type HyperbolicCurve struct {
	Range  CurveRange
	Lambda float64
	Mu     float64
	Offset Point
	Plus   Vec2
	Minus  Vec2
}

var _ ParametricCurve = HyperbolicCurve{}

// Eval evaluates the branch at t.
func (c HyperbolicCurve) Eval(t float64) Point {
	m := 1 / (c.Lambda - c.Mu*t)
	p := 1 / (c.Lambda + c.Mu*t)
	return c.Offset.Translate(c.Minus.Mul(m).Add(c.Plus.Mul(p)))
}

// EvalDerivativeScaled returns the derivative at t, multiplied by scale.
func (c HyperbolicCurve) EvalDerivativeScaled(t, scale float64) Vec2 {
	m := 1 / (c.Lambda - c.Mu*t)
	p := 1 / (c.Lambda + c.Mu*t)
	return c.Minus.Mul(c.Mu * m * m).Sub(c.Plus.Mul(c.Mu * p * p)).Mul(scale)
}

// CharacterizeEndpoints returns positions and derivatives, scaled by the
// width of the range, at both ends.
func (c HyperbolicCurve) CharacterizeEndpoints() Endpoints {
	w := c.Range.Width()
	return Endpoints{
		P0: c.Eval(c.Range[0]),
		D0: c.EvalDerivativeScaled(c.Range[0], w),
		P1: c.Eval(c.Range[1]),
		D1: c.EvalDerivativeScaled(c.Range[1], w),
	}
}

func (c HyperbolicCurve) Start() Point { return c.Eval(c.Range[0]) }
func (c HyperbolicCurve) End() Point   { return c.Eval(c.Range[1]) }

// Path returns the render-facing form of the branch.
func (c HyperbolicCurve) Path() HyperbolicPath {
	return HyperbolicPath{
		Range:  c.Range,
		Lambda: c.Lambda,
		Mu:     c.Mu,
		Offset: c.Offset,
		Plus:   c.Plus,
		Minus:  c.Minus,
	}
}
