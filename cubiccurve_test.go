package conic

import (
	"math"
	"testing"
)

var scenarioCubic = CubicCurve{
	Range: Range(-4.5, 13.5),
	H: [2]Row4{
		{4.0, 10.5, 13.5, 3.0},
		{-1.5, -6.0, 4.5, 2.0},
	},
	Sigma: Sigma(3.6, 1.2),
}

func TestCubicCurveEval(t *testing.T) {
	// Independently computed at 21 evenly spaced parameters.
	want := []Point{
		{4.0, -1.5},
		{3.8689894815927883, -1.499154770848986},
		{3.8437499999999996, -1.2343749999999998},
		{3.8540623577605833, -0.8717000455166136},
		{3.8688046647230316, -0.48979591836734687},
		{3.8750000000000004, -0.12500000000000014},
		{3.8681640625, 0.20727539062500003},
		{3.8477254223488706, 0.5020099735395889},
		{3.814814814814815, 0.7592592592592592},
		{3.7711947805802604, 0.9814295086747342},
		{3.718750000000001, 1.1718750000000002},
		{3.659256559766764, 1.334183673469388},
		{3.5942900075131474, 1.4718256949661908},
		{3.5252013643461817, 1.5879941645434368},
		{3.4531249999999996, 1.6855468749999998},
		{3.379, 1.7670000000000001},
		{3.3035958124715514, 1.8345471096950385},
		{3.2275377229080924, 1.8900891632373111},
		{3.151330174927113, 1.9352678571428568},
		{3.075377219238181, 1.9714984214194922},
		{3.0, 2.0},
	}
	got := scenarioCubic.EvalMany(scenarioCubic.Range.Linspace(21))
	diff(t, want, got, approx(1e-5))
}

func TestCubicCurveSelectRange(t *testing.T) {
	got := scenarioCubic.SelectRange(Range(1.5, 10.5))
	want := CubicCurve{
		Range: Range(1.5, 10.5),
		H: [2]Row4{
			{3.8560000000000008, 11.426250000000001, 10.976953125000001, 3.2529296875},
			{0.40800000000000036, 3.026250000000001, 4.7601562500000005, 1.872802734375},
		},
		Sigma: Sigma(57.6, 36.0),
	}
	diff(t, want, got, approx(1e-5))

	for _, tt := range got.Range.Linspace(11) {
		assertNear(t, got.Eval(tt), scenarioCubic.Eval(tt), 1e-5)
	}
}

func TestCubicCurveSelectRangeComposes(t *testing.T) {
	twice := scenarioCubic.SelectRange(Range(-2, 12)).SelectRange(Range(0, 3))
	once := scenarioCubic.SelectRange(Range(0, 3))
	for _, tt := range Range(0, 3).Linspace(7) {
		assertNear(t, twice.Eval(tt), once.Eval(tt), 1e-9)
	}
}

func TestCubicCurveDerivative(t *testing.T) {
	const delta = 1e-4
	c := scenarioCubic
	w := c.Range.Width()
	for _, tt := range interior(c.Range, 19) {
		d := c.EvalDerivativeScaled(tt, 1)
		fd := finiteDifference(c, tt, delta)
		if l := d.Sub(fd).Hypot(); l > 1e-4*max(1, d.Hypot()) {
			t.Errorf("at %g: got derivative %s, finite difference %s", tt, d, fd)
		}
	}

	e := c.CharacterizeEndpoints()
	assertNear(t, e.P0, c.Eval(c.Range[0]), 1e-12)
	assertNear(t, e.P1, c.Eval(c.Range[1]), 1e-12)
	assertNearVec(t, e.D0, c.EvalDerivativeScaled(c.Range[0], w), 1e-9)
	assertNearVec(t, e.D1, c.EvalDerivativeScaled(c.Range[1], w), 1e-9)
}

func TestCubicCurveUnitSigmaIsBezier(t *testing.T) {
	bez := CubicBez{Pt(0, 0), Pt(1, 2), Pt(3, 2), Pt(4, 0)}
	c := bez.Curve().RawChangeRange(Range(-1, 1))
	for _, u := range Range(0, 1).Linspace(9) {
		assertNear(t, c.Eval(2*u-1), bez.Eval(u), 1e-12)
	}
	diff(t, [4]Point{bez.P0, bez.P1, bez.P2, bez.P3}, c.ControlPoints())
}

func TestCubicCurveDisplace(t *testing.T) {
	v := Vec(-1, 0.5)
	d := scenarioCubic.Displace(v)
	for _, tt := range scenarioCubic.Range.Linspace(9) {
		assertNear(t, d.Eval(tt), scenarioCubic.Eval(tt).Translate(v), 1e-12)
	}
}

func TestCubicCurveBilinearTransform(t *testing.T) {
	o := scenarioCubic.BilinearTransform(Sigma(0.5, 3))
	assertNear(t, o.Start(), scenarioCubic.Start(), 0)
	assertNear(t, o.End(), scenarioCubic.End(), 0)
	// Every point of the transformed curve lies on the original cubic.
	bez := scenarioCubic.Path().Bez()
	for _, tt := range o.Range.Linspace(9) {
		a, b := blend(tt, o.Sigma, o.Range)
		assertNear(t, o.Eval(tt), bez.Eval(a/(a+b)), 1e-12)
	}
}

func TestCubicPath(t *testing.T) {
	p := scenarioCubic.Path()
	bez := p.Bez()
	diff(t, p.Start(), bez.P0)
	diff(t, p.End(), bez.P3)
	for _, tt := range scenarioCubic.Range.Linspace(9) {
		a, b := blend(tt, scenarioCubic.Sigma, scenarioCubic.Range)
		assertNear(t, p.Eval(tt), bez.Eval(a/(a+b)), 1e-12)
	}

	els := Collect(p, DefaultTolerance)
	diff(t, BezPath{MoveTo(bez.P0), CubicTo(bez.P1, bez.P2, bez.P3)}, els)
}

func TestCubicBezEval(t *testing.T) {
	// y = x²
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}
	for _, u := range Range(0, 1).Linspace(11) {
		p := c.Eval(u)
		if d := math.Abs(p.Y - p.X*p.X); d > 1e-12 {
			t.Errorf("at %g: %s is off y = x² by %g", u, p, d)
		}
	}
	if c.IsNaN() || c.IsInf() {
		t.Error("finite segment reported as non-finite")
	}
}
