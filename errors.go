package conic

import "errors"

var (
	// ErrInvalidRange is returned when a range is not finite and ordered.
	ErrInvalidRange = errors.New("invalid range")

	// ErrInvalidSigma is returned when a bilinear factor is not strictly
	// positive.
	ErrInvalidSigma = errors.New("invalid bilinear factor")

	// ErrInvalidTolerance is returned when a tolerance is not strictly
	// positive.
	ErrInvalidTolerance = errors.New("invalid tolerance")

	// ErrNonFinite is returned when a point, angle or coefficient is NaN or
	// infinite.
	ErrNonFinite = errors.New("non-finite input")

	// ErrDegenerateGeometry is returned when control points do not determine
	// a curve, such as coincident endpoints or a tangent parallel to the
	// chord.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrPoleInRange is returned when the denominator of a rational curve
	// vanishes on its closed range.
	ErrPoleInRange = errors.New("denominator vanishes in range")
)

// GeometryError reports bad caller-supplied geometry. Err is one of the
// package's sentinel errors.
type GeometryError struct {
	Op     string
	Detail string
	Err    error
}

func (e *GeometryError) Error() string {
	s := "conic: " + e.Op + ": " + e.Err.Error()
	if e.Detail != "" {
		s += ": " + e.Detail
	}
	return s
}

func (e *GeometryError) Unwrap() error { return e.Err }

func geometryError(op string, err error, detail string) error {
	return &GeometryError{Op: op, Detail: detail, Err: err}
}

// InvariantError is the panic value used when an internal algebraic
// invariant does not hold. It indicates a defect in this package, not bad
// input, and is never returned as an error.
type InvariantError string

func (e InvariantError) Error() string {
	return "conic: invariant violated: " + string(e)
}
