package lti

import "errors"

// Error kinds surfaced by the package. Failures are wrapped with context, so
// callers match them with errors.Is.
var (
	// ErrConstruction signals invalid arguments when building a transfer
	// function or a state-space realization: an empty or identically zero
	// denominator, inconsistent matrix dimensions, an improper transfer
	// function, or a non-positive sample period.
	ErrConstruction = errors.New("lti: invalid construction")

	// ErrDimension signals a state or input vector whose size does not match
	// the realized order times the channel count.
	ErrDimension = errors.New("lti: dimension mismatch")

	// ErrSymbolic signals that an algebraic operation collapsed the
	// denominator to the zero polynomial.
	ErrSymbolic = errors.New("lti: symbolic evaluation failed")
)
