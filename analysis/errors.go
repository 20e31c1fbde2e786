package analysis

import "errors"

var (
	// ErrInvalidAxis indicates an axis outside the cube or repeated twice.
	ErrInvalidAxis = errors.New("analysis: invalid axis")
	// ErrMaskLength indicates a mask that does not match the cube.
	ErrMaskLength = errors.New("analysis: mask length does not match cube")
	// ErrDimMismatch indicates operands of inconsistent dimensionality.
	ErrDimMismatch = errors.New("analysis: dimension mismatch")
	// ErrEmpty indicates an operation that needs at least one element.
	ErrEmpty = errors.New("analysis: empty input")
	// ErrVanishing indicates a Gaussian that underflows at every feature.
	ErrVanishing = errors.New("analysis: gaussian vanishes at every feature")
	// ErrInvalidSigma indicates a non-positive smoothing width.
	ErrInvalidSigma = errors.New("analysis: sigma must be > 0")
)
