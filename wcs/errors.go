package wcs

import "errors"

var (
	// ErrAxisCount indicates a coordinate vector with the wrong number of axes.
	ErrAxisCount = errors.New("wcs: axis count mismatch")
	// ErrInvalidAxis indicates an axis index outside the WCS.
	ErrInvalidAxis = errors.New("wcs: invalid axis")
	// ErrNoSpectralAxis indicates a WCS without a FREQ axis.
	ErrNoSpectralAxis = errors.New("wcs: no spectral axis")
	// ErrNoRestFrequency indicates a velocity conversion without rest frequency.
	ErrNoRestFrequency = errors.New("wcs: rest frequency not set")
	// ErrEmptyRegion indicates a region that selects no pixels.
	ErrEmptyRegion = errors.New("wcs: empty region")
)
