package graph

import "errors"

var (
	// ErrUnsupportedDims indicates a cube whose dimensionality has no plot.
	ErrUnsupportedDims = errors.New("graph: unsupported number of dimensions")
	// ErrMissingMetadata indicates a cube without the WCS or unit a plot needs.
	ErrMissingMetadata = errors.New("graph: cube lacks WCS or unit")
)
