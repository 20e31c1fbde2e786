package slab

import "errors"

var (
	// ErrShapeMismatch indicates a coordinate vector whose length differs
	// from the number of axes of the shape it is applied to.
	ErrShapeMismatch = errors.New("slab: vector length does not match shape")
	// ErrDimMismatch indicates two shapes with a different number of axes.
	ErrDimMismatch = errors.New("slab: arrays have different dimensionality")
	// ErrInvalidShape indicates a shape with a negative extent.
	ErrInvalidShape = errors.New("slab: shape extents must be >= 0")
)
