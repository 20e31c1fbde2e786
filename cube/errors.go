package cube

import "errors"

var (
	// ErrInvalidShape indicates a negative axis extent.
	ErrInvalidShape = errors.New("cube: shape extents must be >= 0")
	// ErrDataLength indicates a data slice that does not match the shape.
	ErrDataLength = errors.New("cube: data length does not match shape")
	// ErrMaskLength indicates a mask that does not match the data.
	ErrMaskLength = errors.New("cube: mask length does not match data")
	// ErrShapeMismatch indicates operands of incompatible shape.
	ErrShapeMismatch = errors.New("cube: shape mismatch")
	// ErrSlabBounds indicates a slab that does not fit the cube.
	ErrSlabBounds = errors.New("cube: slab outside cube")
	// ErrIndex indicates an index outside the cube.
	ErrIndex = errors.New("cube: index out of range")
	// ErrNoWCS indicates a coordinate query on a cube without WCS.
	ErrNoWCS = errors.New("cube: no world coordinate system")
	// ErrWCSMismatch indicates a WCS whose axis count differs from the cube.
	ErrWCSMismatch = errors.New("cube: WCS does not match cube dimensionality")
)
