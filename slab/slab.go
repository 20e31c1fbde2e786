package slab

import (
	"fmt"
	"strings"
)

// Range is a half-open index interval [Start, Stop) along one axis.
type Range struct {
	Start int
	Stop  int
}

// Len returns the number of indices selected by r.
// Degenerate ranges (Start > Stop) select nothing.
func (r Range) Len() int {
	if r.Stop <= r.Start {
		return 0
	}
	return r.Stop - r.Start
}

// Empty reports whether r selects no indices.
func (r Range) Empty() bool {
	return r.Len() == 0
}

func (r Range) String() string {
	return fmt.Sprintf("%d:%d", r.Start, r.Stop)
}

// Slab holds one Range per axis and describes a rectangular sub-region
// of an array. A slab is a transient value: build it, index with it,
// drop it.
type Slab []Range

// NDim returns the number of axes covered by s.
func (s Slab) NDim() int {
	return len(s)
}

// Shape returns the extent selected on every axis.
func (s Slab) Shape() []int {
	shape := make([]int, len(s))
	for i, r := range s {
		shape[i] = r.Len()
	}
	return shape
}

// Size returns the number of elements selected by s.
func (s Slab) Size() int {
	n := 1
	for _, r := range s {
		n *= r.Len()
	}
	return n
}

// Empty reports whether s selects no elements.
func (s Slab) Empty() bool {
	for _, r := range s {
		if r.Empty() {
			return true
		}
	}
	return false
}

// Lower returns the start index of every axis.
func (s Slab) Lower() []int {
	lower := make([]int, len(s))
	for i, r := range s {
		lower[i] = r.Start
	}
	return lower
}

// Upper returns the stop index of every axis.
func (s Slab) Upper() []int {
	upper := make([]int, len(s))
	for i, r := range s {
		upper[i] = r.Stop
	}
	return upper
}

// Fits reports whether every range of s lies within [0, shape[i]].
// Degenerate ranges only need their endpoints inside the bounds.
func (s Slab) Fits(shape []int) bool {
	if len(s) != len(shape) {
		return false
	}
	for i, r := range s {
		if r.Start < 0 || r.Stop < 0 || r.Start > shape[i] || r.Stop > shape[i] {
			return false
		}
	}
	return true
}

func (s Slab) String() string {
	parts := make([]string, len(s))
	for i, r := range s {
		parts[i] = r.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Clamp returns a copy of vector with every component snapped into
// [0, shape[i]]. Axes are clamped independently. The input is not
// modified.
func Clamp(shape, vector []int) ([]int, error) {
	if len(vector) != len(shape) {
		return nil, fmt.Errorf("%w: vector has %d components, shape has %d axes",
			ErrShapeMismatch, len(vector), len(shape))
	}
	if err := validateShape(shape); err != nil {
		return nil, err
	}

	out := make([]int, len(vector))
	for i, v := range vector {
		switch {
		case v < 0:
			out[i] = 0
		case v > shape[i]:
			out[i] = shape[i]
		default:
			out[i] = v
		}
	}
	return out, nil
}

// Build returns the slab [lower, upper) clamped to shape.
//
// A nil lower selects from the origin and a nil upper selects up to the
// full extent, so Build(shape, nil, nil) covers the whole array. Lower
// bounds greater than upper bounds are kept as degenerate ranges.
func Build(shape, lower, upper []int) (Slab, error) {
	if lower == nil {
		lower = make([]int, len(shape))
	}
	if upper == nil {
		upper = shape
	}

	lo, err := Clamp(shape, lower)
	if err != nil {
		return nil, fmt.Errorf("lower bound: %w", err)
	}
	hi, err := Clamp(shape, upper)
	if err != nil {
		return nil, fmt.Errorf("upper bound: %w", err)
	}

	s := make(Slab, len(shape))
	for i := range s {
		s[i] = Range{Start: lo[i], Stop: hi[i]}
	}
	return s, nil
}

// Match computes the slabs of a primary shape A and a secondary shape B
// that address the same region when B is laid over the request
// [lower, upper) given in A's index space.
//
// On every axis where the request starts at A's origin (either because
// lower was clamped up to 0 or because it is 0), B is aligned by its far
// edge with the far edge of the request. On all other axes B is aligned
// by its own origin with lower. Both slabs are then reduced to their
// common overlap, so indexing A with the first slab and B with the second
// always produces sub-arrays of identical shape. Requests that miss A
// entirely yield two empty slabs.
//
// Nil bounds default as in Build.
func Match(shapeA, shapeB, lower, upper []int) (Slab, Slab, error) {
	if len(shapeA) != len(shapeB) {
		return nil, nil, fmt.Errorf("%w: %d axes vs %d axes", ErrDimMismatch, len(shapeA), len(shapeB))
	}
	if err := validateShape(shapeB); err != nil {
		return nil, nil, err
	}
	if lower == nil {
		lower = make([]int, len(shapeA))
	}
	if upper == nil {
		upper = shapeA
	}

	a, err := Build(shapeA, lower, upper)
	if err != nil {
		return nil, nil, err
	}

	bLower := make([]int, len(shapeB))
	bUpper := make([]int, len(shapeB))
	for i := range a {
		// B index j sits on A index off+j.
		off := lower[i]
		if a[i].Start == 0 {
			off = upper[i] - shapeB[i]
		}

		start := max(a[i].Start, off)
		stop := min(a[i].Stop, off+shapeB[i])
		if stop <= start {
			a[i] = Range{Start: a[i].Start, Stop: a[i].Start}
			pos := a[i].Start - off
			bLower[i], bUpper[i] = pos, pos
			continue
		}

		a[i] = Range{Start: start, Stop: stop}
		bLower[i] = start - off
		bUpper[i] = stop - off
	}

	b, err := Build(shapeB, bLower, bUpper)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// Coords converts floating point coordinates to indices, truncating
// toward zero.
func Coords(v []float64) []int {
	if v == nil {
		return nil
	}
	out := make([]int, len(v))
	for i, x := range v {
		out[i] = int(x)
	}
	return out
}

func validateShape(shape []int) error {
	for i, n := range shape {
		if n < 0 {
			return fmt.Errorf("%w: axis %d has extent %d", ErrInvalidShape, i, n)
		}
	}
	return nil
}
