// Package slab computes per-axis index ranges ("slabs") that describe
// rectangular sub-regions of n-dimensional arrays.
//
// A slab is built from optional lower and upper coordinate vectors that
// may lie outside the array. Coordinates are clamped into [0, shape[i]]
// independently per axis, so a request that sticks out of the array on
// one side and falls short on another is corrected in a single call:
//
//	s, err := slab.Build([]int{10, 10}, []int{-2, 3}, []int{4, 12})
//	// s == [0:4, 3:10]
//
// # Matching two arrays
//
// [Match] aligns a secondary array B with a requested region of a
// primary array A. Both returned slabs select sub-arrays of identical
// shape, which makes accumulating a small patch into a larger cube a
// single bulk operation even when the patch overlaps the cube's edges:
//
//	a, b, err := slab.Match([]int{10, 10}, []int{4, 4}, []int{-2, -2}, []int{2, 2})
//	// a == [0:2, 0:2], b == [2:4, 2:4]
//
// # Degenerate ranges
//
// Lower bounds greater than upper bounds are not rejected. The resulting
// range has Start > Stop and selects nothing on that axis.
package slab
