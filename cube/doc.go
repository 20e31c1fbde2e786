// Package cube provides the n-dimensional array type used for
// astronomical data cubes.
//
// A [Cube] stores float64 values in row-major order together with an
// optional mask, a unit and a linear world coordinate system. Regions are
// addressed with slabs from package slab:
//
//	c, _ := cube.New(20, 100, 100)
//	s, _ := c.Region([]int{0, 40, 40}, []int{20, 60, 60})
//	sub, _ := c.Extract(s)
//
// Bulk operations work on contiguous runs of the innermost axis, see
// [Cube.Rows] and [Cube.ZipRows].
package cube
