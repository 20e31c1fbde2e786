// Package flux accumulates small patches into larger data cubes.
//
// A patch is placed at an arbitrary offset inside the destination cube.
// Parts of the patch that fall outside the cube are dropped, so sources
// near the edges of a field can be added without special casing:
//
//	err := flux.Add(dst, psf, []int{ch, y - 8, x - 8})
//
// Masked patch elements contribute nothing.
package flux

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-cube/cube"
	"github.com/cwbudde/algo-cube/slab"
)

// ErrOffset indicates an offset whose length differs from the patch
// dimensionality.
var ErrOffset = errors.New("flux: offset length does not match patch")

// Add adds patch into dst with the patch origin placed at lower.
func Add(dst, patch *cube.Cube, lower []int) error {
	return AddScaled(dst, patch, lower, 1)
}

// Subtract removes patch from dst with the patch origin placed at lower.
func Subtract(dst, patch *cube.Cube, lower []int) error {
	return AddScaled(dst, patch, lower, -1)
}

// AddScaled adds scale*patch into dst with the patch origin at lower.
func AddScaled(dst, patch *cube.Cube, lower []int, scale float64) error {
	if len(lower) != patch.NDim() {
		return fmt.Errorf("%w: %d values for %d axes", ErrOffset, len(lower), patch.NDim())
	}
	shape := patch.Shape()
	upper := make([]int, len(lower))
	for i := range lower {
		upper[i] = lower[i] + shape[i]
	}
	return accumulate(dst, patch, lower, upper, scale)
}

// AddRegion adds patch into the region [lower, upper) of dst. The patch
// is aligned with the region as described by slab.Match.
func AddRegion(dst, patch *cube.Cube, lower, upper []int) error {
	return accumulate(dst, patch, lower, upper, 1)
}

// Overlap returns the slabs of dst and patch that an accumulation at
// lower touches.
func Overlap(dst, patch *cube.Cube, lower []int) (slab.Slab, slab.Slab, error) {
	if len(lower) != patch.NDim() {
		return nil, nil, fmt.Errorf("%w: %d values for %d axes", ErrOffset, len(lower), patch.NDim())
	}
	shape := patch.Shape()
	upper := make([]int, len(lower))
	for i := range lower {
		upper[i] = lower[i] + shape[i]
	}
	return slab.Match(dst.Shape(), shape, lower, upper)
}

func accumulate(dst, patch *cube.Cube, lower, upper []int, scale float64) error {
	sd, sp, err := slab.Match(dst.Shape(), patch.Shape(), lower, upper)
	if err != nil {
		return fmt.Errorf("flux: %w", err)
	}
	if sd.Empty() {
		return nil
	}

	if patch.Mask() != nil {
		patch = patch.Masked()
	}

	d, p := dst.Data(), patch.Data()
	var scratch []float64
	return dst.ZipRows(sd, patch, sp, func(off, poff, n int) {
		row := d[off : off+n]
		src := p[poff : poff+n]
		if scale == 1 {
			vecmath.AddBlockInPlace(row, src)
			return
		}
		if cap(scratch) < n {
			scratch = make([]float64, n)
		}
		scratch = scratch[:n]
		vecmath.ScaleBlock(scratch, src, scale)
		vecmath.AddBlockInPlace(row, scratch)
	})
}
