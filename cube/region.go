package cube

import (
	"fmt"

	"github.com/cwbudde/algo-cube/slab"
)

// Region returns the slab [lower, upper) of c, clamped to its shape.
func (c *Cube) Region(lower, upper []int) (slab.Slab, error) {
	return slab.Build(c.shape, lower, upper)
}

// Rows calls fn with the flat offset and length of every contiguous run
// of elements selected by s, in row-major order. Empty slabs produce no
// calls.
func (c *Cube) Rows(s slab.Slab, fn func(off, n int)) error {
	if err := c.checkSlab(s); err != nil {
		return err
	}
	walkRows(s, c.strides, nil, nil, func(off, _, n int) {
		fn(off, n)
	})
	return nil
}

// ZipRows walks the slab s of c and the slab os of other in lockstep.
// Both slabs must select the same shape; fn receives the offsets of the
// matching runs in c and other together with the run length.
func (c *Cube) ZipRows(s slab.Slab, other *Cube, os slab.Slab, fn func(off, otherOff, n int)) error {
	if err := c.checkSlab(s); err != nil {
		return err
	}
	if err := other.checkSlab(os); err != nil {
		return err
	}
	if !sameShape(s.Shape(), os.Shape()) {
		return fmt.Errorf("%w: slab %v selects %v, slab %v selects %v",
			ErrShapeMismatch, s, s.Shape(), os, os.Shape())
	}
	walkRows(s, c.strides, os, other.strides, fn)
	return nil
}

// Extract copies the region s of c into a new cube. Mask and unit are
// carried over and the WCS is shifted to the region's origin.
func (c *Cube) Extract(s slab.Slab) (*Cube, error) {
	if err := c.checkSlab(s); err != nil {
		return nil, err
	}

	out := newCube(make([]float64, s.Size()), s.Shape())
	out.unit = c.unit
	if c.mask != nil {
		out.mask = make([]bool, len(out.data))
	}

	pos := 0
	walkRows(s, c.strides, nil, nil, func(off, _, n int) {
		copy(out.data[pos:pos+n], c.data[off:off+n])
		if c.mask != nil {
			copy(out.mask[pos:pos+n], c.mask[off:off+n])
		}
		pos += n
	})

	if c.wcs != nil {
		w, err := c.wcs.Offset(s.Lower())
		if err != nil {
			return nil, err
		}
		out.wcs = w
	}
	return out, nil
}

// Assign copies src into the region s of c. The shape of src must equal
// the shape selected by s.
func (c *Cube) Assign(s slab.Slab, src *Cube) error {
	if err := c.checkSlab(s); err != nil {
		return err
	}
	if !sameShape(s.Shape(), src.shape) {
		return fmt.Errorf("%w: slab %v selects %v, source has %v", ErrShapeMismatch, s, s.Shape(), src.shape)
	}

	pos := 0
	walkRows(s, c.strides, nil, nil, func(off, _, n int) {
		copy(c.data[off:off+n], src.data[pos:pos+n])
		pos += n
	})
	return nil
}

func (c *Cube) checkSlab(s slab.Slab) error {
	if len(s) != len(c.shape) {
		return fmt.Errorf("%w: slab has %d axes, cube has %d", ErrShapeMismatch, len(s), len(c.shape))
	}
	if !s.Fits(c.shape) {
		return fmt.Errorf("%w: %v outside shape %v", ErrSlabBounds, s, c.shape)
	}
	return nil
}

// walkRows visits the innermost runs of s (strides) and, when other is
// non-nil, the runs at the same relative position of other (otherStrides).
func walkRows(s slab.Slab, strides []int, other slab.Slab, otherStrides []int, fn func(off, otherOff, n int)) {
	nd := len(s)
	if nd == 0 {
		fn(0, 0, 1)
		return
	}

	shape := s.Shape()
	for _, n := range shape {
		if n == 0 {
			return
		}
	}

	rel := make([]int, nd)
	run := shape[nd-1]
	for {
		off, otherOff := 0, 0
		for i := 0; i < nd; i++ {
			off += (s[i].Start + rel[i]) * strides[i]
			if other != nil {
				otherOff += (other[i].Start + rel[i]) * otherStrides[i]
			}
		}
		fn(off, otherOff, run)

		ax := nd - 2
		for ; ax >= 0; ax-- {
			rel[ax]++
			if rel[ax] < shape[ax] {
				break
			}
			rel[ax] = 0
		}
		if ax < 0 {
			return
		}
	}
}

func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
