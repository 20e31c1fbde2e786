package analysis

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-cube/cube"
	"github.com/cwbudde/algo-cube/slab"
)

// RMS returns the root mean square of the valid elements of c. An element
// is skipped when it is NaN, masked in c or set in mask. A nil mask only
// applies the cube's own mask. RMS returns 0 when no element is valid.
func RMS(c *cube.Cube, mask []bool) (float64, error) {
	vals, err := validValues(c, mask)
	if err != nil {
		return 0, err
	}
	if len(vals) == 0 {
		return 0, nil
	}
	return mathSqrt(vecmath.DotProduct(vals, vals) / float64(len(vals))), nil
}

// validValues returns the data of c without missing elements. The cube's
// backing slice is returned as is when nothing is missing.
func validValues(c *cube.Cube, mask []bool) ([]float64, error) {
	if mask != nil && len(mask) != c.Size() {
		return nil, fmt.Errorf("%w: %d mask values for %d elements", ErrMaskLength, len(mask), c.Size())
	}

	data := c.Data()
	missing := func(i int) bool {
		return !c.Valid(i) || (mask != nil && mask[i])
	}

	first := -1
	for i := range data {
		if missing(i) {
			first = i
			break
		}
	}
	if first < 0 {
		return data, nil
	}

	vals := make([]float64, first, len(data))
	copy(vals, data[:first])
	for i := first + 1; i < len(data); i++ {
		if !missing(i) {
			vals = append(vals, data[i])
		}
	}
	return vals, nil
}

// Denoise returns a copy of c that keeps the values strictly greater than
// threshold and zeroes everything else, NaN included. Mask, unit and WCS
// are carried over.
func Denoise(c *cube.Cube, threshold float64) *cube.Cube {
	out := c.Like()
	if m := c.Mask(); m != nil {
		_ = out.SetMask(slices.Clone(m))
	}
	dst := out.Data()
	for i, v := range c.Data() {
		if v > threshold {
			dst[i] = v
		}
	}
	return out
}

// Integrate sums c along the given axes, axis 0 when none are given.
// Masked elements and NaN values count as zero, as do elements set in the
// optional mask. The result keeps the unit of c and a WCS without the
// summed axes. Summing over every axis yields a 0-dimensional cube.
func Integrate(c *cube.Cube, mask []bool, axes ...int) (*cube.Cube, error) {
	if len(axes) == 0 {
		axes = []int{0}
	}
	nd := c.NDim()
	summed := make([]bool, nd)
	for _, a := range axes {
		if a < 0 || a >= nd || summed[a] {
			return nil, fmt.Errorf("%w: %d for %d-dimensional cube", ErrInvalidAxis, a, nd)
		}
		summed[a] = true
	}

	src, err := zeroMissing(c, mask)
	if err != nil {
		return nil, err
	}

	shape := c.Shape()
	var outShape []int
	for i, n := range shape {
		if !summed[i] {
			outShape = append(outShape, n)
		}
	}
	out, err := cube.New(outShape...)
	if err != nil {
		return nil, err
	}
	out.SetUnit(c.Unit())

	// Output step of every input axis, 0 on summed axes.
	outStrides := make([]int, nd)
	steps := out.Strides()
	for i, k := 0, 0; i < nd; i++ {
		if !summed[i] {
			outStrides[i] = steps[k]
			k++
		}
	}

	full, err := slab.Build(shape, nil, nil)
	if err != nil {
		return nil, err
	}
	dst := out.Data()
	err = src.Rows(full, func(off, n int) {
		o := 0
		for i, v := range src.Index(off) {
			o += v * outStrides[i]
		}
		row := src.Data()[off : off+n]
		if summed[nd-1] {
			dst[o] += vecmath.Sum(row)
			return
		}
		vecmath.AddBlockInPlace(dst[o:o+n], row)
	})
	if err != nil {
		return nil, err
	}

	if w := c.WCS(); w != nil {
		dropped, err := w.Drop(axes...)
		if err != nil {
			return nil, err
		}
		if err := out.SetWCS(dropped); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// zeroMissing returns a mask-free copy of c with every missing element
// set to zero.
func zeroMissing(c *cube.Cube, mask []bool) (*cube.Cube, error) {
	if mask != nil && len(mask) != c.Size() {
		return nil, fmt.Errorf("%w: %d mask values for %d elements", ErrMaskLength, len(mask), c.Size())
	}
	out := c.Clone()
	data := out.Data()
	for i := range data {
		if !c.Valid(i) || (mask != nil && mask[i]) {
			data[i] = 0
		}
	}
	_ = out.SetMask(nil)
	return out, nil
}

// Threshold returns the level nsigma times the RMS of c, the usual cut
// for Denoise.
func Threshold(c *cube.Cube, nsigma float64) (float64, error) {
	rms, err := RMS(c, nil)
	if err != nil {
		return 0, err
	}
	return nsigma * rms, nil
}
