package cube

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-cube/wcs"
)

// Cube is a dense n-dimensional float64 array stored in row-major order:
// the last axis varies fastest. A cube may carry a mask (true marks an
// invalid element), a unit and a world coordinate system.
type Cube struct {
	shape   []int
	strides []int
	data    []float64
	mask    []bool
	unit    string
	wcs     *wcs.WCS
}

// New returns a zero-filled cube with the given shape.
func New(shape ...int) (*Cube, error) {
	n, err := volume(shape)
	if err != nil {
		return nil, err
	}
	return newCube(make([]float64, n), shape), nil
}

// Full returns a cube with the given shape and every element set to value.
func Full(value float64, shape ...int) (*Cube, error) {
	c, err := New(shape...)
	if err != nil {
		return nil, err
	}
	for i := range c.data {
		c.data[i] = value
	}
	return c, nil
}

// FromData wraps data as a cube with the given shape. The slice is used
// directly, not copied.
func FromData(data []float64, shape ...int) (*Cube, error) {
	n, err := volume(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, fmt.Errorf("%w: %d values for shape %v", ErrDataLength, len(data), shape)
	}
	return newCube(data, shape), nil
}

func newCube(data []float64, shape []int) *Cube {
	shape = append([]int(nil), shape...)
	return &Cube{
		shape:   shape,
		strides: rowMajorStrides(shape),
		data:    data,
	}
}

func volume(shape []int) (int, error) {
	n := 1
	for i, d := range shape {
		if d < 0 {
			return 0, fmt.Errorf("%w: axis %d has extent %d", ErrInvalidShape, i, d)
		}
		n *= d
	}
	return n, nil
}

func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	step := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = step
		step *= shape[i]
	}
	return strides
}

// Shape returns a copy of the cube's shape.
func (c *Cube) Shape() []int {
	return append([]int(nil), c.shape...)
}

// NDim returns the number of axes.
func (c *Cube) NDim() int {
	return len(c.shape)
}

// Size returns the number of elements.
func (c *Cube) Size() int {
	return len(c.data)
}

// Strides returns the element step of every axis.
func (c *Cube) Strides() []int {
	return append([]int(nil), c.strides...)
}

// Data returns the backing slice. Writes through it modify the cube.
func (c *Cube) Data() []float64 {
	return c.data
}

// Unit returns the unit of the values, e.g. "Jy/beam".
func (c *Cube) Unit() string {
	return c.unit
}

// SetUnit sets the unit of the values.
func (c *Cube) SetUnit(unit string) {
	c.unit = unit
}

// WCS returns the world coordinate system or nil.
func (c *Cube) WCS() *wcs.WCS {
	return c.wcs
}

// SetWCS attaches a world coordinate system. A nil w removes it.
func (c *Cube) SetWCS(w *wcs.WCS) error {
	if w != nil && w.NAxis() != len(c.shape) {
		return fmt.Errorf("%w: %d WCS axes for %d cube axes", ErrWCSMismatch, w.NAxis(), len(c.shape))
	}
	c.wcs = w
	return nil
}

// Mask returns the mask or nil. The slice is shared with the cube.
func (c *Cube) Mask() []bool {
	return c.mask
}

// SetMask attaches a mask where true marks an invalid element. A nil mask
// removes it.
func (c *Cube) SetMask(mask []bool) error {
	if mask != nil && len(mask) != len(c.data) {
		return fmt.Errorf("%w: %d mask values for %d elements", ErrMaskLength, len(mask), len(c.data))
	}
	c.mask = mask
	return nil
}

// MaskInvalid masks every NaN and infinite element and returns the number
// of elements masked by this call.
func (c *Cube) MaskInvalid() int {
	n := 0
	for i, v := range c.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			if c.mask == nil {
				c.mask = make([]bool, len(c.data))
			}
			if !c.mask[i] {
				c.mask[i] = true
				n++
			}
		}
	}
	return n
}

// IsMasked reports whether the element at flat offset i is masked.
func (c *Cube) IsMasked(i int) bool {
	return c.mask != nil && c.mask[i]
}

// Valid reports whether the element at flat offset i is unmasked and not
// NaN.
func (c *Cube) Valid(i int) bool {
	return !c.IsMasked(i) && !math.IsNaN(c.data[i])
}

// Offset returns the flat offset of an index.
func (c *Cube) Offset(idx ...int) (int, error) {
	if len(idx) != len(c.shape) {
		return 0, fmt.Errorf("%w: %d indices for %d axes", ErrIndex, len(idx), len(c.shape))
	}
	off := 0
	for i, v := range idx {
		if v < 0 || v >= c.shape[i] {
			return 0, fmt.Errorf("%w: index %d out of range [0,%d) on axis %d", ErrIndex, v, c.shape[i], i)
		}
		off += v * c.strides[i]
	}
	return off, nil
}

// Index converts a flat offset back to an index.
func (c *Cube) Index(off int) []int {
	idx := make([]int, len(c.shape))
	for i, s := range c.strides {
		if s == 0 {
			continue
		}
		idx[i] = off / s
		off %= s
	}
	return idx
}

// At returns the element at idx. It panics if idx is out of range.
func (c *Cube) At(idx ...int) float64 {
	off, err := c.Offset(idx...)
	if err != nil {
		panic(err)
	}
	return c.data[off]
}

// Set stores v at idx. It panics if idx is out of range.
func (c *Cube) Set(v float64, idx ...int) {
	off, err := c.Offset(idx...)
	if err != nil {
		panic(err)
	}
	c.data[off] = v
}

// Clone returns a deep copy of c.
func (c *Cube) Clone() *Cube {
	out := newCube(append([]float64(nil), c.data...), c.shape)
	if c.mask != nil {
		out.mask = append([]bool(nil), c.mask...)
	}
	out.unit = c.unit
	if c.wcs != nil {
		out.wcs = c.wcs.Clone()
	}
	return out
}

// Like returns a zero-filled cube with the shape, unit and WCS of c and
// no mask.
func (c *Cube) Like() *Cube {
	out := newCube(make([]float64, len(c.data)), c.shape)
	out.unit = c.unit
	if c.wcs != nil {
		out.wcs = c.wcs.Clone()
	}
	return out
}

// Masked returns a copy of c with every masked element set to zero.
func (c *Cube) Masked() *Cube {
	out := c.Clone()
	for i := range out.mask {
		if out.mask[i] {
			out.data[i] = 0
		}
	}
	return out
}

func (c *Cube) String() string {
	if c.unit == "" {
		return fmt.Sprintf("Cube(shape=%v)", c.shape)
	}
	return fmt.Sprintf("Cube(shape=%v, unit=%s)", c.shape, c.unit)
}
