// Package wcs implements the linear world coordinate system used by
// astronomical data cubes.
//
// Axes are stored in FITS order (axis 1 varies fastest). Every method
// that takes or returns per-axis values works in cube order instead,
// i.e. the reverse of FITS order, matching the row-major layout of
// cube.Cube. Pixel coordinates are 0-based.
//
// Projections are not modelled: an axis of type "RA---SIN" is treated as
// a linear offset from its reference value. This is accurate for the
// small fields of view typical of spectral line cubes.
package wcs

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-cube/slab"
)

// SpeedOfLight in km/s.
const SpeedOfLight = 299792.458

// Axis describes one linear world axis.
type Axis struct {
	Type   string  // CTYPE, e.g. "RA---SIN" or "FREQ"
	Unit   string  // CUNIT
	RefPix float64 // CRPIX, 1-based
	RefVal float64 // CRVAL
	Delta  float64 // CDELT
}

// Name returns the axis type without its projection code.
func (a Axis) Name() string {
	name, _, _ := strings.Cut(a.Type, "-")
	return strings.TrimSpace(name)
}

// PixToWorld converts a 0-based pixel coordinate to a world coordinate.
func (a Axis) PixToWorld(p float64) float64 {
	return a.RefVal + (p+1-a.RefPix)*a.Delta
}

// WorldToPix converts a world coordinate to a 0-based pixel coordinate.
// It returns NaN when the axis has no increment.
func (a Axis) WorldToPix(w float64) float64 {
	if a.Delta == 0 {
		return math.NaN()
	}
	return (w-a.RefVal)/a.Delta + a.RefPix - 1
}

// WCS is a linear world coordinate system.
type WCS struct {
	Axes     []Axis // FITS order
	RestFreq float64
}

// New returns a WCS with axes given in FITS order.
func New(axes ...Axis) *WCS {
	return &WCS{Axes: append([]Axis(nil), axes...)}
}

// NAxis returns the number of axes.
func (w *WCS) NAxis() int {
	return len(w.Axes)
}

// Axis returns the axis that corresponds to cube axis i.
func (w *WCS) Axis(i int) (Axis, error) {
	if i < 0 || i >= len(w.Axes) {
		return Axis{}, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidAxis, i, len(w.Axes))
	}
	return w.Axes[len(w.Axes)-1-i], nil
}

// Clone returns a deep copy of w.
func (w *WCS) Clone() *WCS {
	c := *w
	c.Axes = append([]Axis(nil), w.Axes...)
	return &c
}

// PixToWorld converts a pixel position in cube order to world coordinates.
func (w *WCS) PixToWorld(pix []float64) ([]float64, error) {
	if err := w.checkLen(len(pix)); err != nil {
		return nil, err
	}
	out := make([]float64, len(pix))
	for i, p := range pix {
		out[i] = w.Axes[len(w.Axes)-1-i].PixToWorld(p)
	}
	return out, nil
}

// WorldToPix converts world coordinates in cube order to pixel positions.
func (w *WCS) WorldToPix(world []float64) ([]float64, error) {
	if err := w.checkLen(len(world)); err != nil {
		return nil, err
	}
	out := make([]float64, len(world))
	for i, v := range world {
		out[i] = w.Axes[len(w.Axes)-1-i].WorldToPix(v)
	}
	return out, nil
}

// AxisNames returns the axis names in cube order.
func (w *WCS) AxisNames() []string {
	names := make([]string, len(w.Axes))
	for i := range names {
		names[i] = w.Axes[len(w.Axes)-1-i].Name()
	}
	return names
}

// AxisUnits returns the axis units in cube order.
func (w *WCS) AxisUnits() []string {
	units := make([]string, len(w.Axes))
	for i := range units {
		units[i] = w.Axes[len(w.Axes)-1-i].Unit
	}
	return units
}

// Resolution returns the absolute pixel increment of every axis in cube
// order.
func (w *WCS) Resolution() []float64 {
	res := make([]float64, len(w.Axes))
	for i := range res {
		res[i] = math.Abs(w.Axes[len(w.Axes)-1-i].Delta)
	}
	return res
}

// Extent returns the world coordinates of the first and last pixel of the
// region [lower, upper) of a cube with the given shape. Nil bounds select
// the full extent.
func (w *WCS) Extent(shape, lower, upper []int) ([]float64, []float64, error) {
	if err := w.checkLen(len(shape)); err != nil {
		return nil, nil, err
	}
	s, err := slab.Build(shape, lower, upper)
	if err != nil {
		return nil, nil, fmt.Errorf("wcs: extent: %w", err)
	}

	first := make([]float64, len(s))
	last := make([]float64, len(s))
	for i, r := range s {
		first[i] = float64(r.Start)
		last[i] = float64(r.Stop - 1)
	}
	lo, err := w.PixToWorld(first)
	if err != nil {
		return nil, nil, err
	}
	hi, err := w.PixToWorld(last)
	if err != nil {
		return nil, nil, err
	}
	return lo, hi, nil
}

// Center returns the world coordinates of the central pixel of a cube
// with the given shape.
func (w *WCS) Center(shape []int) ([]float64, error) {
	pix := make([]float64, len(shape))
	for i, n := range shape {
		pix[i] = float64(n-1) / 2
	}
	return w.PixToWorld(pix)
}

// Opening converts the field of view center ± window (world coordinates
// in cube order) into index bounds clamped to shape. The result can be
// passed to slab.Build.
func (w *WCS) Opening(shape []int, center, window []float64) ([]int, []int, error) {
	if err := w.checkLen(len(shape)); err != nil {
		return nil, nil, err
	}
	if len(center) != len(shape) || len(window) != len(shape) {
		return nil, nil, fmt.Errorf("%w: center has %d, window has %d, shape has %d axes",
			ErrAxisCount, len(center), len(window), len(shape))
	}

	lo := make([]float64, len(center))
	hi := make([]float64, len(center))
	for i := range center {
		lo[i] = center[i] - window[i]
		hi[i] = center[i] + window[i]
	}
	plo, err := w.WorldToPix(lo)
	if err != nil {
		return nil, nil, err
	}
	phi, err := w.WorldToPix(hi)
	if err != nil {
		return nil, nil, err
	}

	lower := make([]int, len(shape))
	upper := make([]int, len(shape))
	for i := range shape {
		a, b := math.Min(plo[i], phi[i]), math.Max(plo[i], phi[i])
		if math.IsNaN(a) || math.IsNaN(b) {
			lower[i], upper[i] = 0, shape[i]
			continue
		}
		lower[i] = int(math.Round(a))
		upper[i] = int(math.Round(b)) + 1
	}

	if lower, err = slab.Clamp(shape, lower); err != nil {
		return nil, nil, err
	}
	if upper, err = slab.Clamp(shape, upper); err != nil {
		return nil, nil, err
	}
	return lower, upper, nil
}

// Features returns the world coordinates of every pixel of the region
// [lower, upper) of a cube with the given shape in features format: a
// dim x n matrix whose column j holds the coordinates of the j-th pixel
// of the region in row-major order. Rows are in reversed cube order, so
// row 0 holds the coordinate along the last axis (x, y, z for a cube).
func (w *WCS) Features(shape, lower, upper []int) (*mat.Dense, error) {
	if err := w.checkLen(len(shape)); err != nil {
		return nil, err
	}
	s, err := slab.Build(shape, lower, upper)
	if err != nil {
		return nil, fmt.Errorf("wcs: features: %w", err)
	}
	dim, n := s.NDim(), s.Size()
	if dim == 0 || n == 0 {
		return nil, fmt.Errorf("%w: slab %v", ErrEmptyRegion, s)
	}

	axes := make([]Axis, dim)
	for i := range axes {
		axes[i] = w.Axes[len(w.Axes)-1-i]
	}
	feat := mat.NewDense(dim, n, nil)
	sub := s.Shape()
	idx := make([]int, dim)
	for j := 0; j < n; j++ {
		for ax := 0; ax < dim; ax++ {
			feat.Set(dim-1-ax, j, axes[ax].PixToWorld(float64(s[ax].Start+idx[ax])))
		}
		for ax := dim - 1; ax >= 0; ax-- {
			idx[ax]++
			if idx[ax] < sub[ax] {
				break
			}
			idx[ax] = 0
		}
	}
	return feat, nil
}

// Offset returns a copy of w whose pixel origin is moved to lower, given
// in cube order. It describes the coordinates of a sub-cube that starts
// at lower.
func (w *WCS) Offset(lower []int) (*WCS, error) {
	if err := w.checkLen(len(lower)); err != nil {
		return nil, err
	}
	out := w.Clone()
	for i, l := range lower {
		out.Axes[len(out.Axes)-1-i].RefPix -= float64(l)
	}
	return out, nil
}

// Drop returns a copy of w without the given cube axes.
func (w *WCS) Drop(axes ...int) (*WCS, error) {
	drop := make(map[int]bool, len(axes))
	for _, a := range axes {
		if a < 0 || a >= len(w.Axes) {
			return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidAxis, a, len(w.Axes))
		}
		drop[len(w.Axes)-1-a] = true
	}

	out := &WCS{RestFreq: w.RestFreq}
	for i, ax := range w.Axes {
		if !drop[i] {
			out.Axes = append(out.Axes, ax)
		}
	}
	return out, nil
}

func (w *WCS) String() string {
	var b strings.Builder
	b.WriteString("WCS{")
	for i, ax := range w.Axes {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(ax.Type)
		b.WriteString("=")
		b.WriteString(strconv.FormatFloat(ax.RefVal, 'g', -1, 64))
		if ax.Unit != "" {
			b.WriteString(" ")
			b.WriteString(ax.Unit)
		}
	}
	b.WriteString("}")
	return b.String()
}

func (w *WCS) checkLen(n int) error {
	if n != len(w.Axes) {
		return fmt.Errorf("%w: got %d values for %d axes", ErrAxisCount, n, len(w.Axes))
	}
	return nil
}
