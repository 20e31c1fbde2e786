// Package normalize rescales the values of data cubes.
//
// Statistics are computed over valid elements only. Masked elements and
// NaN values are copied to the output unchanged.
package normalize

import (
	"math"
	"slices"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-cube/cube"
)

// UnitNorm maps the valid range of c onto [0, 1] with (x - min) /
// (max - min). Constant input maps to 0.
func UnitNorm(c *cube.Cube) *cube.Cube {
	vals := valid(c)
	if len(vals) == 0 {
		return c.Clone()
	}
	lo, hi := floats.Min(vals), floats.Max(vals)
	if hi == lo {
		return apply(c, func(float64) float64 { return 0 })
	}
	scale := 1 / (hi - lo)
	return apply(c, func(x float64) float64 { return (x - lo) * scale })
}

// ZScore standardizes c to zero mean and unit sample standard deviation.
// A zero standard deviation maps every valid element to 0.
func ZScore(c *cube.Cube) *cube.Cube {
	vals := valid(c)
	if len(vals) == 0 {
		return c.Clone()
	}
	mean, std := stat.MeanStdDev(vals, nil)
	if std == 0 || math.IsNaN(std) {
		return apply(c, func(float64) float64 { return 0 })
	}
	return apply(c, func(x float64) float64 { return (x - mean) / std })
}

// Peak divides c by its largest absolute valid value so that the result
// lies in [-1, 1]. An all-zero cube is returned unchanged.
func Peak(c *cube.Cube) *cube.Cube {
	vals := valid(c)
	if len(vals) == 0 {
		return c.Clone()
	}
	peak := vecmath.MaxAbs(vals)
	out := c.Clone()
	if peak == 0 {
		return out
	}
	if len(vals) == c.Size() {
		vecmath.ScaleBlockInPlace(out.Data(), 1/peak)
		return out
	}
	return apply(c, func(x float64) float64 { return x / peak })
}

// Clip limits the valid values of c to [lo, hi].
func Clip(c *cube.Cube, lo, hi float64) *cube.Cube {
	if lo > hi {
		lo, hi = hi, lo
	}
	return apply(c, func(x float64) float64 { return math.Min(math.Max(x, lo), hi) })
}

// valid returns the values of the unmasked, non-NaN elements.
func valid(c *cube.Cube) []float64 {
	out := make([]float64, 0, c.Size())
	for i, v := range c.Data() {
		if c.Valid(i) {
			out = append(out, v)
		}
	}
	return out
}

// apply returns a copy of c with fn applied to every valid element.
func apply(c *cube.Cube, fn func(float64) float64) *cube.Cube {
	out := c.Like()
	if m := c.Mask(); m != nil {
		_ = out.SetMask(slices.Clone(m))
	}
	dst := out.Data()
	for i, v := range c.Data() {
		if c.Valid(i) {
			dst[i] = fn(v)
		} else {
			dst[i] = v
		}
	}
	return out
}
