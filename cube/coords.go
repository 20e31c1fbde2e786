package cube

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// AxesNames returns the world axis names in cube order.
func (c *Cube) AxesNames() ([]string, error) {
	if c.wcs == nil {
		return nil, ErrNoWCS
	}
	return c.wcs.AxisNames(), nil
}

// AxesUnits returns the world axis units in cube order.
func (c *Cube) AxesUnits() ([]string, error) {
	if c.wcs == nil {
		return nil, ErrNoWCS
	}
	return c.wcs.AxisUnits(), nil
}

// Resolution returns the absolute pixel size of every axis.
func (c *Cube) Resolution() ([]float64, error) {
	if c.wcs == nil {
		return nil, ErrNoWCS
	}
	return c.wcs.Resolution(), nil
}

// Extent returns the world coordinates of the first and last pixel of the
// region [lower, upper). Nil bounds select the whole cube.
func (c *Cube) Extent(lower, upper []int) ([]float64, []float64, error) {
	if c.wcs == nil {
		return nil, nil, ErrNoWCS
	}
	return c.wcs.Extent(c.shape, lower, upper)
}

// Features returns the world coordinates of every pixel of the region
// [lower, upper) in features format, see wcs.WCS.Features. Nil bounds
// select the whole cube.
func (c *Cube) Features(lower, upper []int) (*mat.Dense, error) {
	if c.wcs == nil {
		return nil, ErrNoWCS
	}
	return c.wcs.Features(c.shape, lower, upper)
}

// Center returns the world coordinates of the central pixel.
func (c *Cube) Center() ([]float64, error) {
	if c.wcs == nil {
		return nil, ErrNoWCS
	}
	return c.wcs.Center(c.shape)
}

// SpectralVelocities returns radio velocities in km/s. When freqs is nil
// the frequencies of the given channel indices are used, and when both
// are nil every channel of the cube is converted. A zero restFreq uses
// the rest frequency of the WCS.
func (c *Cube) SpectralVelocities(freqs []float64, channels []int, restFreq float64) ([]float64, error) {
	if c.wcs == nil {
		return nil, ErrNoWCS
	}
	if freqs == nil {
		if channels == nil {
			axis, err := c.wcs.SpectralAxis()
			if err != nil {
				return nil, err
			}
			return c.wcs.ChannelVelocities(c.shape[axis], restFreq)
		}
		var err error
		if freqs, err = c.wcs.Frequencies(channels); err != nil {
			return nil, fmt.Errorf("cube: spectral velocities: %w", err)
		}
	}
	return c.wcs.SpectralVelocities(freqs, restFreq)
}

// Opening converts the field of view center ± window, in world
// coordinates, to index bounds within the cube.
func (c *Cube) Opening(center, window []float64) ([]int, []int, error) {
	if c.wcs == nil {
		return nil, nil, ErrNoWCS
	}
	return c.wcs.Opening(c.shape, center, window)
}
