package testutil

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-cube/cube"
	"github.com/cwbudde/algo-cube/wcs"
)

// RestFreq is the rest frequency of SpectralWCS.
const RestFreq = 230.538e9

// FromData wraps data as a cube and fails t on error.
func FromData(t testing.TB, data []float64, shape ...int) *cube.Cube {
	t.Helper()
	c, err := cube.FromData(data, shape...)
	require.NoError(t, err)
	return c
}

// Ramp returns a cube whose elements hold their own flat offset.
func Ramp(t testing.TB, shape ...int) *cube.Cube {
	t.Helper()
	c, err := cube.New(shape...)
	require.NoError(t, err)
	for i := range c.Data() {
		c.Data()[i] = float64(i)
	}
	return c
}

// Full returns a cube filled with value.
func Full(t testing.TB, value float64, shape ...int) *cube.Cube {
	t.Helper()
	c, err := cube.Full(value, shape...)
	require.NoError(t, err)
	return c
}

// DeterministicNoise returns a cube of uniform white noise in
// [-amplitude, amplitude) drawn with a fixed seed.
func DeterministicNoise(t testing.TB, seed int64, amplitude float64, shape ...int) *cube.Cube {
	t.Helper()
	c, err := cube.New(shape...)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	for i := range c.Data() {
		c.Data()[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return c
}

// GaussianBlob returns a cube holding an isotropic Gaussian with the
// given peak centred at center (cube order, pixels).
func GaussianBlob(t testing.TB, peak, sigma float64, center []float64, shape ...int) *cube.Cube {
	t.Helper()
	require.Len(t, center, len(shape))
	c, err := cube.New(shape...)
	require.NoError(t, err)
	for i := range c.Data() {
		idx := c.Index(i)
		r2 := 0.0
		for ax, v := range idx {
			d := float64(v) - center[ax]
			r2 += d * d
		}
		c.Data()[i] = peak * math.Exp(-r2/(2*sigma*sigma))
	}
	return c
}

// SpectralWCS returns a FREQ/DEC/RA coordinate system for cubes of shape
// (nchan, ny, nx): 1 MHz channels starting at RestFreq and 0.5 arcsec
// pixels centred on (RA, Dec) = (83.8, -5.4) degrees.
func SpectralWCS(ny, nx int) *wcs.WCS {
	const pixel = 0.5 / 3600
	w := wcs.New(
		wcs.Axis{Type: "RA---SIN", Unit: "deg", RefPix: float64(nx)/2 + 0.5, RefVal: 83.8, Delta: -pixel},
		wcs.Axis{Type: "DEC--SIN", Unit: "deg", RefPix: float64(ny)/2 + 0.5, RefVal: -5.4, Delta: pixel},
		wcs.Axis{Type: "FREQ", Unit: "Hz", RefPix: 1, RefVal: RestFreq, Delta: 1e6},
	)
	w.RestFreq = RestFreq
	return w
}
