package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRamp(t *testing.T) {
	c := Ramp(t, 2, 3)
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5}, c.Data())
	assert.Equal(t, 5.0, c.At(1, 2))
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(t, 42, 1.0, 4, 16)
	b := DeterministicNoise(t, 42, 1.0, 4, 16)
	assert.Equal(t, a.Data(), b.Data())
	for _, v := range a.Data() {
		require.GreaterOrEqual(t, v, -1.0)
		require.Less(t, v, 1.0)
	}
}

func TestGaussianBlob(t *testing.T) {
	c := GaussianBlob(t, 5, 1.5, []float64{2, 3}, 5, 7)
	assert.InDelta(t, 5.0, c.At(2, 3), 1e-12)
	assert.Less(t, c.At(0, 0), c.At(1, 2))
	assert.InDelta(t, c.At(1, 3), c.At(3, 3), 1e-12)
}

func TestSpectralWCS(t *testing.T) {
	w := SpectralWCS(64, 64)
	assert.Equal(t, []string{"FREQ", "DEC", "RA"}, w.AxisNames())
	center, err := w.Center([]int{10, 64, 64})
	require.NoError(t, err)
	assert.InDelta(t, 83.8, center[2], 1e-9)
	assert.InDelta(t, -5.4, center[1], 1e-9)
}
