package fitscube

import (
	"bytes"
	"log/slog"
	"math"
	"path/filepath"
	"testing"

	"github.com/astrogo/fitsio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-cube/internal/testutil"
)

func TestRoundTrip(t *testing.T) {
	c := testutil.Ramp(t, 3, 4, 5)
	c.SetUnit("Jy/beam")
	require.NoError(t, c.SetWCS(testutil.SpectralWCS(4, 5)))
	c.Set(math.NaN(), 0, 0, 1)
	require.Equal(t, 1, c.MaskInvalid())

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, c))

	got, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5}, got.Shape())
	assert.Equal(t, "Jy/beam", got.Unit())
	testutil.RequireSliceNearlyEqual(t, got.Data(), c.Data(), 0)
	assert.True(t, got.IsMasked(1))
	assert.False(t, got.IsMasked(2))

	require.NotNil(t, got.WCS())
	require.Len(t, got.WCS().Axes, 3)
	for i, want := range c.WCS().Axes {
		ax := got.WCS().Axes[i]
		assert.Equal(t, want.Type, ax.Type)
		assert.Equal(t, want.Unit, ax.Unit)
		assert.InDelta(t, want.RefPix, ax.RefPix, 1e-9)
		assert.InDelta(t, want.RefVal, ax.RefVal, math.Abs(want.RefVal)*1e-12)
		assert.InDelta(t, want.Delta, ax.Delta, math.Abs(want.Delta)*1e-9)
	}
	assert.InDelta(t, testutil.RestFreq, got.WCS().RestFreq, 1)
}

func TestReadScaledIntegers(t *testing.T) {
	var buf bytes.Buffer
	f, err := fitsio.Create(&buf)
	require.NoError(t, err)

	img := fitsio.NewImage(16, []int{3, 2})
	require.NoError(t, img.Header().Append(
		fitsio.Card{Name: "BSCALE", Value: 0.5},
		fitsio.Card{Name: "BZERO", Value: 10.0},
		fitsio.Card{Name: "BLANK", Value: -1},
		fitsio.Card{Name: "BUNIT", Value: "K"},
		fitsio.Card{Name: "CTYPE1", Value: "RA---SIN"},
		fitsio.Card{Name: "CTYPE2", Value: "DEC--SIN"},
	))
	require.NoError(t, img.Write([]int16{0, 2, -1, 4, 6, 8}))
	require.NoError(t, f.Write(img))
	require.NoError(t, img.Close())
	require.NoError(t, f.Close())

	c, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, c.Shape())
	assert.Equal(t, "K", c.Unit())
	testutil.RequireSliceNearlyEqual(t, c.Data(), []float64{10, 11, math.NaN(), 12, 13, 14}, 1e-12)
	assert.Equal(t, []bool{false, false, true, false, false, false}, c.Mask())

	names, err := c.AxesNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"DEC", "RA"}, names)
}

func TestWithHDU(t *testing.T) {
	c := testutil.Ramp(t, 2, 2)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, c))
	raw := buf.Bytes()

	got, err := Read(bytes.NewReader(raw), WithHDU(0))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3}, got.Data())

	_, err = Read(bytes.NewReader(raw), WithHDU(3))
	require.ErrorIs(t, err, ErrHDU)
}

func TestReadLogs(t *testing.T) {
	c := testutil.Ramp(t, 2, 2)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, c))

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := Read(&buf, WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "reading image HDU")
	assert.Contains(t, logs.String(), "bitpix=-64")
}

func TestSaveOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.fits")
	c := testutil.DeterministicNoise(t, 3, 1, 4, 3, 2)
	require.NoError(t, Save(path, c))

	got, err := Open(path)
	require.NoError(t, err)
	testutil.RequireCubeNearlyEqual(t, got, c, 0)

	_, err = Open(filepath.Join(t.TempDir(), "missing.fits"))
	require.Error(t, err)
}

func TestWriteEmptyCube(t *testing.T) {
	c := testutil.Full(t, 1)
	require.ErrorIs(t, Write(&bytes.Buffer{}, c), ErrEmptyCube)
}
