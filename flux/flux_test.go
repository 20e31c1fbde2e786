package flux

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-cube/internal/testutil"
	"github.com/cwbudde/algo-cube/slab"
)

func TestAddInterior(t *testing.T) {
	dst := testutil.Full(t, 0, 5, 5)
	patch := testutil.Full(t, 1, 2, 2)

	require.NoError(t, Add(dst, patch, []int{1, 2}))
	assert.Equal(t, []float64{
		0, 0, 0, 0, 0,
		0, 0, 1, 1, 0,
		0, 0, 1, 1, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
	}, dst.Data())
}

func TestAddAcrossEdges(t *testing.T) {
	tests := []struct {
		name  string
		lower []int
		want  []float64
	}{
		{
			name:  "below origin",
			lower: []int{-2, -2},
			want: []float64{
				11, 12, 0, 0,
				15, 16, 0, 0,
				0, 0, 0, 0,
				0, 0, 0, 0,
			},
		},
		{
			name:  "past far edge",
			lower: []int{2, 2},
			want: []float64{
				0, 0, 0, 0,
				0, 0, 0, 0,
				0, 0, 1, 2,
				0, 0, 5, 6,
			},
		},
		{
			name:  "mixed corner",
			lower: []int{-3, 3},
			want: []float64{
				0, 0, 0, 13,
				0, 0, 0, 0,
				0, 0, 0, 0,
				0, 0, 0, 0,
			},
		},
		{
			name:  "outside",
			lower: []int{4, 0},
			want:  make([]float64, 16),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := testutil.Full(t, 0, 4, 4)
			patch := testutil.Ramp(t, 4, 4)
			for i := range patch.Data() {
				patch.Data()[i]++
			}
			require.NoError(t, Add(dst, patch, tt.lower))
			assert.Equal(t, tt.want, dst.Data())
		})
	}
}

func TestAddScaledAndSubtract(t *testing.T) {
	dst := testutil.Full(t, 10, 3, 4)
	patch := testutil.Full(t, 2, 2, 2)

	require.NoError(t, AddScaled(dst, patch, []int{0, 0}, 0.5))
	assert.Equal(t, 11.0, dst.At(0, 0))
	assert.Equal(t, 10.0, dst.At(2, 3))

	require.NoError(t, Subtract(dst, patch, []int{0, 0}))
	assert.Equal(t, 9.0, dst.At(1, 1))
}

func TestAddMaskedPatch(t *testing.T) {
	dst := testutil.Full(t, 0, 2, 2)
	patch := testutil.Full(t, 3, 2, 2)
	require.NoError(t, patch.SetMask([]bool{false, true, false, false}))

	require.NoError(t, Add(dst, patch, []int{0, 0}))
	assert.Equal(t, []float64{3, 0, 3, 3}, dst.Data())
	assert.Equal(t, 3.0, patch.Data()[1], "patch must be unchanged")
}

func TestAddRegion(t *testing.T) {
	dst := testutil.Full(t, 0, 6)
	patch := testutil.FromData(t, []float64{1, 2, 3, 4}, 4)

	require.NoError(t, AddRegion(dst, patch, []int{-2}, []int{2}))
	assert.Equal(t, []float64{3, 4, 0, 0, 0, 0}, dst.Data())

	require.NoError(t, AddRegion(dst, patch, []int{4}, []int{8}))
	assert.Equal(t, []float64{3, 4, 0, 0, 1, 2}, dst.Data())
}

func TestAddErrors(t *testing.T) {
	dst := testutil.Full(t, 0, 4, 4)
	patch := testutil.Full(t, 1, 2)

	require.ErrorIs(t, Add(dst, patch, []int{0, 0}), ErrOffset)
	require.ErrorIs(t, Add(dst, patch, []int{0}), slab.ErrDimMismatch)
}

func TestOverlap(t *testing.T) {
	dst := testutil.Full(t, 0, 10, 10)
	patch := testutil.Full(t, 1, 4, 4)

	sd, sp, err := Overlap(dst, patch, []int{8, -2})
	require.NoError(t, err)
	assert.Equal(t, slab.Slab{{Start: 8, Stop: 10}, {Start: 0, Stop: 2}}, sd)
	assert.Equal(t, slab.Slab{{Start: 0, Stop: 2}, {Start: 2, Stop: 4}}, sp)

	_, _, err = Overlap(dst, patch, []int{1})
	require.ErrorIs(t, err, ErrOffset)
}

func TestAddConservesFlux(t *testing.T) {
	dst := testutil.Full(t, 0, 8, 16, 16)
	patch := testutil.GaussianBlob(t, 1, 2, []float64{2, 5, 5}, 5, 11, 11)

	total := 0.0
	for _, v := range patch.Data() {
		total += v
	}
	require.NoError(t, Add(dst, patch, []int{1, 2, 3}))

	sum := 0.0
	for _, v := range dst.Data() {
		sum += v
	}
	assert.InDelta(t, total, sum, 1e-9)
}
