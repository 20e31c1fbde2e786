package slab

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name   string
		shape  []int
		vector []int
		want   []int
	}{
		{name: "inside", shape: []int{10, 10}, vector: []int{3, 7}, want: []int{3, 7}},
		{name: "below", shape: []int{10, 10}, vector: []int{-1, -20}, want: []int{0, 0}},
		{name: "above", shape: []int{10, 5}, vector: []int{11, 50}, want: []int{10, 5}},
		{name: "mixed axes", shape: []int{4, 8, 6}, vector: []int{-3, 9, 2}, want: []int{0, 8, 2}},
		{name: "boundaries kept", shape: []int{4, 8}, vector: []int{0, 8}, want: []int{0, 8}},
		{name: "zero extent", shape: []int{0, 3}, vector: []int{2, -1}, want: []int{0, 0}},
		{name: "no axes", shape: []int{}, vector: []int{}, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Clamp(tt.shape, tt.vector)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClampDoesNotModifyInput(t *testing.T) {
	vector := []int{-5, 50}
	_, err := Clamp([]int{10, 10}, vector)
	require.NoError(t, err)
	assert.Equal(t, []int{-5, 50}, vector)
}

func TestClampErrors(t *testing.T) {
	_, err := Clamp([]int{10, 10}, []int{1})
	require.ErrorIs(t, err, ErrShapeMismatch)

	_, err = Clamp([]int{10, -1}, []int{1, 1})
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestClampProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 500; iter++ {
		ndim := 1 + rng.Intn(4)
		shape := make([]int, ndim)
		vector := make([]int, ndim)
		for i := range shape {
			shape[i] = rng.Intn(20)
			vector[i] = rng.Intn(60) - 30
		}

		got, err := Clamp(shape, vector)
		require.NoError(t, err)
		for i := range got {
			require.GreaterOrEqual(t, got[i], 0)
			require.LessOrEqual(t, got[i], shape[i])
			if vector[i] >= 0 && vector[i] <= shape[i] {
				require.Equal(t, vector[i], got[i], "valid component %d must be kept", i)
			}
		}
	}
}

func TestBuildFullExtent(t *testing.T) {
	s, err := Build([]int{3, 4, 5}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Slab{{0, 3}, {0, 4}, {0, 5}}, s)
	assert.Equal(t, []int{3, 4, 5}, s.Shape())
	assert.Equal(t, 60, s.Size())
	assert.False(t, s.Empty())
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name  string
		shape []int
		lower []int
		upper []int
		want  Slab
	}{
		{
			name:  "inside",
			shape: []int{10, 10},
			lower: []int{2, 3},
			upper: []int{5, 8},
			want:  Slab{{2, 5}, {3, 8}},
		},
		{
			name:  "clamped both sides",
			shape: []int{10, 10},
			lower: []int{-2, 3},
			upper: []int{4, 12},
			want:  Slab{{0, 4}, {3, 10}},
		},
		{
			name:  "lower only",
			shape: []int{6, 6},
			lower: []int{1, 2},
			want:  Slab{{1, 6}, {2, 6}},
		},
		{
			name:  "upper only",
			shape: []int{6, 6},
			upper: []int{3, 9},
			want:  Slab{{0, 3}, {0, 6}},
		},
		{
			name:  "degenerate kept",
			shape: []int{10},
			lower: []int{7},
			upper: []int{2},
			want:  Slab{{7, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.shape, tt.lower, tt.upper)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Fits(tt.shape))
		})
	}
}

func TestBuildDegenerateIsEmpty(t *testing.T) {
	s, err := Build([]int{10, 10}, []int{7, 0}, []int{2, 10})
	require.NoError(t, err)
	assert.True(t, s.Empty())
	assert.Equal(t, []int{0, 10}, s.Shape())
	assert.Equal(t, 0, s.Size())
}

func TestBuildErrors(t *testing.T) {
	_, err := Build([]int{10, 10}, []int{1}, nil)
	require.ErrorIs(t, err, ErrShapeMismatch)

	_, err = Build([]int{10, 10}, nil, []int{1, 2, 3})
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestMatchScenarios(t *testing.T) {
	tests := []struct {
		name   string
		shapeA []int
		shapeB []int
		lower  []int
		upper  []int
		wantA  Slab
		wantB  Slab
	}{
		{
			name:   "overhang below origin",
			shapeA: []int{10, 10},
			shapeB: []int{4, 4},
			lower:  []int{-2, -2},
			upper:  []int{2, 2},
			wantA:  Slab{{0, 2}, {0, 2}},
			wantB:  Slab{{2, 4}, {2, 4}},
		},
		{
			name:   "overhang past far edge",
			shapeA: []int{10, 10},
			shapeB: []int{4, 4},
			lower:  []int{8, 8},
			upper:  []int{12, 12},
			wantA:  Slab{{8, 10}, {8, 10}},
			wantB:  Slab{{0, 2}, {0, 2}},
		},
		{
			name:   "interior",
			shapeA: []int{10, 10},
			shapeB: []int{4, 4},
			lower:  []int{3, 5},
			upper:  []int{7, 9},
			wantA:  Slab{{3, 7}, {5, 9}},
			wantB:  Slab{{0, 4}, {0, 4}},
		},
		{
			name:   "mixed corners",
			shapeA: []int{10, 10},
			shapeB: []int{4, 4},
			lower:  []int{-1, 7},
			upper:  []int{3, 11},
			wantA:  Slab{{0, 3}, {7, 10}},
			wantB:  Slab{{1, 4}, {0, 3}},
		},
		{
			name:   "equal shapes full extent",
			shapeA: []int{5, 6, 7},
			shapeB: []int{5, 6, 7},
			lower:  []int{0, 0, 0},
			upper:  []int{5, 6, 7},
			wantA:  Slab{{0, 5}, {0, 6}, {0, 7}},
			wantB:  Slab{{0, 5}, {0, 6}, {0, 7}},
		},
		{
			name:   "patch larger than cube",
			shapeA: []int{3},
			shapeB: []int{5},
			lower:  []int{-1},
			upper:  []int{4},
			wantA:  Slab{{0, 3}},
			wantB:  Slab{{1, 4}},
		},
		{
			name:   "request longer than patch",
			shapeA: []int{10},
			shapeB: []int{4},
			lower:  []int{3},
			upper:  []int{9},
			wantA:  Slab{{3, 7}},
			wantB:  Slab{{0, 4}},
		},
		{
			name:   "entirely outside",
			shapeA: []int{10, 10},
			shapeB: []int{4, 4},
			lower:  []int{20, 2},
			upper:  []int{24, 6},
			wantA:  Slab{{10, 10}, {2, 6}},
			wantB:  Slab{{0, 0}, {0, 4}},
		},
		{
			name:   "entirely below",
			shapeA: []int{10},
			shapeB: []int{4},
			lower:  []int{-8},
			upper:  []int{-4},
			wantA:  Slab{{0, 0}},
			wantB:  Slab{{4, 4}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, err := Match(tt.shapeA, tt.shapeB, tt.lower, tt.upper)
			require.NoError(t, err)
			assert.Equal(t, tt.wantA, a)
			assert.Equal(t, tt.wantB, b)
			assert.Equal(t, a.Shape(), b.Shape())
		})
	}
}

func TestMatchDefaults(t *testing.T) {
	a, b, err := Match([]int{4, 4}, []int{4, 4}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Slab{{0, 4}, {0, 4}}, a)
	assert.Equal(t, Slab{{0, 4}, {0, 4}}, b)
}

func TestMatchDegenerateRequest(t *testing.T) {
	a, b, err := Match([]int{10}, []int{4}, []int{6}, []int{2})
	require.NoError(t, err)
	assert.True(t, a.Empty())
	assert.True(t, b.Empty())
	assert.True(t, a.Fits([]int{10}))
	assert.True(t, b.Fits([]int{4}))
}

func TestMatchErrors(t *testing.T) {
	_, _, err := Match([]int{10, 10}, []int{4}, nil, nil)
	require.ErrorIs(t, err, ErrDimMismatch)

	_, _, err = Match([]int{10, 10}, []int{4, 4}, []int{0}, []int{4, 4})
	require.ErrorIs(t, err, ErrShapeMismatch)

	_, _, err = Match([]int{10, 10}, []int{4, -4}, nil, nil)
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestMatchAlwaysAligned(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 2000; iter++ {
		ndim := 1 + rng.Intn(3)
		shapeA := make([]int, ndim)
		shapeB := make([]int, ndim)
		lower := make([]int, ndim)
		upper := make([]int, ndim)
		for i := 0; i < ndim; i++ {
			shapeA[i] = rng.Intn(12)
			shapeB[i] = rng.Intn(12)
			lower[i] = rng.Intn(30) - 15
			upper[i] = rng.Intn(30) - 15
		}

		a, b, err := Match(shapeA, shapeB, lower, upper)
		require.NoError(t, err)
		require.True(t, a.Fits(shapeA), "slab %v outside %v", a, shapeA)
		require.True(t, b.Fits(shapeB), "slab %v outside %v", b, shapeB)
		require.Equal(t, a.Shape(), b.Shape(), "shapeA=%v shapeB=%v lower=%v upper=%v", shapeA, shapeB, lower, upper)
	}
}

func TestCoords(t *testing.T) {
	assert.Equal(t, []int{1, -2, 0, 7}, Coords([]float64{1.9, -2.7, 0.2, 7}))
	assert.Nil(t, Coords(nil))
}

func TestSlabString(t *testing.T) {
	assert.Equal(t, "[0:2, 3:10]", Slab{{0, 2}, {3, 10}}.String())
	assert.Equal(t, []int{0, 3}, Slab{{0, 2}, {3, 10}}.Lower())
	assert.Equal(t, []int{2, 10}, Slab{{0, 2}, {3, 10}}.Upper())
}
