package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-cube/cube"
)

// RequireCubeNearlyEqual fails t if got and want differ in shape or if
// any element pair exceeds eps (absolute tolerance). NaNs compare equal.
func RequireCubeNearlyEqual(t testing.TB, got, want *cube.Cube, eps float64) {
	t.Helper()
	require.Equal(t, want.Shape(), got.Shape(), "shape mismatch")
	RequireSliceNearlyEqual(t, got.Data(), want.Data(), eps)
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps. NaNs compare equal.
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	require.Len(t, got, len(want), "length mismatch")
	for i := range got {
		if math.IsNaN(got[i]) && math.IsNaN(want[i]) {
			continue
		}
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element of c is NaN or Inf.
func RequireFinite(t testing.TB, c *cube.Cube) {
	t.Helper()
	for i, v := range c.Data() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %v: non-finite value %v", c.Index(i), v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
