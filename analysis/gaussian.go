package analysis

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-cube/cube"
	"github.com/cwbudde/algo-cube/slab"
)

// IndexFeatures returns the index mesh of the slab [lower, upper) of an
// array with the given shape in features format: a dim x n matrix whose
// column j holds the absolute index of the j-th element of the slab in
// row-major order. Rows are in reversed axis order, so row 0 holds the
// index along the last (fastest) axis.
func IndexFeatures(shape, lower, upper []int) (*mat.Dense, error) {
	s, err := slab.Build(shape, lower, upper)
	if err != nil {
		return nil, fmt.Errorf("analysis: index features: %w", err)
	}
	dim, n := s.NDim(), s.Size()
	if dim == 0 || n == 0 {
		return nil, fmt.Errorf("%w: slab %v selects no elements", ErrEmpty, s)
	}

	feat := mat.NewDense(dim, n, nil)
	sub := s.Shape()
	idx := make([]int, dim)
	for j := 0; j < n; j++ {
		for ax := 0; ax < dim; ax++ {
			feat.Set(dim-1-ax, j, float64(s[ax].Start+idx[ax]))
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

// Gaussian evaluates an n-dimensional Gaussian centred at mu with the
// given precision (inverse covariance) matrix at every column of the
// dim x n feature matrix, and scales the result so that its maximum
// equals peak.
func Gaussian(mu []float64, precision, features *mat.Dense, peak float64) ([]float64, error) {
	dim, n := features.Dims()
	if len(mu) != dim {
		return nil, fmt.Errorf("%w: %d centre values for %d feature rows", ErrDimMismatch, len(mu), dim)
	}
	if r, c := precision.Dims(); r != dim || c != dim {
		return nil, fmt.Errorf("%w: %dx%d precision matrix for %d dimensions", ErrDimMismatch, r, c, dim)
	}

	centred := mat.DenseCopyOf(features)
	for i, m := range mu {
		row := centred.RawRowView(i)
		for j := range row {
			row[j] -= m
		}
	}

	var q mat.Dense
	q.Mul(precision, centred)
	q.MulElem(&q, centred)

	res := make([]float64, n)
	for i := 0; i < dim; i++ {
		vecmath.AddBlockInPlace(res, q.RawRowView(i))
	}

	maxVal := math.Inf(-1)
	for j, quad := range res {
		res[j] = mathExp(-quad / 2)
		maxVal = math.Max(maxVal, res[j])
	}
	if maxVal <= 0 || math.IsNaN(maxVal) || math.IsInf(maxVal, 0) {
		return nil, ErrVanishing
	}
	vecmath.ScaleBlockInPlace(res, peak/maxVal)
	return res, nil
}

// GaussianCube renders a Gaussian over the slab [lower, upper) of shape
// and returns it as a cube of the slab's shape. mu is given in (x, y, z)
// order like the rows of IndexFeatures.
func GaussianCube(shape, lower, upper []int, mu []float64, precision *mat.Dense, peak float64) (*cube.Cube, error) {
	s, err := slab.Build(shape, lower, upper)
	if err != nil {
		return nil, fmt.Errorf("analysis: gaussian cube: %w", err)
	}
	feat, err := IndexFeatures(shape, lower, upper)
	if err != nil {
		return nil, err
	}
	vals, err := Gaussian(mu, precision, feat, peak)
	if err != nil {
		return nil, err
	}
	return cube.FromData(vals, s.Shape()...)
}

// IsotropicPrecision returns the precision matrix of an isotropic
// Gaussian with standard deviation sigma in dim dimensions.
func IsotropicPrecision(dim int, sigma float64) *mat.Dense {
	p := mat.NewDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		p.Set(i, i, 1/(sigma*sigma))
	}
	return p
}
