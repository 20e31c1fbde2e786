package analysis

import (
	"math"

	"github.com/cwbudde/algo-cube/cube"
)

// Stats holds summary statistics of the valid elements of a cube.
type Stats struct {
	Count    int // valid elements
	NaNs     int
	Masked   int
	Mean     float64
	RMS      float64
	Max      float64
	MaxPos   []int
	Min      float64
	MinPos   []int
	Peak     float64 // max(|max|, |min|)
	Range    float64 // max - min
	Energy   float64 // sum of squares
	Sum      float64
	Variance float64
	StdDev   float64
	Skewness float64
	Kurtosis float64 // excess
}

// Summary computes Stats in a single pass using Welford's online
// algorithm. Masked elements and NaN values are counted but otherwise
// skipped. Min and Max are NaN when no element is valid.
func Summary(c *cube.Cube) Stats {
	var (
		mean, m2, m3, m4 float64
		sumSq, sum       float64
		maxVal           = math.NaN()
		minVal           = math.NaN()
		maxOff, minOff   = -1, -1
		count            int
		s                Stats
	)

	for i, x := range c.Data() {
		switch {
		case c.IsMasked(i):
			s.Masked++
			continue
		case math.IsNaN(x):
			s.NaNs++
			continue
		}

		ni := float64(count + 1)
		delta := x - mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(count)

		// M4 before M3 before M2.
		m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*(float64(count)-1) - 3*deltaN*m2
		m2 += term1
		mean += deltaN

		sumSq += x * x
		sum += x

		if count == 0 || x > maxVal {
			maxVal, maxOff = x, i
		}
		if count == 0 || x < minVal {
			minVal, minOff = x, i
		}
		count++
	}

	s.Count = count
	s.Max, s.Min = maxVal, minVal
	if count == 0 {
		return s
	}

	nf := float64(count)
	s.Mean = mean
	s.Sum = sum
	s.Energy = sumSq
	s.RMS = math.Sqrt(sumSq / nf)
	s.MaxPos = c.Index(maxOff)
	s.MinPos = c.Index(minOff)
	s.Peak = math.Max(math.Abs(maxVal), math.Abs(minVal))
	s.Range = maxVal - minVal
	s.Variance = m2 / nf
	s.StdDev = math.Sqrt(s.Variance)
	if s.Variance > 0 {
		s.Skewness = (m3 / nf) / (s.Variance * s.StdDev)
		s.Kurtosis = (m4/nf)/(s.Variance*s.Variance) - 3
	}
	return s
}
