package graph

import (
	"math"

	"github.com/cwbudde/algo-cube/analysis"
	"github.com/cwbudde/algo-cube/cube"
)

// grid adapts a 2D cube to plotter.GridXYZ. Columns run along the last
// axis. Missing elements read as the smallest valid value so they blend
// into the background.
type grid struct {
	rows, cols int
	z          []float64
	max        float64
}

func newGrid(c *cube.Cube) *grid {
	shape := c.Shape()
	g := &grid{rows: shape[0], cols: shape[1], z: make([]float64, c.Size())}

	lo, hi := math.Inf(1), math.Inf(-1)
	for i, v := range c.Data() {
		if c.Valid(i) && !math.IsInf(v, 0) {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	if math.IsInf(lo, 1) {
		lo, hi = 0, 0
	}
	g.max = hi

	for i, v := range c.Data() {
		if c.Valid(i) && !math.IsInf(v, 0) {
			g.z[i] = v
		} else {
			g.z[i] = lo
		}
	}
	return g
}

func (g *grid) Dims() (c, r int)   { return g.cols, g.rows }
func (g *grid) Z(c, r int) float64 { return g.z[r*g.cols+c] }
func (g *grid) X(c int) float64    { return float64(c) }
func (g *grid) Y(r int) float64    { return float64(r) }

// contourLevels returns rms, 2 rms, ... up to peak, thinned to at most n
// levels.
func contourLevels(c *cube.Cube, peak float64, n int) ([]float64, error) {
	rms, err := analysis.RMS(c, nil)
	if err != nil {
		return nil, err
	}
	if rms == 0 || peak < rms {
		return nil, nil
	}
	ratio := peak / rms
	count := int(math.Ceil(ratio)) - 1
	step := 1
	if count > n {
		step = (count + n - 1) / n
	}
	var levels []float64
	for k := 1; float64(k) < ratio; k += step {
		levels = append(levels, float64(k)*rms)
	}
	return levels, nil
}
