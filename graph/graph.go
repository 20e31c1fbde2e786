// Package graph renders data cubes with gonum/plot.
//
// [Visualize] picks a plot by dimensionality: a line for 1D data, a heat
// map for images and a moment-0 map for 3D cubes. [Spectra] plots the
// spectrum summed over the spatial axes. The returned plots can be
// customised further before they are written with [Save] or [WriteTo].
package graph

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"

	"github.com/cwbudde/algo-cube/analysis"
	"github.com/cwbudde/algo-cube/cube"
	"github.com/cwbudde/algo-cube/wcs"
)

// Visualize returns the plot that suits the dimensionality of c.
func Visualize(c *cube.Cube, opts ...Option) (*plot.Plot, error) {
	cfg := newConfig(opts)
	switch c.NDim() {
	case 1:
		return Line(c, opts...)
	case 2:
		return Image(c, opts...)
	case 3:
		return Volume(c, opts...)
	}
	cfg.logger.Error("cannot visualize cube", "ndim", c.NDim())
	return nil, fmt.Errorf("%w: %d", ErrUnsupportedDims, c.NDim())
}

// Line plots 1D data. The x axis uses world coordinates when c has a WCS.
// Missing elements leave gaps.
func Line(c *cube.Cube, opts ...Option) (*plot.Plot, error) {
	cfg := newConfig(opts)
	if c.NDim() != 1 {
		return nil, fmt.Errorf("%w: line plot of %d-dimensional cube", ErrUnsupportedDims, c.NDim())
	}

	x := make([]float64, c.Size())
	for i := range x {
		x[i] = float64(i)
	}
	if w := c.WCS(); w != nil {
		ax, err := w.Axis(0)
		if err != nil {
			return nil, err
		}
		for i := range x {
			x[i] = ax.PixToWorld(float64(i))
		}
	}

	p := newPlot(cfg)
	p.X.Label.Text = axisLabel(c, 0, true)
	p.Y.Label.Text = valueLabel(c)
	if err := addLine(p, x, c); err != nil {
		return nil, err
	}
	return p, nil
}

// Image plots 2D data as a heat map, optionally overlaid with contours
// at 1, 2, ... times the RMS of the image.
func Image(c *cube.Cube, opts ...Option) (*plot.Plot, error) {
	cfg := newConfig(opts)
	if c.NDim() != 2 {
		return nil, fmt.Errorf("%w: image of %d-dimensional cube", ErrUnsupportedDims, c.NDim())
	}

	g := newGrid(c)
	p := newPlot(cfg)
	p.X.Label.Text = axisLabel(c, 1, false)
	p.Y.Label.Text = axisLabel(c, 0, false)

	hm := plotter.NewHeatMap(g, palette.Heat(64, 1))
	flat := hm.Max <= hm.Min
	if flat {
		hm.Max = hm.Min + 1
	}
	p.Add(hm)

	if cfg.contour && !flat {
		levels, err := contourLevels(c, g.max, cfg.maxContours)
		if err != nil {
			return nil, err
		}
		if len(levels) > 0 {
			pal := palette.Rainbow(max(len(levels), 2), palette.Blue, palette.Cyan, 1, 1, 1)
			p.Add(plotter.NewContour(g, levels, pal))
		}
		cfg.logger.Debug("contour levels", "count", len(levels))
	}
	return p, nil
}

// Volume renders a 3D cube as the integral along its spectral axis, or
// along axis 0 when the WCS has no spectral axis. The cube must carry a
// WCS and a unit.
func Volume(c *cube.Cube, opts ...Option) (*plot.Plot, error) {
	cfg := newConfig(opts)
	if c.NDim() != 3 {
		return nil, fmt.Errorf("%w: volume of %d-dimensional cube", ErrUnsupportedDims, c.NDim())
	}
	if c.WCS() == nil || c.Unit() == "" {
		cfg.logger.Error("volume rendering needs WCS and unit",
			"wcs", c.WCS() != nil, "unit", c.Unit())
		return nil, ErrMissingMetadata
	}

	axis, err := c.WCS().SpectralAxis()
	if err != nil {
		axis = 0
	}
	m0, err := analysis.Integrate(c, nil, axis)
	if err != nil {
		return nil, err
	}
	cfg.logger.Debug("integrated cube", "axis", axis, "shape", m0.Shape())

	if cfg.title == "" {
		opts = append(opts[:len(opts):len(opts)], WithTitle("Integrated intensity"))
	}
	return Image(m0, opts...)
}

// Spectra plots the sum of c over every axis except the spectral one
// against frequency in Hz, or against radio velocity in km/s with
// WithVelocities. Without WCS only 1D data is accepted and plotted
// against channel index.
func Spectra(c *cube.Cube, opts ...Option) (*plot.Plot, error) {
	cfg := newConfig(opts)
	w := c.WCS()
	if w == nil {
		if c.NDim() != 1 {
			cfg.logger.Error("spectra of a cube without WCS need 1D data", "ndim", c.NDim())
			return nil, fmt.Errorf("%w: %d-dimensional cube without WCS", ErrUnsupportedDims, c.NDim())
		}
		return Line(c, opts...)
	}

	axis, err := w.SpectralAxis()
	if err != nil {
		return nil, fmt.Errorf("graph: %w", err)
	}
	var others []int
	for i := 0; i < c.NDim(); i++ {
		if i != axis {
			others = append(others, i)
		}
	}
	spec := c
	if len(others) > 0 {
		if spec, err = analysis.Integrate(c, nil, others...); err != nil {
			return nil, err
		}
	}

	n := c.Shape()[axis]
	x, err := w.Frequencies(wcs.Channels(n))
	if err != nil {
		return nil, fmt.Errorf("graph: %w", err)
	}
	xlabel := "Frequency [Hz]"
	if cfg.velocities {
		if x, err = w.SpectralVelocities(x, cfg.restFreq); err != nil {
			return nil, fmt.Errorf("graph: %w", err)
		}
		xlabel = "Velocity [km/s]"
	}

	if cfg.title == "" {
		cfg.title = "Spectrum"
	}
	p := newPlot(cfg)
	p.X.Label.Text = xlabel
	p.Y.Label.Text = valueLabel(c)
	if err := addLine(p, x, spec); err != nil {
		return nil, err
	}
	return p, nil
}

// Save writes p to path. The format follows the file extension.
func Save(p *plot.Plot, path string, opts ...Option) error {
	cfg := newConfig(opts)
	if err := p.Save(cfg.width, cfg.height, path); err != nil {
		return fmt.Errorf("graph: %w", err)
	}
	cfg.logger.Info("plot saved", "path", path)
	return nil
}

// WriteTo renders p in the given format ("png", "svg", "pdf", ...) to w.
func WriteTo(p *plot.Plot, w io.Writer, format string, opts ...Option) error {
	cfg := newConfig(opts)
	wt, err := p.WriterTo(cfg.width, cfg.height, format)
	if err != nil {
		return fmt.Errorf("graph: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("graph: %w", err)
	}
	return nil
}

func newPlot(cfg config) *plot.Plot {
	p := plot.New()
	p.Title.Text = cfg.title
	return p
}

// addLine adds y against x to p, split into segments at missing values.
func addLine(p *plot.Plot, x []float64, y *cube.Cube) error {
	var seg plotter.XYs
	flush := func() error {
		if len(seg) == 0 {
			return nil
		}
		l, err := plotter.NewLine(seg)
		if err != nil {
			return fmt.Errorf("graph: %w", err)
		}
		p.Add(l)
		seg = nil
		return nil
	}

	data := y.Data()
	for i, xv := range x {
		if !y.Valid(i) || math.IsInf(data[i], 0) {
			if err := flush(); err != nil {
				return err
			}
			continue
		}
		seg = append(seg, plotter.XY{X: xv, Y: data[i]})
	}
	return flush()
}

// axisLabel names a cube axis. World labels carry the axis unit and are
// used when the axis is plotted in world coordinates.
func axisLabel(c *cube.Cube, axis int, world bool) string {
	w := c.WCS()
	if w == nil {
		return fmt.Sprintf("axis %d [pixel]", axis)
	}
	ax, err := w.Axis(axis)
	if err != nil || ax.Name() == "" {
		return fmt.Sprintf("axis %d [pixel]", axis)
	}
	if !world {
		return ax.Name() + " [pixel]"
	}
	if ax.Unit == "" {
		return ax.Name()
	}
	return ax.Name() + " [" + ax.Unit + "]"
}

func valueLabel(c *cube.Cube) string {
	if c.Unit() == "" {
		return "value"
	}
	return c.Unit()
}
