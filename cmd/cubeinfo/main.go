// Command cubeinfo prints summary statistics of FITS data cubes.
//
// Usage:
//
//	cubeinfo [flags] file.fits ...
//
// Files are loaded in parallel. Each row of the output table describes
// one file after the optional processing steps have been applied in
// order: smoothing, denoising and integration.
//
// Examples:
//
//	cubeinfo orion.fits
//	cubeinfo -denoise 3 -integrate orion.fits
//	cubeinfo -plot orion.png orion.fits
//	cubeinfo -spectra -velocities -plot spec.svg orion.fits
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/plot"

	"github.com/cwbudde/algo-cube/analysis"
	"github.com/cwbudde/algo-cube/cube"
	"github.com/cwbudde/algo-cube/fitscube"
	"github.com/cwbudde/algo-cube/graph"
	"github.com/cwbudde/algo-cube/internal/logging"
)

type options struct {
	denoise    float64
	integrate  bool
	smooth     float64
	plot       string
	spectra    bool
	velocities bool
	restFreq   float64
	contour    bool
	jobs       int
	verbosity  int
	logFormat  string
}

type report struct {
	path     string
	shape    []int
	unit     string
	stats    analysis.Stats
	rms      float64
	spectral string
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("cubeinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opt options
	fs.Float64Var(&opt.denoise, "denoise", 0, "zero values below `nsigma` times the RMS (0 disables)")
	fs.BoolVar(&opt.integrate, "integrate", false, "integrate along the spectral axis (axis 0 without WCS)")
	fs.Float64Var(&opt.smooth, "smooth", 0, "Gaussian smoothing `sigma` in channels along the spectral axis (0 disables)")
	fs.StringVar(&opt.plot, "plot", "", "write a plot to `file` (format from extension)")
	fs.BoolVar(&opt.spectra, "spectra", false, "plot the summed spectrum instead of the data")
	fs.BoolVar(&opt.velocities, "velocities", false, "plot spectra against radio velocity")
	fs.Float64Var(&opt.restFreq, "restfreq", 0, "rest frequency in Hz for velocities (0 uses the header)")
	fs.BoolVar(&opt.contour, "contour", false, "overlay RMS contours on image plots")
	fs.IntVar(&opt.jobs, "jobs", runtime.GOMAXPROCS(0), "number of files processed in parallel")
	fs.IntVar(&opt.verbosity, "v", 0, "log verbosity: 0 warn, 1 info, 2 debug")
	fs.StringVar(&opt.logFormat, "log-format", "text", "log format: text or json")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: cubeinfo [flags] file.fits ...\n\n")
		fmt.Fprintf(stderr, "Prints summary statistics of FITS data cubes.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  cubeinfo orion.fits\n")
		fmt.Fprintf(stderr, "  cubeinfo -denoise 3 -integrate orion.fits\n")
		fmt.Fprintf(stderr, "  cubeinfo -spectra -velocities -plot spec.svg orion.fits\n")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	files := fs.Args()
	if len(files) == 0 {
		fs.Usage()
		return errors.New("no input files")
	}
	if opt.jobs < 1 {
		opt.jobs = 1
	}

	logger, err := logging.New(logging.Config{
		Level:  logging.LevelFromVerbosity(opt.verbosity),
		Format: opt.logFormat,
		Output: stderr,
	})
	if err != nil {
		return err
	}

	reports := make([]report, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opt.jobs)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := inspect(path, plotPath(opt.plot, path, i, len(files)), opt, logger.With("file", path))
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return printReports(stdout, reports)
}

func inspect(path, plotFile string, opt options, logger *slog.Logger) (report, error) {
	c, err := fitscube.Open(path, fitscube.WithLogger(logger))
	if err != nil {
		return report{}, err
	}
	logger.Info("cube loaded", "shape", c.Shape(), "unit", c.Unit())

	spectral := -1
	if w := c.WCS(); w != nil {
		if axis, err := w.SpectralAxis(); err == nil {
			spectral = axis
		}
	}

	if opt.smooth > 0 && c.NDim() > 0 {
		axis := max(spectral, 0)
		if c, err = analysis.Smooth(c, axis, opt.smooth); err != nil {
			return report{}, fmt.Errorf("%s: %w", path, err)
		}
		logger.Debug("smoothed", "axis", axis, "sigma", opt.smooth)
	}

	if opt.denoise > 0 {
		level, err := analysis.Threshold(c, opt.denoise)
		if err != nil {
			return report{}, fmt.Errorf("%s: %w", path, err)
		}
		c = analysis.Denoise(c, level)
		logger.Debug("denoised", "threshold", level)
	}

	if opt.integrate && c.NDim() > 1 {
		axis := max(spectral, 0)
		if c, err = analysis.Integrate(c, nil, axis); err != nil {
			return report{}, fmt.Errorf("%s: %w", path, err)
		}
		logger.Debug("integrated", "axis", axis, "shape", c.Shape())
		spectral = -1
	}

	r := report{
		path:  path,
		shape: c.Shape(),
		unit:  c.Unit(),
		stats: analysis.Summary(c),
	}
	if r.rms, err = analysis.RMS(c, nil); err != nil {
		return report{}, fmt.Errorf("%s: %w", path, err)
	}
	if spectral >= 0 {
		r.spectral = fmt.Sprintf("%d (%d ch)", spectral, c.Shape()[spectral])
	}

	if plotFile != "" {
		if err := writePlot(c, plotFile, opt, logger); err != nil {
			return report{}, fmt.Errorf("%s: %w", path, err)
		}
	}
	return r, nil
}

func writePlot(c *cube.Cube, path string, opt options, logger *slog.Logger) error {
	opts := []graph.Option{
		graph.WithTitle(filepath.Base(path)),
		graph.WithLogger(logger),
	}
	if opt.contour {
		opts = append(opts, graph.WithContour())
	}
	if opt.velocities {
		opts = append(opts, graph.WithVelocities(opt.restFreq))
	}

	var (
		p   *plot.Plot
		err error
	)
	if opt.spectra {
		p, err = graph.Spectra(c, opts...)
	} else {
		p, err = graph.Visualize(c, opts...)
	}
	if err != nil {
		return err
	}
	return graph.Save(p, path, opts...)
}

// plotPath returns the plot file for the i-th of n inputs. With several
// inputs the file index and input name are appended to the plot name, so
// inputs that share a base name in different directories stay distinct.
func plotPath(name, input string, i, n int) string {
	if name == "" || n == 1 {
		return name
	}
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return fmt.Sprintf("%s-%d-%s%s", strings.TrimSuffix(name, ext), i, stem, ext)
}

func printReports(w io.Writer, reports []report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "File\tShape\tUnit\tMean\tRMS\tMin\tMax\tPeak\tNaNs\tSpectral\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "----\t-----\t----\t----\t---\t---\t---\t----\t----\t--------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	for _, r := range reports {
		unit := r.unit
		if unit == "" {
			unit = "-"
		}
		spectral := r.spectral
		if spectral == "" {
			spectral = "-"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%v\t%s\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\t%d\t%s\n",
			r.path,
			r.shape,
			unit,
			r.stats.Mean,
			r.rms,
			r.stats.Min,
			r.stats.Max,
			r.stats.Peak,
			r.stats.NaNs+r.stats.Masked,
			spectral,
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
