package graph

import (
	"log/slog"

	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-cube/internal/logging"
)

// Option configures plotting.
type Option func(*config)

type config struct {
	width, height vg.Length
	title         string
	contour       bool
	velocities    bool
	restFreq      float64
	maxContours   int
	logger        *slog.Logger
}

func defaultConfig() config {
	return config{
		width:       16 * vg.Centimeter,
		height:      12 * vg.Centimeter,
		maxContours: 16,
		logger:      logging.Discard(),
	}
}

func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSize sets the canvas size used by Save and WriteTo.
func WithSize(width, height vg.Length) Option {
	return func(c *config) {
		if width > 0 {
			c.width = width
		}
		if height > 0 {
			c.height = height
		}
	}
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(c *config) {
		c.title = title
	}
}

// WithContour overlays contours at multiples of the image RMS.
func WithContour() Option {
	return func(c *config) {
		c.contour = true
	}
}

// WithMaxContours limits the number of contour levels.
func WithMaxContours(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxContours = n
		}
	}
}

// WithVelocities plots spectra against radio velocity instead of
// frequency. A zero restFreq uses the rest frequency of the cube.
func WithVelocities(restFreq float64) Option {
	return func(c *config) {
		c.velocities = true
		c.restFreq = restFreq
	}
}

// WithLogger sets the logger for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = logging.OrDiscard(l)
	}
}
