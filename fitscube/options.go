package fitscube

import (
	"log/slog"

	"github.com/cwbudde/algo-cube/internal/logging"
)

// Option configures reading.
type Option func(*config)

type config struct {
	hdu    int // -1 selects the first image with data
	logger *slog.Logger
}

func defaultConfig() config {
	return config{
		hdu:    -1,
		logger: logging.Discard(),
	}
}

// WithHDU reads the HDU at index i (0 is the primary HDU) instead of the
// first image HDU holding data.
func WithHDU(i int) Option {
	return func(c *config) {
		c.hdu = i
	}
}

// WithLogger sets the logger for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = logging.OrDiscard(l)
	}
}
