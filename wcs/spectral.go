package wcs

import "fmt"

const spectralType = "FREQ"

// SpectralAxis returns the cube axis of the frequency axis.
func (w *WCS) SpectralAxis() (int, error) {
	for i := range w.Axes {
		if w.Axes[i].Name() == spectralType {
			return len(w.Axes) - 1 - i, nil
		}
	}
	return -1, ErrNoSpectralAxis
}

// Frequencies returns the frequency of the given channel indices.
func (w *WCS) Frequencies(channels []int) ([]float64, error) {
	axis, err := w.SpectralAxis()
	if err != nil {
		return nil, err
	}
	ax := w.Axes[len(w.Axes)-1-axis]

	out := make([]float64, len(channels))
	for i, ch := range channels {
		out[i] = ax.PixToWorld(float64(ch))
	}
	return out, nil
}

// Channels returns the indices 0..n-1, the channel axis of a cube with n
// spectral planes.
func Channels(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// SpectralVelocities converts frequencies to radio velocities in km/s.
// A zero restFreq falls back to the WCS rest frequency.
func (w *WCS) SpectralVelocities(freqs []float64, restFreq float64) ([]float64, error) {
	if restFreq == 0 {
		restFreq = w.RestFreq
	}
	if restFreq == 0 {
		return nil, ErrNoRestFrequency
	}
	return RadioVelocities(freqs, restFreq), nil
}

// ChannelVelocities returns the radio velocity of every channel of a cube
// with n spectral planes.
func (w *WCS) ChannelVelocities(n int, restFreq float64) ([]float64, error) {
	freqs, err := w.Frequencies(Channels(n))
	if err != nil {
		return nil, fmt.Errorf("wcs: channel velocities: %w", err)
	}
	return w.SpectralVelocities(freqs, restFreq)
}

// RadioVelocities applies the radio convention v = c (f0 - f) / f0.
func RadioVelocities(freqs []float64, restFreq float64) []float64 {
	out := make([]float64, len(freqs))
	for i, f := range freqs {
		out[i] = SpeedOfLight * (restFreq - f) / restFreq
	}
	return out
}
