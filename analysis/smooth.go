package analysis

import (
	"fmt"
	"math"
	"slices"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-cube/cube"
)

// kernelWidth is the kernel half width in units of sigma.
const kernelWidth = 4

// Smooth convolves every line of c along axis with a normalized Gaussian
// of standard deviation sigma (in pixels). The output has the shape, mask,
// unit and WCS of c. Missing elements count as zero and the data beyond
// the cube edges is taken to be zero.
func Smooth(c *cube.Cube, axis int, sigma float64) (*cube.Cube, error) {
	if axis < 0 || axis >= c.NDim() {
		return nil, fmt.Errorf("%w: %d for %d-dimensional cube", ErrInvalidAxis, axis, c.NDim())
	}
	if !(sigma > 0) {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidSigma, sigma)
	}

	src, err := zeroMissing(c, nil)
	if err != nil {
		return nil, err
	}
	out := c.Like()
	if m := c.Mask(); m != nil {
		_ = out.SetMask(slices.Clone(m))
	}

	shape := c.Shape()
	length := shape[axis]
	if length == 0 || c.Size() == 0 {
		return out, nil
	}

	sm, err := newSmoother(gaussKernel(sigma), length)
	if err != nil {
		return nil, err
	}

	stride := c.Strides()[axis]
	outer := c.Size() / (length * stride)
	line := make([]float64, length)
	in, dst := src.Data(), out.Data()
	for o := 0; o < outer; o++ {
		for inner := 0; inner < stride; inner++ {
			base := o*length*stride + inner
			for k := range line {
				line[k] = in[base+k*stride]
			}
			if err := sm.process(line); err != nil {
				return nil, err
			}
			for k, v := range line {
				dst[base+k*stride] = v
			}
		}
	}
	return out, nil
}

// gaussKernel returns a Gaussian of odd length normalized to unit sum.
func gaussKernel(sigma float64) []float64 {
	half := int(math.Ceil(kernelWidth * sigma))
	k := make([]float64, 2*half+1)
	for i := range k {
		x := float64(i - half)
		k[i] = mathExp(-x * x / (2 * sigma * sigma))
	}
	vecmath.ScaleBlockInPlace(k, 1/vecmath.Sum(k))
	return k
}

// smoother performs same-size linear convolution of fixed length lines
// with a centred kernel.
type smoother struct {
	plan      *algofft.Plan[complex128]
	kernelFFT []complex128
	buf       []complex128
	half      int
}

func newSmoother(kernel []float64, length int) (*smoother, error) {
	fftSize := nextPowerOf2(length + len(kernel) - 1)
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("analysis: failed to create FFT plan: %w", err)
	}

	sm := &smoother{
		plan:      plan,
		kernelFFT: make([]complex128, fftSize),
		buf:       make([]complex128, fftSize),
		half:      len(kernel) / 2,
	}
	padded := make([]complex128, fftSize)
	for i, v := range kernel {
		padded[i] = complex(v, 0)
	}
	if err := plan.Forward(sm.kernelFFT, padded); err != nil {
		return nil, fmt.Errorf("analysis: failed to compute kernel FFT: %w", err)
	}
	return sm, nil
}

// process replaces line with its convolution, trimmed to the input length.
func (sm *smoother) process(line []float64) error {
	for i := range sm.buf {
		sm.buf[i] = 0
	}
	for i, v := range line {
		sm.buf[i] = complex(v, 0)
	}
	if err := sm.plan.Forward(sm.buf, sm.buf); err != nil {
		return fmt.Errorf("analysis: forward FFT failed: %w", err)
	}
	for i := range sm.buf {
		sm.buf[i] *= sm.kernelFFT[i]
	}
	if err := sm.plan.Inverse(sm.buf, sm.buf); err != nil {
		return fmt.Errorf("analysis: inverse FFT failed: %w", err)
	}
	for i := range line {
		line[i] = real(sm.buf[i+sm.half])
	}
	return nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
