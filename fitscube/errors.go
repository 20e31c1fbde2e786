package fitscube

import "errors"

var (
	// ErrNoImage indicates a FITS file without an image HDU holding data.
	ErrNoImage = errors.New("fitscube: no image data")
	// ErrHDU indicates an HDU index outside the file or a non-image HDU.
	ErrHDU = errors.New("fitscube: invalid HDU")
	// ErrBitpix indicates an unsupported BITPIX value.
	ErrBitpix = errors.New("fitscube: unsupported BITPIX")
	// ErrTruncated indicates image data shorter than its axes require.
	ErrTruncated = errors.New("fitscube: truncated image data")
	// ErrEmptyCube indicates a cube without axes, which FITS cannot store as an image.
	ErrEmptyCube = errors.New("fitscube: cube has no axes")
)
