package fitscube

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"slices"

	"github.com/astrogo/fitsio"

	"github.com/cwbudde/algo-cube/cube"
	"github.com/cwbudde/algo-cube/wcs"
)

// Open reads the cube stored in the FITS file at path.
func Open(path string, opts ...Option) (*cube.Cube, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fitscube: %w", err)
	}
	defer f.Close()

	c, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Read decodes a cube from a FITS stream.
func Read(r io.Reader, opts ...Option) (*cube.Cube, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	f, err := fitsio.Open(r)
	if err != nil {
		return nil, fmt.Errorf("fitscube: %w", err)
	}
	defer f.Close()

	img, index, err := selectImage(f, cfg.hdu)
	if err != nil {
		return nil, err
	}
	hdr := img.Header()
	cfg.logger.Debug("reading image HDU",
		"hdu", index, "bitpix", hdr.Bitpix(), "axes", hdr.Axes())

	return decode(img)
}

func selectImage(f *fitsio.File, index int) (fitsio.Image, int, error) {
	hdus := f.HDUs()
	if index >= 0 {
		if index >= len(hdus) {
			return nil, 0, fmt.Errorf("%w: index %d, file has %d HDUs", ErrHDU, index, len(hdus))
		}
		img, ok := hdus[index].(fitsio.Image)
		if !ok {
			return nil, 0, fmt.Errorf("%w: HDU %d is not an image", ErrHDU, index)
		}
		return img, index, nil
	}
	for i, hdu := range hdus {
		img, ok := hdu.(fitsio.Image)
		if ok && len(img.Header().Axes()) > 0 {
			return img, i, nil
		}
	}
	return nil, 0, ErrNoImage
}

func decode(img fitsio.Image) (*cube.Cube, error) {
	hdr := img.Header()
	axes := hdr.Axes()
	if len(axes) == 0 {
		return nil, ErrNoImage
	}

	shape := make([]int, len(axes))
	n := 1
	for i, a := range axes {
		shape[len(axes)-1-i] = a
		n *= a
	}

	h := header{h: hdr}
	bscale, ok := h.Float("BSCALE")
	if !ok {
		bscale = 1
	}
	bzero, _ := h.Float("BZERO")
	blank, hasBlank := h.Float("BLANK")

	bitpix := hdr.Bitpix()
	size := bitpix / 8
	if size < 0 {
		size = -size
	}
	raw := img.Raw()
	if len(raw) < n*size {
		return nil, fmt.Errorf("%w: %d bytes for %d values of BITPIX %d", ErrTruncated, len(raw), n, bitpix)
	}

	data := make([]float64, n)
	var mask []bool
	for i := range data {
		b := raw[i*size : (i+1)*size]
		var v float64
		integer := true
		switch bitpix {
		case 8:
			v = float64(b[0])
		case 16:
			v = float64(int16(binary.BigEndian.Uint16(b)))
		case 32:
			v = float64(int32(binary.BigEndian.Uint32(b)))
		case 64:
			v = float64(int64(binary.BigEndian.Uint64(b)))
		case -32:
			v = float64(math.Float32frombits(binary.BigEndian.Uint32(b)))
			integer = false
		case -64:
			v = math.Float64frombits(binary.BigEndian.Uint64(b))
			integer = false
		default:
			return nil, fmt.Errorf("%w: %d", ErrBitpix, bitpix)
		}

		if (integer && hasBlank && v == blank) || math.IsNaN(v) {
			if mask == nil {
				mask = make([]bool, n)
			}
			mask[i] = true
			data[i] = math.NaN()
			continue
		}
		data[i] = bzero + bscale*v
	}

	c, err := cube.FromData(data, shape...)
	if err != nil {
		return nil, fmt.Errorf("fitscube: %w", err)
	}
	if err := c.SetMask(mask); err != nil {
		return nil, fmt.Errorf("fitscube: %w", err)
	}
	if unit, ok := h.String("BUNIT"); ok {
		c.SetUnit(unit)
	}

	w, err := wcs.FromHeader(h, len(axes))
	if err != nil {
		return nil, fmt.Errorf("fitscube: %w", err)
	}
	if err := c.SetWCS(w); err != nil {
		return nil, fmt.Errorf("fitscube: %w", err)
	}
	return c, nil
}

// Save writes c to a new FITS file at path.
func Save(path string, c *cube.Cube) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("fitscube: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("fitscube: %w", cerr)
		}
	}()
	return Write(f, c)
}

// Write encodes c as a single BITPIX -64 primary image.
func Write(w io.Writer, c *cube.Cube) error {
	if c.NDim() == 0 {
		return ErrEmptyCube
	}

	shape := c.Shape()
	axes := slices.Clone(shape)
	slices.Reverse(axes)

	data := slices.Clone(c.Data())
	for i := range data {
		if c.IsMasked(i) {
			data[i] = math.NaN()
		}
	}

	f, err := fitsio.Create(w)
	if err != nil {
		return fmt.Errorf("fitscube: %w", err)
	}

	img := fitsio.NewImage(-64, axes)
	defer img.Close()

	if err := img.Header().Append(cards(c)...); err != nil {
		return fmt.Errorf("fitscube: header: %w", err)
	}
	if err := img.Write(data); err != nil {
		return fmt.Errorf("fitscube: image data: %w", err)
	}
	if err := f.Write(img); err != nil {
		return fmt.Errorf("fitscube: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("fitscube: %w", err)
	}
	return nil
}

func cards(c *cube.Cube) []fitsio.Card {
	var out []fitsio.Card
	if c.Unit() != "" {
		out = append(out, fitsio.Card{Name: "BUNIT", Value: c.Unit()})
	}
	if w := c.WCS(); w != nil {
		for _, card := range w.Cards() {
			if s, ok := card.Value.(string); ok && s == "" {
				continue
			}
			out = append(out, fitsio.Card{Name: card.Key, Value: card.Value})
		}
	}
	return out
}
