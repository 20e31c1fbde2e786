package wcs

import (
	"fmt"
	"strconv"
)

// Header looks up FITS header values.
type Header interface {
	Float(key string) (float64, bool)
	String(key string) (string, bool)
}

// Card is a single FITS keyword and value.
type Card struct {
	Key   string
	Value any
}

// FromHeader reads a linear WCS with naxis axes from h. Missing keywords
// take their FITS defaults (CRPIX=0, CRVAL=0, CDELT=1).
func FromHeader(h Header, naxis int) (*WCS, error) {
	if naxis < 0 {
		return nil, fmt.Errorf("%w: naxis %d", ErrAxisCount, naxis)
	}

	w := &WCS{Axes: make([]Axis, naxis)}
	for i := range w.Axes {
		n := strconv.Itoa(i + 1)
		ax := Axis{Delta: 1}
		if v, ok := h.String("CTYPE" + n); ok {
			ax.Type = v
		}
		if v, ok := h.String("CUNIT" + n); ok {
			ax.Unit = v
		}
		if v, ok := h.Float("CRPIX" + n); ok {
			ax.RefPix = v
		}
		if v, ok := h.Float("CRVAL" + n); ok {
			ax.RefVal = v
		}
		if v, ok := h.Float("CDELT" + n); ok {
			ax.Delta = v
		}
		w.Axes[i] = ax
	}

	if v, ok := h.Float("RESTFRQ"); ok {
		w.RestFreq = v
	} else if v, ok := h.Float("RESTFREQ"); ok {
		w.RestFreq = v
	}
	return w, nil
}

// Cards returns the header cards that describe w.
func (w *WCS) Cards() []Card {
	cards := make([]Card, 0, 5*len(w.Axes)+1)
	for i, ax := range w.Axes {
		n := strconv.Itoa(i + 1)
		cards = append(cards,
			Card{Key: "CTYPE" + n, Value: ax.Type},
			Card{Key: "CUNIT" + n, Value: ax.Unit},
			Card{Key: "CRPIX" + n, Value: ax.RefPix},
			Card{Key: "CRVAL" + n, Value: ax.RefVal},
			Card{Key: "CDELT" + n, Value: ax.Delta},
		)
	}
	if w.RestFreq != 0 {
		cards = append(cards, Card{Key: "RESTFRQ", Value: w.RestFreq})
	}
	return cards
}
