package fitscube

import (
	"strings"

	"github.com/astrogo/fitsio"
)

// header adapts a fitsio header to wcs.Header.
type header struct {
	h *fitsio.Header
}

func (h header) Float(key string) (float64, bool) {
	card := h.h.Get(key)
	if card == nil {
		return 0, false
	}
	switch v := card.Value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case int32:
		return float64(v), true
	}
	return 0, false
}

func (h header) String(key string) (string, bool) {
	card := h.h.Get(key)
	if card == nil {
		return "", false
	}
	v, ok := card.Value.(string)
	return strings.TrimSpace(v), ok
}
