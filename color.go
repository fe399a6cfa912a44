package svgraster

import (
	"encoding/hex"
	"image/color"
	"strings"
)

// ParseHexColor decodes an RRGGBB string, with one optional leading #,
// into an opaque color. The digits are case-insensitive. There is no
// alpha component: background fills are always fully opaque.
func ParseHexColor(s string) (color.NRGBA, error) {
	trimmed := strings.TrimPrefix(s, "#")

	if len(trimmed) != 6 {
		return color.NRGBA{}, Errorf(KindInvalidColor, "background",
			"invalid hex color %q: must be 6 characters (RRGGBB), got %d", s, len(trimmed))
	}

	rgb, err := hex.DecodeString(trimmed)
	if err != nil {
		return color.NRGBA{}, Errorf(KindInvalidColor, "background",
			"invalid hex color %q: %v", s, err)
	}

	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xFF}, nil
}
