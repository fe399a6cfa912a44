package svgraster

import (
	"fmt"
	"strings"

	"github.com/srwiley/oksvg"
)

// Document is a parsed SVG scene plus its intrinsic size. It is created
// once per conversion and consumed by Rasterize.
type Document struct {
	icon *oksvg.SvgIcon
}

// ParseDocument parses SVG markup into a render tree. The intrinsic
// size comes from the document's viewBox, or from its width/height
// attributes when no viewBox is declared; a document declaring neither
// is rejected because the pipeline cannot derive output dimensions
// from it.
func ParseDocument(svg string) (*Document, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, NewError(KindParse, "parse", fmt.Errorf("failed to parse SVG: %w", err))
	}

	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, Errorf(KindParse, "parse",
			"SVG declares no intrinsic size (viewBox %gx%g)", icon.ViewBox.W, icon.ViewBox.H)
	}

	return &Document{icon: icon}, nil
}

// Width returns the intrinsic width of the document. Strictly positive.
func (d *Document) Width() float64 {
	return d.icon.ViewBox.W
}

// Height returns the intrinsic height of the document. Strictly positive.
func (d *Document) Height() float64 {
	return d.icon.ViewBox.H
}
