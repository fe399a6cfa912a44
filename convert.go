// Package svgraster converts SVG documents into raster image formats.
//
// A conversion is a single synchronous pipeline: apply textual
// replacements, parse the SVG, resolve output dimensions from the
// requested size and the document's intrinsic size, render into an
// RGBA surface (over an opaque background for formats without alpha),
// and encode as PNG, JPEG, GIF or WebP. Conversions share no state, so
// callers may run any number of them concurrently.
package svgraster

import (
	"image/color"

	"github.com/flanksource/commons/logger"
)

// Convert runs the full pipeline and returns the encoded image bytes.
// Any stage failure short-circuits the pipeline and is returned as an
// *Error naming the failing stage; no partial output is ever returned.
func Convert(svgData string, opts Options) ([]byte, error) {
	format, err := NormalizeFormat(opts.Format)
	if err != nil {
		return nil, err
	}

	processed := Preprocess(svgData, opts.Replacements)

	doc, err := ParseDocument(processed)
	if err != nil {
		return nil, err
	}

	width, height := ResolveDimensions(opts.Width, opts.Height, doc.Width(), doc.Height())

	// PNG keeps the surface transparent; every other format composites
	// over an opaque background, caller-supplied or white.
	var background *color.NRGBA
	if !format.HasAlpha() {
		hexColor := opts.Background
		if hexColor == "" {
			hexColor = DefaultBackground
		}
		bg, err := ParseHexColor(hexColor)
		if err != nil {
			return nil, err
		}
		background = &bg
	}

	logger.Debugf("rendering %dx%d (intrinsic %gx%g) as %s", width, height, doc.Width(), doc.Height(), format)

	img, err := Rasterize(doc, width, height, background)
	if err != nil {
		return nil, err
	}

	return Encode(img, format)
}
