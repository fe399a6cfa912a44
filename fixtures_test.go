package svgraster

import (
	"bytes"

	svg "github.com/ajstarks/svgo"
)

// rectSVG builds an SVG of the given size fully covered by a rect with
// the given fill style (e.g. "fill:#ff0000").
func rectSVG(width, height int, fill string) string {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, fill)
	canvas.End()
	return buf.String()
}

// emptySVG builds an SVG of the given size with no content, so every
// rendered pixel stays at the background fill.
func emptySVG(width, height int) string {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(width, height)
	canvas.End()
	return buf.String()
}
