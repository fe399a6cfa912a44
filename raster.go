package svgraster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/rasterx"
)

// maxSurfacePixels caps the pixel surface at 64M pixels (256MB RGBA8)
// so a hostile width/height pair cannot exhaust memory.
const maxSurfacePixels = 1 << 26

// Rasterize renders the document into a freshly allocated RGBA surface
// of the given size. When background is non-nil the surface is filled
// with it before drawing, so vector content composites over an opaque
// fill; when nil the surface stays fully transparent. The document is
// scaled independently in X and Y to cover the full surface, with no
// centering or letterboxing; content outside the surface is clipped.
//
// Rendering itself does not fail: malformed geometry degrades to
// partial or empty output per the rasterizer's own contract. The only
// failure mode is a surface that cannot be allocated.
func Rasterize(doc *Document, width, height int, background *color.NRGBA) (*image.RGBA, error) {
	if width < 1 || height < 1 {
		return nil, Errorf(KindSurfaceAllocation, "rasterize",
			"cannot allocate %dx%d surface", width, height)
	}
	// Division instead of width*height, which can wrap around for huge
	// dimensions and slip past the guard.
	if width > maxSurfacePixels || height > maxSurfacePixels/width {
		return nil, Errorf(KindSurfaceAllocation, "rasterize",
			"%dx%d surface exceeds the %d pixel limit", width, height, maxSurfacePixels)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))

	if background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(*background), image.Point{}, draw.Src)
	}

	// SetTarget maps the viewBox onto the full surface, scaling each
	// axis by output/intrinsic.
	doc.icon.SetTarget(0, 0, float64(width), float64(height))

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	dasher := rasterx.NewDasher(width, height, scanner)
	doc.icon.Draw(dasher, 1.0)

	return img, nil
}
