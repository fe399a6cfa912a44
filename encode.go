package svgraster

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"github.com/HugoSmits86/nativewebp"
)

// Encode serializes the rendered RGBA surface into the target format.
// The surface is treated as read-only input. Per-format channel policy:
// PNG and WebP keep all four channels, JPEG drops alpha entirely, GIF
// reduces alpha to binary transparency through palettization.
func Encode(img *image.RGBA, format Format) ([]byte, error) {
	width := img.Rect.Dx()
	height := img.Rect.Dy()
	if img.Stride != width*4 || len(img.Pix) != height*img.Stride {
		return nil, Errorf(KindBufferShape, "encode",
			"pixel buffer is %d bytes, want %d for %dx%d RGBA", len(img.Pix), width*height*4, width, height)
	}

	var buf bytes.Buffer

	switch format {
	case FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, NewError(KindEncoding, "encode", fmt.Errorf("failed to encode PNG: %w", err))
		}

	case FormatJPG, FormatJPEG:
		flat, err := dropAlpha(img)
		if err != nil {
			return nil, err
		}
		if err := jpeg.Encode(&buf, flat, &jpeg.Options{Quality: JPEGQuality}); err != nil {
			return nil, NewError(KindEncoding, "encode", fmt.Errorf("failed to encode JPEG: %w", err))
		}

	case FormatGIF:
		if err := gif.Encode(&buf, img, nil); err != nil {
			return nil, NewError(KindEncoding, "encode", fmt.Errorf("failed to encode GIF: %w", err))
		}

	case FormatWebP:
		if err := nativewebp.Encode(&buf, img, nil); err != nil {
			return nil, NewError(KindEncoding, "encode", fmt.Errorf("failed to encode WebP: %w", err))
		}

	default:
		return nil, Errorf(KindUnsupportedFormat, "encode", "unsupported format: %s", format)
	}

	return buf.Bytes(), nil
}

// dropAlpha strips the alpha channel from the surface and returns a
// fully opaque image carrying only the RGB samples. JPEG has no alpha
// channel, so the fourth byte of every pixel is discarded rather than
// composited.
func dropAlpha(img *image.RGBA) (*image.NRGBA, error) {
	width := img.Rect.Dx()
	height := img.Rect.Dy()

	rgb := make([]byte, 0, len(img.Pix)/4*3)
	for i := 0; i < len(img.Pix); i += 4 {
		rgb = append(rgb, img.Pix[i], img.Pix[i+1], img.Pix[i+2])
	}
	if len(rgb) != width*height*3 {
		return nil, Errorf(KindBufferShape, "encode",
			"stripped buffer is %d bytes, want %d for %dx%d RGB", len(rgb), width*height*3, width, height)
	}

	flat := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, j := 0, 0; i < len(rgb); i, j = i+3, j+4 {
		copy(flat.Pix[j:j+3], rgb[i:i+3])
		flat.Pix[j+3] = 0xFF
	}
	return flat, nil
}
