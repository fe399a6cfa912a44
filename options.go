package svgraster

import (
	"strings"

	"github.com/samber/lo"
)

// Format identifies a supported output image format. The set is closed;
// anything outside it is rejected with KindUnsupportedFormat before any
// parsing or rendering work happens.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPG  Format = "jpg"
	FormatJPEG Format = "jpeg"
	FormatGIF  Format = "gif"
	FormatWebP Format = "webp"
)

// JPEGQuality is the fixed quality used for JPEG output (0-100).
const JPEGQuality = 90

// DefaultBackground is the opaque fill used for formats without alpha
// support when the caller supplies no background color.
const DefaultBackground = "FFFFFF"

// SupportedFormats returns the closed set of output formats.
func SupportedFormats() []Format {
	return []Format{FormatPNG, FormatJPG, FormatJPEG, FormatGIF, FormatWebP}
}

// NormalizeFormat case-folds a format string and validates it against
// the supported set. The normalized value is used both for the
// background-fill decision and for encoder dispatch.
func NormalizeFormat(format string) (Format, error) {
	f := Format(strings.ToLower(format))
	if !lo.Contains(SupportedFormats(), f) {
		return "", Errorf(KindUnsupportedFormat, "format", "unsupported format: %s", format)
	}
	return f, nil
}

// HasAlpha reports whether the format carries an alpha channel through
// encoding. Formats without alpha get an opaque background fill before
// rendering.
func (f Format) HasAlpha() bool {
	return f == FormatPNG
}

// Replacement is one literal search/replace pair applied to the SVG
// source before parsing.
type Replacement struct {
	Search  string `json:"search" yaml:"search"`
	Replace string `json:"replace" yaml:"replace"`
}

// Options holds the conversion parameters for a single request.
type Options struct {
	// Output format: png, jpg, jpeg, gif or webp (case-insensitive)
	Format string `json:"format" yaml:"format"`

	// Output width in pixels (0 = derive from the SVG)
	Width int `json:"width,omitempty" yaml:"width,omitempty"`

	// Output height in pixels (0 = derive from the SVG)
	Height int `json:"height,omitempty" yaml:"height,omitempty"`

	// Background color as 6 hex digits with optional # prefix.
	// Ignored for PNG output; defaults to white for other formats.
	Background string `json:"background,omitempty" yaml:"background,omitempty"`

	// Replacements are applied in order, each to the cumulative result
	// of the previous ones.
	Replacements []Replacement `json:"replacements,omitempty" yaml:"replacements,omitempty"`
}

// DefaultOptions returns options producing a PNG at the SVG's intrinsic
// size.
func DefaultOptions() Options {
	return Options{
		Format: string(FormatPNG),
	}
}
