package svgraster

import (
	"errors"
	"fmt"
)

// Kind classifies a conversion failure so callers can branch on the
// category instead of parsing message text.
type Kind string

const (
	// KindParse indicates the SVG source is not well-formed or declares
	// no usable intrinsic size.
	KindParse Kind = "parse"
	// KindInvalidColor indicates a background color string that does not
	// satisfy the RRGGBB contract.
	KindInvalidColor Kind = "invalid-color"
	// KindSurfaceAllocation indicates the output dimensions cannot back a
	// pixel surface (zero or excessive in either axis).
	KindSurfaceAllocation Kind = "surface-allocation"
	// KindBufferShape indicates a pixel buffer whose length does not match
	// its declared width, height and channel count.
	KindBufferShape Kind = "buffer-shape"
	// KindUnsupportedFormat indicates a target format outside the
	// supported set.
	KindUnsupportedFormat Kind = "unsupported-format"
	// KindEncoding indicates the chosen codec rejected the pixel data.
	KindEncoding Kind = "encoding"
)

// Error is the failure type returned by every stage of the pipeline.
// Stage names the failing component, Kind the failure category.
type Error struct {
	Kind  Kind
	Stage string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a conversion error for the given stage.
func NewError(kind Kind, stage string, err error) error {
	return &Error{
		Kind:  kind,
		Stage: stage,
		Err:   err,
	}
}

// Errorf creates a conversion error from a format string.
func Errorf(kind Kind, stage, format string, args ...any) error {
	return NewError(kind, stage, fmt.Errorf(format, args...))
}

// IsKind reports whether err is a conversion error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
