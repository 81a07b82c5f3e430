package imaging

import (
	"errors"
	"fmt"
)

// Error kinds reported by this package.
var (
	// ErrDecode is returned when a payload cannot be interpreted as an image.
	ErrDecode = errors.New("image could not be decoded")

	// ErrEncode is returned when a buffer cannot be serialized.
	ErrEncode = errors.New("image could not be encoded")

	// ErrRender is returned when a drawing surface cannot be acquired.
	ErrRender = errors.New("drawing surface unavailable")
)

var errEmptyBuffer = errors.New("buffer has no pixels")

// ImageError wraps a failure with the operation that produced it.
type ImageError struct {
	// Op is the operation that failed (e.g. "decode", "encode", "surface").
	Op string

	// Kind is one of ErrDecode, ErrEncode or ErrRender.
	Kind error

	// Err is the underlying cause. May be nil.
	Err error
}

// Error implements the error interface.
func (e *ImageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("imaging: %s failed: %v: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("imaging: %s failed: %v", e.Op, e.Kind)
}

// Unwrap returns the underlying cause.
func (e *ImageError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches the error kind or the cause.
func (e *ImageError) Is(target error) bool {
	return target == e.Kind || errors.Is(e.Err, target)
}

func decodeError(err error) error {
	return &ImageError{Op: "decode", Kind: ErrDecode, Err: err}
}

func encodeError(err error) error {
	return &ImageError{Op: "encode", Kind: ErrEncode, Err: err}
}
