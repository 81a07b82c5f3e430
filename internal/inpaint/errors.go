package inpaint

import "errors"

// ErrInvalidColor is returned when an explicit fill colour cannot be parsed.
var ErrInvalidColor = errors.New("invalid fill color")

// ErrUnknownMode is returned for a FillSpec mode this package does not know.
var ErrUnknownMode = errors.New("unknown fill mode")
