// Package imaging provides the pixel-level plumbing for the text eraser.
//
// It decodes image payloads into PixelBuffer values, hands out drawing
// surfaces for mutation, and encodes finished buffers back into PNG data URIs.
// It also carries the small inspection helpers the server exposes (colour
// sampling, crops and mask overlays).
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - A Rect is {X, Y, Width, Height}; it covers [X, X+Width) × [Y, Y+Height)
//
// Rects are not required to lie inside the image. Every consumer clamps a Rect
// against the buffer before touching pixels; out-of-range coordinates are
// skipped, never read.
//
// # Buffer Lifecycle
//
// A PixelBuffer is decoded once per call, mutated through a Surface, encoded
// once and discarded:
//
//	src, err := imaging.Decode(payload)
//	surf, err := imaging.NewSurface(src) // working copy, src stays untouched
//	surf.FillRect(rect, c)
//	out := surf.Release()
//	uri, err := imaging.EncodeDataURI(out)
//
// PixelBuffer values are safe for concurrent reads. A Surface belongs to a
// single goroutine.
//
// # Payloads
//
// Input payloads are either data URIs ("data:image/png;base64,...") or bare
// base64 strings, which are treated as image/png. PNG, JPEG, GIF, WebP, BMP,
// TIFF and QOI are decoded. Output is always PNG.
//
// # Error Handling
//
// Decode failures wrap ErrDecode, encode failures wrap ErrEncode and a surface
// that cannot be acquired reports ErrRender. Use errors.Is to classify them.
package imaging
