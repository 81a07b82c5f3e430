package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// PixelBuffer is an owned 2D raster of non-premultiplied RGBA samples.
//
// The origin is always (0,0). Reads are safe from multiple goroutines; writes
// go through a Surface so the buffer a caller passed in is never mutated.
type PixelBuffer struct {
	img *image.NRGBA
}

// NewPixelBuffer allocates a fully transparent buffer.
func NewPixelBuffer(width, height int) *PixelBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &PixelBuffer{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

// FromImage copies any image into a new PixelBuffer anchored at (0,0).
func FromImage(img image.Image) *PixelBuffer {
	return &PixelBuffer{img: imaging.Clone(img)}
}

// Width returns the buffer width in pixels.
func (b *PixelBuffer) Width() int {
	return b.img.Rect.Dx()
}

// Height returns the buffer height in pixels.
func (b *PixelBuffer) Height() int {
	return b.img.Rect.Dy()
}

// Bounds returns the buffer rectangle.
func (b *PixelBuffer) Bounds() image.Rectangle {
	return b.img.Rect
}

// Contains reports whether (x, y) addresses a pixel of the buffer.
func (b *PixelBuffer) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.Width() && y < b.Height()
}

// NRGBAAt returns the pixel at (x, y). The second result is false for
// coordinates outside the buffer.
func (b *PixelBuffer) NRGBAAt(x, y int) (color.NRGBA, bool) {
	if !b.Contains(x, y) {
		return color.NRGBA{}, false
	}
	i := b.img.PixOffset(x, y)
	p := b.img.Pix[i : i+4 : i+4]
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}, true
}

// Clone returns a deep copy.
func (b *PixelBuffer) Clone() *PixelBuffer {
	pix := make([]uint8, len(b.img.Pix))
	copy(pix, b.img.Pix)
	return &PixelBuffer{img: &image.NRGBA{Pix: pix, Stride: b.img.Stride, Rect: b.img.Rect}}
}

// Image exposes the buffer as an image.Image for encoders and filters.
// Callers must treat the result as read-only.
func (b *PixelBuffer) Image() image.Image {
	return b.img
}

// Surface is the drawing context for one fill pass. It owns a working copy of
// its source buffer; the source is never written.
//
// A Surface is acquired with NewSurface and released exactly once with
// Release, which hands the finished buffer to the caller. Drawing calls on a
// released Surface are ignored.
type Surface struct {
	dst *image.NRGBA
}

// NewSurface acquires a surface over a copy of src.
//
// Returns an error wrapping ErrRender when src is nil or has no pixels.
func NewSurface(src *PixelBuffer) (*Surface, error) {
	if src == nil || src.img == nil {
		return nil, &ImageError{Op: "surface", Kind: ErrRender}
	}
	if src.Width() == 0 || src.Height() == 0 {
		return nil, &ImageError{Op: "surface", Kind: ErrRender, Err: errEmptyBuffer}
	}
	return &Surface{dst: src.Clone().img}, nil
}

// Set paints a single pixel. Out-of-range coordinates are ignored.
func (s *Surface) Set(x, y int, c color.NRGBA) {
	if s.dst == nil || !(image.Point{X: x, Y: y}).In(s.dst.Rect) {
		return
	}
	s.dst.SetNRGBA(x, y, c)
}

// FillRect paints r with a solid colour, clipped to the surface.
func (s *Surface) FillRect(r Rect, c color.NRGBA) {
	s.FillRectFunc(r, func(int, int) color.NRGBA { return c })
}

// FillRectFunc paints every pixel of r (clipped to the surface) with the
// colour returned by fn for that pixel.
func (s *Surface) FillRectFunc(r Rect, fn func(x, y int) color.NRGBA) {
	if s.dst == nil {
		return
	}
	area := r.Rectangle().Intersect(s.dst.Rect)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			c := fn(x, y)
			i := s.dst.PixOffset(x, y)
			p := s.dst.Pix[i : i+4 : i+4]
			p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
		}
	}
}

// StrokeRect draws a rectangle outline of the given thickness, clipped to the
// surface.
func (s *Surface) StrokeRect(r Rect, thickness int, c color.NRGBA) {
	if r.Empty() || thickness <= 0 {
		return
	}
	t := min(thickness, r.Width, r.Height)
	s.FillRect(Rect{X: r.X, Y: r.Y, Width: r.Width, Height: t}, c)
	s.FillRect(Rect{X: r.X, Y: r.Y + r.Height - t, Width: r.Width, Height: t}, c)
	s.FillRect(Rect{X: r.X, Y: r.Y, Width: t, Height: r.Height}, c)
	s.FillRect(Rect{X: r.X + r.Width - t, Y: r.Y, Width: t, Height: r.Height}, c)
}

// Release ends the drawing pass and returns the finished buffer.
// A second call returns nil.
func (s *Surface) Release() *PixelBuffer {
	if s.dst == nil {
		return nil
	}
	out := &PixelBuffer{img: s.dst}
	s.dst = nil
	return out
}
