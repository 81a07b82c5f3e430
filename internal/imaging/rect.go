package imaging

import (
	"fmt"
	"image"
)

// Rect is a rectangular pixel area: either a target region to erase or a
// sample region to estimate colour from.
//
// A Rect may extend past the image; use Clip before indexing pixels.
type Rect struct {
	X      int `json:"x" yaml:"x"`
	Y      int `json:"y" yaml:"y"`
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// RectFromBounds converts corner coordinates (x2, y2 exclusive) into a Rect.
func RectFromBounds(x1, y1, x2, y2 int) Rect {
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Rectangle returns r as an image.Rectangle. Negative sizes yield an empty
// rectangle.
func (r Rect) Rectangle() image.Rectangle {
	if r.Width <= 0 || r.Height <= 0 {
		return image.Rectangle{}
	}
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Clip returns the part of r that lies inside [0,width) × [0,height).
func (r Rect) Clip(width, height int) image.Rectangle {
	return r.Rectangle().Intersect(image.Rect(0, 0, width, height))
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// String returns a compact form such as "20x10+40+45".
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}
