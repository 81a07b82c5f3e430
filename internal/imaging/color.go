package imaging

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// RGBAColor represents an RGBA color with 8-bit components including alpha.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex  string    `json:"hex"`  // Hex format "#rrggbb" (no alpha)
	RGB  RGBColor  `json:"rgb"`  // RGB components
	RGBA RGBAColor `json:"rgba"` // RGBA components with alpha
	HSL  HSLColor  `json:"hsl"`  // HSL representation
}

// NewColorResult expands a single colour into every representation.
func NewColorResult(c color.NRGBA) ColorResult {
	return ColorResult{
		Hex:  HexString(c.R, c.G, c.B),
		RGB:  RGBColor{R: c.R, G: c.G, B: c.B},
		RGBA: RGBAColor{R: c.R, G: c.G, B: c.B, A: c.A},
		HSL:  rgbToHSL(c.R, c.G, c.B),
	}
}

// HexString formats 8-bit components as lowercase "#rrggbb".
func HexString(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Returns an error if (x, y) is outside the buffer. The Hex form excludes
// alpha; use RGBA.A to get transparency information.
func SampleColor(buf *PixelBuffer, x, y int) (*ColorResult, error) {
	c, ok := buf.NRGBAAt(x, y)
	if !ok {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}
	result := NewColorResult(c)
	return &result, nil
}

// rgbToHSL converts 8-bit RGB values to HSL, with S and L as percentages.
func rgbToHSL(r, g, b uint8) HSLColor {
	c := colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
	h, s, l := c.Hsl()
	return HSLColor{
		H: int(h),
		S: int(s * 100),
		L: int(l * 100),
	}
}

// ParseHex parses a CSS-style hex colour: "#rrggbb" or "#rgb", with the
// leading '#' optional. Alpha digits are not accepted; every tool paints
// opaque pixels.
func ParseHex(s string) (colorful.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 3 && len(hex) != 6 {
		return colorful.Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	for _, ch := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", ch) {
			return colorful.Color{}, fmt.Errorf("invalid hex color %q", s)
		}
	}
	c, err := colorful.Hex("#" + strings.ToLower(hex))
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return c, nil
}

// Opaque converts c to an NRGBA pixel with full alpha.
func Opaque(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
