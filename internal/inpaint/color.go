package inpaint

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/text-eraser-mcp/internal/imaging"
)

// ParseColor validates a CSS-style hex colour ("#rrggbb" or "#rgb", the
// leading '#' optional) and returns it in canonical "#rrggbb" form.
func ParseColor(s string) (string, error) {
	c, err := parseHex(s)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// ParseNRGBA parses a hex colour like ParseColor and returns it as an opaque
// pixel value.
func ParseNRGBA(s string) (color.NRGBA, error) {
	c, err := parseHex(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	return opaque(c), nil
}

func parseHex(s string) (colorful.Color, error) {
	c, err := imaging.ParseHex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %v", ErrInvalidColor, err)
	}
	return c, nil
}

// opaque converts a colour to an opaque NRGBA pixel.
func opaque(c colorful.Color) color.NRGBA {
	return imaging.Opaque(c)
}
