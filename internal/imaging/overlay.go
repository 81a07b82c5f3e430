package imaging

import (
	"image/color"
	"strconv"
)

// OverlayResult contains the image with mask outlines drawn on it.
type OverlayResult struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Image     string `json:"image"`
	MimeType  string `json:"mime_type"`
	MaskCount int    `json:"mask_count"`
}

// MaskOverlay outlines every mask on a copy of buf and labels it with its
// 1-based index, so a caller can check detected regions before erasing them.
//
// colorHex is parsed by ParseHex; an unparsable value falls back to opaque
// red.
func MaskOverlay(buf *PixelBuffer, masks []Rect, colorHex string) (*OverlayResult, error) {
	outline := color.NRGBA{255, 0, 0, 255}
	if c, err := ParseHex(colorHex); err == nil {
		outline = Opaque(c)
	}

	surf, err := NewSurface(buf)
	if err != nil {
		return nil, err
	}

	labelColor := color.NRGBA{255, 255, 255, 255}
	bgColor := color.NRGBA{0, 0, 0, 255}
	for i, m := range masks {
		surf.StrokeRect(m, 2, outline)
		drawLabel(surf, m.X+3, m.Y+3, strconv.Itoa(i+1), labelColor, bgColor)
	}

	out := surf.Release()
	uri, err := EncodeDataURI(out)
	if err != nil {
		return nil, err
	}

	return &OverlayResult{
		Width:     out.Width(),
		Height:    out.Height(),
		Image:     uri,
		MimeType:  PNGMimeType,
		MaskCount: len(masks),
	}, nil
}

// glyphs is a 3x5 bitmap font covering the digits used for mask labels.
var glyphs = map[rune][]string{
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
}

// drawLabel draws a small boxed label with its top-left corner at (x, y).
func drawLabel(surf *Surface, x, y int, text string, fg, bg color.NRGBA) {
	charWidth := 4
	labelWidth := len(text) * charWidth
	labelHeight := 7

	surf.FillRect(Rect{X: x - 1, Y: y - 1, Width: labelWidth + 1, Height: labelHeight + 1}, bg)

	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += charWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel == '1' {
					surf.Set(cx+col, y+row, fg)
				}
			}
		}
		cx += charWidth
	}
}
