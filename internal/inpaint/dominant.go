package inpaint

import (
	"math"

	"github.com/ironsheep/text-eraser-mcp/internal/imaging"
)

// DominantColor is one entry of a DominantColors result.
type DominantColor struct {
	Hex        string           `json:"hex"`
	RGB        imaging.RGBColor `json:"rgb"`
	Count      int              `json:"count"`
	Percentage float64          `json:"percentage"`
}

// DominantColors returns up to count quantized colours of region (the whole
// buffer when region is nil), most frequent first. Pixels below the alpha
// threshold are skipped. Percentages are relative to the sampled pixels and
// rounded to one decimal.
func (e *Engine) DominantColors(buf *imaging.PixelBuffer, count int, region *imaging.Rect) []DominantColor {
	if buf == nil {
		return nil
	}
	area := imaging.Rect{Width: buf.Width(), Height: buf.Height()}
	if region != nil {
		area = *region
	}

	h := NewHistogram()
	e.sample(h, buf, area)
	if h.Total() == 0 {
		return []DominantColor{}
	}

	top := h.Top(count)
	out := make([]DominantColor, 0, len(top))
	for _, b := range top {
		c := mustOpaque(b.Color)
		pct := float64(b.Count) * 100 / float64(h.Total())
		out = append(out, DominantColor{
			Hex:        b.Color,
			RGB:        imaging.RGBColor{R: c.R, G: c.G, B: c.B},
			Count:      b.Count,
			Percentage: math.Round(pct*10) / 10,
		})
	}
	return out
}

// DominantColors runs Engine.DominantColors with the default options.
func DominantColors(buf *imaging.PixelBuffer, count int, region *imaging.Rect) []DominantColor {
	return defaultEngine.DominantColors(buf, count, region)
}
