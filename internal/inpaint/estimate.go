package inpaint

import "github.com/ironsheep/text-eraser-mcp/internal/imaging"

// SampleStrips returns the four border rectangles sampled around region, in
// the order top, bottom, left, right.
//
// The top and bottom strips extend sampleWidth past the region on both sides
// so the corners are covered. Origins are clamped on construction; the strips
// may still reach outside small buffers, so readers re-check every pixel.
func SampleStrips(region imaging.Rect, width, height, sampleWidth int) [4]imaging.Rect {
	sw := sampleWidth
	left := max(0, region.X-sw)
	return [4]imaging.Rect{
		{X: left, Y: max(0, region.Y-sw), Width: region.Width + 2*sw, Height: sw},
		{X: left, Y: min(height-sw, region.Y+region.Height), Width: region.Width + 2*sw, Height: sw},
		{X: left, Y: region.Y, Width: sw, Height: region.Height},
		{X: min(width-sw, region.X+region.Width), Y: region.Y, Width: sw, Height: region.Height},
	}
}

// EstimateBackground returns the dominant quantized colour of the border
// around region using the default options.
func EstimateBackground(buf *imaging.PixelBuffer, region imaging.Rect) string {
	return defaultEngine.EstimateBackground(buf, region)
}

// EstimateRegion returns the dominant quantized colour inside sample using the
// default options.
func EstimateRegion(buf *imaging.PixelBuffer, sample imaging.Rect) string {
	return defaultEngine.EstimateRegion(buf, sample)
}

// EstimateBackground samples the four border strips around region and
// returns the most frequent quantized colour among opaque pixels. It returns
// FallbackColor when nothing qualifies.
func (e *Engine) EstimateBackground(buf *imaging.PixelBuffer, region imaging.Rect) string {
	return e.Histogram(buf, region).Dominant()
}

// EstimateRegion returns the most frequent quantized colour among opaque
// pixels inside sample, or FallbackColor when nothing qualifies.
func (e *Engine) EstimateRegion(buf *imaging.PixelBuffer, sample imaging.Rect) string {
	if buf == nil {
		return FallbackColor
	}
	h := NewHistogram()
	e.sample(h, buf, sample)
	return h.Dominant()
}

// Histogram builds the colour histogram of the border around region.
func (e *Engine) Histogram(buf *imaging.PixelBuffer, region imaging.Rect) *Histogram {
	h := NewHistogram()
	if buf == nil {
		return h
	}
	for _, strip := range SampleStrips(region, buf.Width(), buf.Height(), e.opts.SampleWidth) {
		e.sample(h, buf, strip)
	}
	return h
}

// sample adds every in-bounds pixel of r with alpha at or above the
// threshold to h, row by row.
func (e *Engine) sample(h *Histogram, buf *imaging.PixelBuffer, r imaging.Rect) {
	area := r.Clip(buf.Width(), buf.Height())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			c, ok := buf.NRGBAAt(x, y)
			if !ok || c.A < e.opts.AlphaThreshold {
				continue
			}
			h.Add(Quantize(c.R, c.G, c.B, e.opts.QuantizeStep))
		}
	}
}
