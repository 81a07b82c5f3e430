package inpaint

import "github.com/ironsheep/text-eraser-mcp/internal/imaging"

// DefaultQuantizeStep is the bucket size used for colour voting.
const DefaultQuantizeStep = 16

// Quantize rounds each channel to the nearest multiple of step (halves round
// up), clamps to 255, and formats the result as "#rrggbb".
//
// A non-positive step falls back to DefaultQuantizeStep.
func Quantize(r, g, b uint8, step int) string {
	if step <= 0 {
		step = DefaultQuantizeStep
	}
	return imaging.HexString(quantizeChannel(r, step), quantizeChannel(g, step), quantizeChannel(b, step))
}

// quantizeChannel computes round(c/step)*step with integer arithmetic.
func quantizeChannel(c uint8, step int) uint8 {
	q := (2*int(c) + step) / (2 * step) * step
	if q > 255 {
		return 255
	}
	return uint8(q)
}
