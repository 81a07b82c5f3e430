package inpaint

import "github.com/ironsheep/text-eraser-mcp/internal/imaging"

// ExpandMask grows mask by padding on every side. The origin is clamped at 0,
// but width and height always grow by 2*padding, so a mask touching the top
// or left edge reaches further right or down than a symmetric expansion.
func ExpandMask(mask imaging.Rect, padding int) imaging.Rect {
	return imaging.Rect{
		X:      max(0, mask.X-padding),
		Y:      max(0, mask.Y-padding),
		Width:  mask.Width + 2*padding,
		Height: mask.Height + 2*padding,
	}
}
