package inpaint

import (
	"testing"

	"github.com/ironsheep/text-eraser-mcp/internal/imaging"
)

func TestExpandMask(t *testing.T) {
	tests := []struct {
		name    string
		mask    imaging.Rect
		padding int
		want    imaging.Rect
	}{
		{"interior", imaging.Rect{X: 10, Y: 10, Width: 4, Height: 4}, 3, imaging.Rect{X: 7, Y: 7, Width: 10, Height: 10}},
		{"default padding", imaging.Rect{X: 40, Y: 45, Width: 20, Height: 10}, DefaultExpandPadding, imaging.Rect{X: 35, Y: 40, Width: 30, Height: 20}},
		{"origin clamps", imaging.Rect{X: 0, Y: 0, Width: 10, Height: 10}, 5, imaging.Rect{X: 0, Y: 0, Width: 20, Height: 20}},
		{"partial clamp", imaging.Rect{X: 2, Y: 8, Width: 6, Height: 6}, 5, imaging.Rect{X: 0, Y: 3, Width: 16, Height: 16}},
		{"zero padding", imaging.Rect{X: 3, Y: 4, Width: 5, Height: 6}, 0, imaging.Rect{X: 3, Y: 4, Width: 5, Height: 6}},
		{"zero size mask", imaging.Rect{X: 20, Y: 20}, 3, imaging.Rect{X: 17, Y: 17, Width: 6, Height: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandMask(tt.mask, tt.padding)
			if got != tt.want {
				t.Errorf("ExpandMask(%v, %d) = %v, want %v", tt.mask, tt.padding, got, tt.want)
			}
			if got.Width-tt.mask.Width != 2*tt.padding || got.Height-tt.mask.Height != 2*tt.padding {
				t.Errorf("size grew by (%d,%d), want %d each", got.Width-tt.mask.Width, got.Height-tt.mask.Height, 2*tt.padding)
			}
			if got.X < 0 || got.Y < 0 {
				t.Errorf("origin went negative: %v", got)
			}
		})
	}
}
