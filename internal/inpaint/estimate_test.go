package inpaint

import (
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/text-eraser-mcp/internal/imaging"
)

func TestSampleStrips(t *testing.T) {
	tests := []struct {
		name   string
		region imaging.Rect
		want   [4]imaging.Rect
	}{
		{
			name:   "interior",
			region: imaging.Rect{X: 40, Y: 45, Width: 20, Height: 10},
			want: [4]imaging.Rect{
				{X: 30, Y: 35, Width: 40, Height: 10},
				{X: 30, Y: 55, Width: 40, Height: 10},
				{X: 30, Y: 45, Width: 10, Height: 10},
				{X: 60, Y: 45, Width: 10, Height: 10},
			},
		},
		{
			name:   "top left corner",
			region: imaging.Rect{X: 5, Y: 5, Width: 10, Height: 10},
			want: [4]imaging.Rect{
				{X: 0, Y: 0, Width: 30, Height: 10},
				{X: 0, Y: 15, Width: 30, Height: 10},
				{X: 0, Y: 5, Width: 10, Height: 10},
				{X: 15, Y: 5, Width: 10, Height: 10},
			},
		},
		{
			name:   "bottom right corner",
			region: imaging.Rect{X: 95, Y: 95, Width: 5, Height: 5},
			want: [4]imaging.Rect{
				{X: 85, Y: 85, Width: 25, Height: 10},
				{X: 85, Y: 90, Width: 25, Height: 10},
				{X: 85, Y: 95, Width: 10, Height: 5},
				{X: 90, Y: 95, Width: 10, Height: 5},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SampleStrips(tt.region, 100, 100, 10)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("strip %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestEstimateBackground_Uniform(t *testing.T) {
	img := solidImage(100, 100, white)
	fillRect(img, image.Rect(40, 45, 60, 55), black)
	buf := imaging.FromImage(img)

	got := EstimateBackground(buf, imaging.Rect{X: 40, Y: 45, Width: 20, Height: 10})
	if got != "#ffffff" {
		t.Errorf("EstimateBackground: got %s, want #ffffff", got)
	}
}

func TestEstimateBackground_Majority(t *testing.T) {
	// Green band above the region, blue everywhere else.
	img := solidImage(60, 60, blue)
	fillRect(img, image.Rect(0, 10, 60, 20), green)
	buf := imaging.FromImage(img)

	got := EstimateBackground(buf, imaging.Rect{X: 20, Y: 20, Width: 20, Height: 20})
	if got != "#0000ff" {
		t.Errorf("EstimateBackground: got %s, want #0000ff", got)
	}
}

func TestEstimateBackground_TransparentFallsBack(t *testing.T) {
	buf := imaging.NewPixelBuffer(50, 50)

	got := EstimateBackground(buf, imaging.Rect{X: 10, Y: 10, Width: 10, Height: 10})
	if got != FallbackColor {
		t.Errorf("EstimateBackground: got %s, want %s", got, FallbackColor)
	}
}

func TestEstimateBackground_SkipsTranslucentPixels(t *testing.T) {
	// Translucent red everywhere except an opaque blue frame around the region.
	img := solidImage(60, 60, color.NRGBA{255, 0, 0, 100})
	fillRect(img, image.Rect(15, 15, 45, 20), blue)
	buf := imaging.FromImage(img)

	got := EstimateBackground(buf, imaging.Rect{X: 25, Y: 25, Width: 10, Height: 10})
	if got != "#0000ff" {
		t.Errorf("EstimateBackground: got %s, want #0000ff", got)
	}
}

func TestEstimateBackground_AlphaThresholdBoundary(t *testing.T) {
	img := solidImage(40, 40, color.NRGBA{0, 0, 255, 128})
	buf := imaging.FromImage(img)

	region := imaging.Rect{X: 15, Y: 15, Width: 10, Height: 10}
	if got := EstimateBackground(buf, region); got != "#0000ff" {
		t.Errorf("alpha 128: got %s, want #0000ff", got)
	}

	img = solidImage(40, 40, color.NRGBA{0, 0, 255, 127})
	buf = imaging.FromImage(img)
	if got := EstimateBackground(buf, region); got != FallbackColor {
		t.Errorf("alpha 127: got %s, want %s", got, FallbackColor)
	}
}

func TestEstimateBackground_RegionOutsideImage(t *testing.T) {
	buf := imaging.FromImage(solidImage(20, 20, green))

	tests := []struct {
		name   string
		region imaging.Rect
		want   string
	}{
		{"far outside", imaging.Rect{X: 500, Y: 500, Width: 10, Height: 10}, FallbackColor},
		{"covers image", imaging.Rect{X: 0, Y: 0, Width: 20, Height: 20}, "#00ff00"},
		{"negative origin clamps top strip", imaging.Rect{X: -30, Y: -30, Width: 10, Height: 10}, "#00ff00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateBackground(buf, tt.region); got != tt.want {
				t.Errorf("EstimateBackground: got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEstimateBackground_NilBuffer(t *testing.T) {
	if got := EstimateBackground(nil, imaging.Rect{Width: 5, Height: 5}); got != FallbackColor {
		t.Errorf("EstimateBackground(nil): got %s, want %s", got, FallbackColor)
	}
	if got := EstimateRegion(nil, imaging.Rect{Width: 5, Height: 5}); got != FallbackColor {
		t.Errorf("EstimateRegion(nil): got %s, want %s", got, FallbackColor)
	}
}

func TestEstimateRegion(t *testing.T) {
	buf := imaging.FromImage(splitImage(100, 20, red, blue))

	if got := EstimateRegion(buf, imaging.Rect{X: 0, Y: 0, Width: 10, Height: 20}); got != "#ff0000" {
		t.Errorf("left: got %s, want #ff0000", got)
	}
	if got := EstimateRegion(buf, imaging.Rect{X: 90, Y: 0, Width: 10, Height: 20}); got != "#0000ff" {
		t.Errorf("right: got %s, want #0000ff", got)
	}
}

func TestEngine_SampleWidth(t *testing.T) {
	// A 3px green ring around the region inside a red field. A 3px strip
	// sees only green, a 10px strip mostly red.
	img := solidImage(80, 80, red)
	fillRect(img, image.Rect(27, 27, 53, 53), green)
	fillRect(img, image.Rect(30, 30, 50, 50), black)
	buf := imaging.FromImage(img)
	region := imaging.Rect{X: 30, Y: 30, Width: 20, Height: 20}

	narrow := NewEngine(Options{SampleWidth: 3})
	if got := narrow.EstimateBackground(buf, region); got != "#00ff00" {
		t.Errorf("sample width 3: got %s, want #00ff00", got)
	}

	wide := NewEngine(Options{SampleWidth: 10})
	if got := wide.EstimateBackground(buf, region); got != "#ff0000" {
		t.Errorf("sample width 10: got %s, want #ff0000", got)
	}
}
