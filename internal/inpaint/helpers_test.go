package inpaint

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/ironsheep/text-eraser-mcp/internal/imaging"
)

var (
	white = color.NRGBA{255, 255, 255, 255}
	black = color.NRGBA{0, 0, 0, 255}
	red   = color.NRGBA{255, 0, 0, 255}
	green = color.NRGBA{0, 255, 0, 255}
	blue  = color.NRGBA{0, 0, 255, 255}
)

// solidImage creates an image filled with a single colour
func solidImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	fillRect(img, img.Rect, c)
	return img
}

func fillRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// splitImage creates an image whose left half is one colour and right half another
func splitImage(width, height int, left, right color.NRGBA) *image.NRGBA {
	img := solidImage(width, height, right)
	fillRect(img, image.Rect(0, 0, width/2, height), left)
	return img
}

// payloadOf encodes img as a PNG data URI
func payloadOf(t *testing.T, img image.Image) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func decodeResult(t *testing.T, uri string) *imaging.PixelBuffer {
	t.Helper()
	buf, err := imaging.Decode(uri)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	return buf
}

func pixelAt(t *testing.T, buf *imaging.PixelBuffer, x, y int) color.NRGBA {
	t.Helper()
	c, ok := buf.NRGBAAt(x, y)
	if !ok {
		t.Fatalf("pixel (%d,%d) outside %dx%d buffer", x, y, buf.Width(), buf.Height())
	}
	return c
}

func assertPixel(t *testing.T, buf *imaging.PixelBuffer, x, y int, want color.NRGBA) {
	t.Helper()
	if got := pixelAt(t, buf, x, y); got != want {
		t.Errorf("pixel (%d,%d): got %v, want %v", x, y, got, want)
	}
}
