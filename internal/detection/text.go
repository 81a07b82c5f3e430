package detection

import (
	"errors"
	"image"
	"math"
	"sort"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"

	"github.com/ironsheep/text-eraser-mcp/internal/imaging"
)

// DefaultEdgeThreshold is the Sobel magnitude at which a pixel counts as an
// edge.
const DefaultEdgeThreshold uint8 = 48

// Density band accepted as text-like. Below it a window is mostly flat
// background; above it the window is noise or texture.
const (
	minTextDensity = 0.05
	maxTextDensity = 0.4
	idealDensity   = 0.2
)

// windowSizes are the sliding windows, roughly one per text size.
var windowSizes = []struct{ w, h int }{
	{100, 30}, // Small text
	{150, 40}, // Medium text
	{200, 50}, // Large text
	{80, 25},  // Very small text
}

// TextRegion represents a detected text region
type TextRegion struct {
	Rect       imaging.Rect `json:"rect"`
	Confidence float64      `json:"confidence"`
	Area       int          `json:"area"`
}

// TextRegionsResult contains detected text regions
type TextRegionsResult struct {
	Regions []TextRegion `json:"regions"`
	Count   int          `json:"count"`
}

// Rects returns the region rectangles, highest confidence first.
func (r *TextRegionsResult) Rects() []imaging.Rect {
	rects := make([]imaging.Rect, len(r.Regions))
	for i, region := range r.Regions {
		rects[i] = region.Rect
	}
	return rects
}

// DetectTextRegions finds regions likely to contain text using the default
// edge threshold.
func DetectTextRegions(img image.Image, minConfidence float64) (*TextRegionsResult, error) {
	return DetectTextRegionsWithThreshold(img, minConfidence, DefaultEdgeThreshold)
}

// DetectTextRegionsWithThreshold finds regions likely to contain text.
//
// This is a heuristic that needs no OCR engine. It slides windows of several
// sizes over a Sobel edge map and keeps windows whose edge density falls in
// the band typical of glyphs and whose edges form more horizontal than
// vertical runs. Overlapping windows are merged and the result is sorted by
// confidence, highest first.
//
// The masks are coarse: whole windows, not glyph outlines. They suit flat
// backgrounds such as screenshots and diagrams better than photographs.
func DetectTextRegionsWithThreshold(img image.Image, minConfidence float64, edgeThreshold uint8) (*TextRegionsResult, error) {
	if img == nil {
		return nil, errors.New("nil image")
	}
	bounds := img.Bounds()
	edges := newEdgeMap(img, edgeThreshold)

	candidates := make([]TextRegion, 0)

	for _, ws := range windowSizes {
		stepX := ws.w / 2
		stepY := ws.h / 2

		for y := 0; y <= edges.height-ws.h; y += stepY {
			for x := 0; x <= edges.width-ws.w; x += stepX {
				area := ws.w * ws.h
				density := float64(edges.count(x, y, ws.w, ws.h)) / float64(area)

				if density < minTextDensity || density > maxTextDensity {
					continue
				}

				horizontalScore := edges.horizontalScore(x, y, ws.w, ws.h)
				confidence := horizontalScore * (1.0 - math.Abs(density-idealDensity)/idealDensity)

				if confidence >= minConfidence {
					candidates = append(candidates, TextRegion{
						Rect: imaging.Rect{
							X:      x + bounds.Min.X,
							Y:      y + bounds.Min.Y,
							Width:  ws.w,
							Height: ws.h,
						},
						Confidence: math.Round(confidence*1000) / 1000,
						Area:       area,
					})
				}
			}
		}
	}

	merged := mergeOverlappingRegions(candidates)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Confidence > merged[j].Confidence
	})

	return &TextRegionsResult{
		Regions: merged,
		Count:   len(merged),
	}, nil
}

// edgeMap is a binary edge image with a summed-area table for constant-time
// window counts.
type edgeMap struct {
	width, height int
	edges         []bool
	sums          []int // (width+1)*(height+1), row-major
}

// newEdgeMap runs grayscale, Sobel and threshold over img. The map is
// anchored at (0,0) whatever img's origin.
func newEdgeMap(img image.Image, threshold uint8) *edgeMap {
	gray := effect.Grayscale(imaging.FromImage(img).Image())
	bin := segment.Threshold(effect.Sobel(gray), threshold)

	b := bin.Bounds()
	m := &edgeMap{
		width:  b.Dx(),
		height: b.Dy(),
		edges:  make([]bool, b.Dx()*b.Dy()),
		sums:   make([]int, (b.Dx()+1)*(b.Dy()+1)),
	}

	stride := m.width + 1
	for y := 0; y < m.height; y++ {
		rowSum := 0
		for x := 0; x < m.width; x++ {
			edge := bin.GrayAt(b.Min.X+x, b.Min.Y+y).Y == 0xFF
			m.edges[y*m.width+x] = edge
			if edge {
				rowSum++
			}
			m.sums[(y+1)*stride+x+1] = m.sums[y*stride+x+1] + rowSum
		}
	}
	return m
}

func (m *edgeMap) at(x, y int) bool {
	return m.edges[y*m.width+x]
}

// count returns the number of edge pixels in the w x h window at (x, y).
func (m *edgeMap) count(x, y, w, h int) int {
	stride := m.width + 1
	return m.sums[(y+h)*stride+x+w] - m.sums[y*stride+x+w] - m.sums[(y+h)*stride+x] + m.sums[y*stride+x]
}

// horizontalScore returns the share of edge runs that are horizontal.
func (m *edgeMap) horizontalScore(x, y, w, h int) float64 {
	horizontalRuns := 0
	verticalRuns := 0

	for row := y; row < y+h; row++ {
		inRun := false
		for col := x; col < x+w; col++ {
			if m.at(col, row) {
				if !inRun {
					horizontalRuns++
					inRun = true
				}
			} else {
				inRun = false
			}
		}
	}

	for col := x; col < x+w; col++ {
		inRun := false
		for row := y; row < y+h; row++ {
			if m.at(col, row) {
				if !inRun {
					verticalRuns++
					inRun = true
				}
			} else {
				inRun = false
			}
		}
	}

	if horizontalRuns+verticalRuns == 0 {
		return 0
	}
	return float64(horizontalRuns) / float64(horizontalRuns+verticalRuns)
}

// mergeOverlappingRegions combines overlapping text regions
func mergeOverlappingRegions(regions []TextRegion) []TextRegion {
	if len(regions) == 0 {
		return regions
	}

	merged := make([]TextRegion, 0)

	for _, r := range regions {
		foundMerge := false
		for i := range merged {
			if regionsOverlap(r.Rect, merged[i].Rect) {
				merged[i].Rect = mergeBounds(r.Rect, merged[i].Rect)
				merged[i].Confidence = math.Max(r.Confidence, merged[i].Confidence)
				merged[i].Area = merged[i].Rect.Width * merged[i].Rect.Height
				foundMerge = true
				break
			}
		}
		if !foundMerge {
			merged = append(merged, r)
		}
	}

	return merged
}

// regionsOverlap reports whether two rectangles share at least one pixel
func regionsOverlap(a, b imaging.Rect) bool {
	return a.Rectangle().Overlaps(b.Rectangle())
}

// mergeBounds returns the smallest rectangle containing both
func mergeBounds(a, b imaging.Rect) imaging.Rect {
	u := a.Rectangle().Union(b.Rectangle())
	return imaging.RectFromBounds(u.Min.X, u.Min.Y, u.Max.X, u.Max.Y)
}
