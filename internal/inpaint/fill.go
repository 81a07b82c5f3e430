package inpaint

import (
	"fmt"
	"image/color"
	"sync"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/text-eraser-mcp/internal/imaging"
)

// FillMode selects the fill algorithm.
type FillMode string

// Supported fill modes.
const (
	// ModeColor paints each mask with FillSpec.Color, or with a colour
	// estimated per mask when Color is empty.
	ModeColor FillMode = "color"

	// ModeAuto estimates every mask first, then paints.
	ModeAuto FillMode = "auto"

	// ModeGradient paints a left-to-right gradient per mask.
	ModeGradient FillMode = "gradient"
)

// ParseFillMode maps a mode name to a FillMode. The empty string means auto.
func ParseFillMode(s string) (FillMode, error) {
	switch FillMode(s) {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeColor, ModeGradient:
		return FillMode(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// FillSpec describes how masks are painted.
type FillSpec struct {
	Mode  FillMode `json:"mode" yaml:"mode"`
	Color string   `json:"color,omitempty" yaml:"color,omitempty"`
}

// AppliedFill records what was painted for one mask.
type AppliedFill struct {
	// Mask is the region as supplied.
	Mask imaging.Rect `json:"mask"`

	// Area is the expanded rectangle that was painted (before clipping).
	Area imaging.Rect `json:"area"`

	// Color is the solid colour, or the gradient's left colour.
	Color string `json:"color"`

	// EndColor is the gradient's right colour. Empty for solid fills.
	EndColor string `json:"end_color,omitempty"`
}

// FillResult is the outcome of a buffer-level fill.
type FillResult struct {
	// Buffer is the painted copy. The source buffer is unchanged.
	Buffer *imaging.PixelBuffer

	// Fills lists one entry per mask, in input order.
	Fills []AppliedFill
}

// EncodedResult is the outcome of a payload-level fill.
type EncodedResult struct {
	Image    string        `json:"image"`
	MimeType string        `json:"mime_type"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Fills    []AppliedFill `json:"fills"`
}

// FillWithColor paints every mask, in order, with fillColor. When fillColor
// is empty each mask gets its own estimate, read from src rather than from
// the partially painted copy. Later masks win where expanded masks overlap.
//
// Returns an error wrapping ErrInvalidColor for an unparsable fillColor and
// imaging.ErrRender when src has no pixels.
func (e *Engine) FillWithColor(src *imaging.PixelBuffer, masks []imaging.Rect, fillColor string) (*FillResult, error) {
	fixed := ""
	if fillColor != "" {
		c, err := ParseColor(fillColor)
		if err != nil {
			return nil, err
		}
		fixed = c
	}

	surf, err := imaging.NewSurface(src)
	if err != nil {
		return nil, err
	}

	fills := make([]AppliedFill, 0, len(masks))
	for _, m := range masks {
		area := ExpandMask(m, e.opts.FillPadding)
		hex := fixed
		if hex == "" {
			hex = e.EstimateBackground(src, area)
		}
		surf.FillRect(area, mustOpaque(hex))
		fills = append(fills, AppliedFill{Mask: m, Area: area, Color: hex})
	}

	return &FillResult{Buffer: surf.Release(), Fills: fills}, nil
}

// FillAuto estimates the background of every mask concurrently against the
// untouched src, then paints all masks sequentially in input order. No
// estimate can see paint from another mask.
func (e *Engine) FillAuto(src *imaging.PixelBuffer, masks []imaging.Rect) (*FillResult, error) {
	surf, err := imaging.NewSurface(src)
	if err != nil {
		return nil, err
	}

	areas := make([]imaging.Rect, len(masks))
	for i, m := range masks {
		areas[i] = ExpandMask(m, e.opts.FillPadding)
	}

	colors := e.estimateAll(src, areas)

	fills := make([]AppliedFill, 0, len(masks))
	for i, area := range areas {
		surf.FillRect(area, mustOpaque(colors[i]))
		fills = append(fills, AppliedFill{Mask: masks[i], Area: area, Color: colors[i]})
	}

	return &FillResult{Buffer: surf.Release(), Fills: fills}, nil
}

// estimateAll runs EstimateBackground for every area on a bounded worker
// pool. Results are stored by index, so input order is kept.
func (e *Engine) estimateAll(src *imaging.PixelBuffer, areas []imaging.Rect) []string {
	colors := make([]string, len(areas))
	if len(areas) == 0 {
		return colors
	}

	jobs := make(chan int, len(areas))
	var wg sync.WaitGroup
	for w := 0; w < min(e.opts.Workers, len(areas)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				colors[i] = e.EstimateBackground(src, areas[i])
			}
		}()
	}

	for i := range areas {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return colors
}

// FillGradient paints the expanded mask with a horizontal linear gradient
// from the colour just left of the mask to the colour just right of it.
func (e *Engine) FillGradient(src *imaging.PixelBuffer, mask imaging.Rect) (*FillResult, error) {
	return e.fillGradients(src, []imaging.Rect{mask})
}

func (e *Engine) fillGradients(src *imaging.PixelBuffer, masks []imaging.Rect) (*FillResult, error) {
	surf, err := imaging.NewSurface(src)
	if err != nil {
		return nil, err
	}

	fills := make([]AppliedFill, 0, len(masks))
	for _, m := range masks {
		left, right := e.GradientEnds(src, m)
		area := ExpandMask(m, e.opts.FillPadding)
		paintGradient(surf, area, mustParse(left), mustParse(right))
		fills = append(fills, AppliedFill{Mask: m, Area: area, Color: left, EndColor: right})
	}

	return &FillResult{Buffer: surf.Release(), Fills: fills}, nil
}

// GradientEnds estimates the colours of the SampleWidth-wide strips directly
// left and right of mask. Strip origins are clamped to the buffer.
func (e *Engine) GradientEnds(src *imaging.PixelBuffer, mask imaging.Rect) (left, right string) {
	sw := e.opts.SampleWidth
	leftStrip := imaging.Rect{X: max(0, mask.X-sw), Y: mask.Y, Width: sw, Height: mask.Height}
	rightStrip := imaging.Rect{X: min(src.Width()-sw, mask.X+mask.Width), Y: mask.Y, Width: sw, Height: mask.Height}
	return e.EstimateRegion(src, leftStrip), e.EstimateRegion(src, rightStrip)
}

// paintGradient fills area with a gradient whose stop 0 sits on the area's
// left edge and stop 1 on its right edge, sampled at pixel centres.
func paintGradient(surf *imaging.Surface, area imaging.Rect, from, to colorful.Color) {
	if area.Empty() {
		return
	}
	x0 := float64(area.X)
	w := float64(area.Width)
	surf.FillRectFunc(area, func(x, _ int) color.NRGBA {
		t := (float64(x) + 0.5 - x0) / w
		t = min(1, max(0, t))
		return opaque(from.BlendRgb(to, t))
	})
}

// Fill dispatches to the algorithm named by spec.Mode. Gradient mode paints
// one gradient per mask, in order, each estimated from src; a Color with
// gradient mode is rejected with ErrInvalidColor.
func (e *Engine) Fill(src *imaging.PixelBuffer, masks []imaging.Rect, spec FillSpec) (*FillResult, error) {
	switch spec.Mode {
	case "", ModeAuto:
		if spec.Color != "" {
			return e.FillWithColor(src, masks, spec.Color)
		}
		return e.FillAuto(src, masks)
	case ModeColor:
		return e.FillWithColor(src, masks, spec.Color)
	case ModeGradient:
		if spec.Color != "" {
			return nil, fmt.Errorf("%w: gradient mode takes its colours from the image, got %q", ErrInvalidColor, spec.Color)
		}
		return e.fillGradients(src, masks)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, spec.Mode)
	}
}

// FillPayload decodes payload, runs Fill and encodes the result as a PNG
// data URI.
func (e *Engine) FillPayload(payload string, masks []imaging.Rect, spec FillSpec) (*EncodedResult, error) {
	src, err := imaging.Decode(payload)
	if err != nil {
		return nil, err
	}
	res, err := e.Fill(src, masks, spec)
	if err != nil {
		return nil, err
	}
	return Encode(res)
}

// Encode serializes a FillResult into an EncodedResult.
func Encode(res *FillResult) (*EncodedResult, error) {
	uri, err := imaging.EncodeDataURI(res.Buffer)
	if err != nil {
		return nil, err
	}
	return &EncodedResult{
		Image:    uri,
		MimeType: imaging.PNGMimeType,
		Width:    res.Buffer.Width(),
		Height:   res.Buffer.Height(),
		Fills:    res.Fills,
	}, nil
}

// FillWithColor paints masks on the image in payload with fillColor, or with
// per-mask estimates when fillColor is empty, and returns a PNG data URI.
func FillWithColor(payload string, masks []imaging.Rect, fillColor string) (string, error) {
	return fillPayload(payload, masks, FillSpec{Mode: ModeColor, Color: fillColor})
}

// FillAuto estimates every mask against the original image, paints them in
// order and returns a PNG data URI.
func FillAuto(payload string, masks []imaging.Rect) (string, error) {
	return fillPayload(payload, masks, FillSpec{Mode: ModeAuto})
}

// FillGradient paints a horizontal gradient over mask and returns a PNG data
// URI.
func FillGradient(payload string, mask imaging.Rect) (string, error) {
	return fillPayload(payload, []imaging.Rect{mask}, FillSpec{Mode: ModeGradient})
}

func fillPayload(payload string, masks []imaging.Rect, spec FillSpec) (string, error) {
	res, err := defaultEngine.FillPayload(payload, masks, spec)
	if err != nil {
		return "", err
	}
	return res.Image, nil
}

// mustParse converts a colour produced by this package. Such colours are
// always well formed.
func mustParse(hex string) colorful.Color {
	c, err := parseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

func mustOpaque(hex string) color.NRGBA {
	return opaque(mustParse(hex))
}
