package ocr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"strings"

	dimaging "github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/text-eraser-mcp/internal/imaging"
)

// Level is the granularity of the boxes Tesseract reports.
type Level string

// Supported levels.
const (
	LevelWord  Level = "word"
	LevelLine  Level = "line"
	LevelBlock Level = "block"
)

// ErrUnknownLevel is returned for a Level other than word, line or block.
var ErrUnknownLevel = errors.New("unknown OCR level")

func (l Level) iteratorLevel() (gosseract.PageIteratorLevel, error) {
	switch l {
	case "", LevelWord:
		return gosseract.RIL_WORD, nil
	case LevelLine:
		return gosseract.RIL_TEXTLINE, nil
	case LevelBlock:
		return gosseract.RIL_BLOCK, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, string(l))
	}
}

// Options controls a recognition pass.
type Options struct {
	// Language is a Tesseract language code such as "eng" or "eng+deu".
	Language string

	// Level selects word, line or block boxes. Empty means word.
	Level Level

	// MinConfidence drops boxes scored below it (0.0 to 1.0).
	MinConfidence float64

	// Sparse switches Tesseract to sparse-text segmentation, which finds
	// scattered labels on photos and diagrams better than page layout.
	Sparse bool
}

// DefaultOptions returns English word-level detection at confidence 0.5.
func DefaultOptions() Options {
	return Options{Language: "eng", Level: LevelWord, MinConfidence: 0.5}
}

// TextMask is one detected piece of text and the rectangle covering it.
type TextMask struct {
	// Text is the recognized content. Block and line masks carry the whole
	// block or line.
	Text string `json:"text"`

	// Confidence is Tesseract's score scaled to 0.0 to 1.0.
	Confidence float64 `json:"confidence"`

	// Rect is the bounding box in source image coordinates.
	Rect imaging.Rect `json:"rect"`
}

// Result contains the outcome of a recognition pass.
type Result struct {
	// FullText is all recognized text with Tesseract's spacing and newlines.
	FullText string `json:"full_text"`

	// Masks lists the boxes that passed the confidence filter.
	Masks []TextMask `json:"masks"`

	// Count is len(Masks).
	Count int `json:"count"`
}

// Rects returns the rectangles of masks, in order.
func (r *Result) Rects() []imaging.Rect {
	rects := make([]imaging.Rect, len(r.Masks))
	for i, m := range r.Masks {
		rects[i] = m.Rect
	}
	return rects
}

// Recognize runs Tesseract over buf and returns text plus mask rectangles.
//
// The buffer is handed to Tesseract as an in-memory PNG; nothing is written
// to disk. Boxes are clipped to the buffer and empty boxes are dropped.
//
// # Errors
//
// Errors from Tesseract are prefixed with "tesseract:". If bounding box
// extraction fails after text recognition succeeded, Recognize still returns
// FullText with no masks.
func Recognize(buf *imaging.PixelBuffer, opts Options) (*Result, error) {
	level, err := opts.Level.iteratorLevel()
	if err != nil {
		return nil, err
	}

	var png bytes.Buffer
	if err := imaging.EncodePNG(&png, buf); err != nil {
		return nil, err
	}

	client := gosseract.NewClient()
	defer client.Close()

	lang := opts.Language
	if lang == "" {
		lang = DefaultOptions().Language
	}
	if err := client.SetLanguage(strings.Split(lang, "+")...); err != nil {
		return nil, fmt.Errorf("tesseract: failed to set language: %w", err)
	}

	if opts.Sparse {
		if err := client.SetPageSegMode(gosseract.PSM_SPARSE_TEXT); err != nil {
			return nil, fmt.Errorf("tesseract: failed to set page segmentation mode: %w", err)
		}
	}

	if err := client.SetImageFromBytes(png.Bytes()); err != nil {
		return nil, fmt.Errorf("tesseract: failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("tesseract: OCR failed: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(level)
	if err != nil {
		return &Result{FullText: text, Masks: []TextMask{}}, nil
	}

	masks := filterBoxes(boxes, opts.MinConfidence, buf.Width(), buf.Height())
	return &Result{FullText: text, Masks: masks, Count: len(masks)}, nil
}

// filterBoxes converts Tesseract boxes to masks, dropping low-confidence,
// empty and off-image boxes.
func filterBoxes(boxes []gosseract.BoundingBox, minConfidence float64, width, height int) []TextMask {
	masks := make([]TextMask, 0, len(boxes))
	for _, box := range boxes {
		confidence := float64(box.Confidence) / 100.0
		if confidence < minConfidence {
			continue
		}
		word := strings.TrimSpace(box.Word)
		if word == "" {
			continue
		}
		r := box.Box.Intersect(image.Rect(0, 0, width, height))
		if r.Empty() {
			continue
		}
		masks = append(masks, TextMask{
			Text:       word,
			Confidence: confidence,
			Rect:       imaging.RectFromBounds(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y),
		})
	}
	return masks
}

// RecognizeRegion runs Recognize on the part of buf inside region and shifts
// the resulting masks back into buf's coordinates.
func RecognizeRegion(buf *imaging.PixelBuffer, region imaging.Rect, opts Options) (*Result, error) {
	if buf == nil {
		return nil, &imaging.ImageError{Op: "ocr", Kind: imaging.ErrRender}
	}
	area := region.Clip(buf.Width(), buf.Height())
	if area.Empty() {
		return nil, fmt.Errorf("region %s does not overlap the %dx%d image", region, buf.Width(), buf.Height())
	}

	cropped := imaging.FromImage(dimaging.Crop(buf.Image(), area))
	result, err := Recognize(cropped, opts)
	if err != nil {
		return nil, err
	}

	for i := range result.Masks {
		result.Masks[i].Rect.X += area.Min.X
		result.Masks[i].Rect.Y += area.Min.Y
	}
	return result, nil
}

// Version reports the linked Tesseract version.
func Version() string {
	return gosseract.Version()
}
