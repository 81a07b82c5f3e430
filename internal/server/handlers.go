package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"time"

	dimaging "github.com/disintegration/imaging"

	"github.com/ironsheep/text-eraser-mcp/internal/detection"
	"github.com/ironsheep/text-eraser-mcp/internal/imaging"
	"github.com/ironsheep/text-eraser-mcp/internal/inpaint"
	"github.com/ironsheep/text-eraser-mcp/internal/ocr"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_fill").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	start := time.Now()
	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.Error().Err(err).Str("tool", params.Name).Msg("Tool execution failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}
	s.log.Debug().Str("tool", params.Name).Dur("elapsed", time.Since(start)).Msg("Tool executed")

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Decodes the image payload or loads it from the cache
//  4. Calls the appropriate imaging/inpaint/ocr/detection function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Inspection
	case "image_load":
		return s.handleImageLoad(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)
	case "image_estimate_background":
		return s.handleImageEstimateBackground(args)

	// Detection
	case "image_detect_text":
		return s.handleImageDetectText(args)

	// Erasing
	case "image_fill":
		return s.handleImageFill(args)
	case "image_erase_text":
		return s.handleImageEraseText(args)

	// Preview
	case "image_mask_overlay":
		return s.handleImageMaskOverlay(args)
	case "image_crop":
		return s.handleImageCrop(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments. Missing arguments count as {}.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// imageSource is embedded by every tool's arguments.
type imageSource struct {
	Image string `json:"image"`
	Path  string `json:"path"`
}

// loadBuffer decodes the inline image or loads the file through the cache.
func (s *Server) loadBuffer(src imageSource) (*imaging.PixelBuffer, error) {
	switch {
	case src.Image != "" && src.Path != "":
		return nil, errors.New("provide either image or path, not both")
	case src.Image != "":
		return imaging.Decode(src.Image)
	case src.Path != "":
		return s.cache.LoadBuffer(src.Path)
	default:
		return nil, errors.New("image or path is required")
	}
}

// === Inspection Handlers ===

type imageLoadArgs struct {
	imageSource
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	switch {
	case a.Image != "" && a.Path != "":
		return nil, errors.New("provide either image or path, not both")
	case a.Image != "":
		return imaging.InspectPayload(a.Image)
	case a.Path != "":
		return imaging.LoadImageInfo(s.cache, a.Path)
	default:
		return nil, errors.New("image or path is required")
	}
}

type imageSampleColorArgs struct {
	imageSource
	X int `json:"x"`
	Y int `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	buf, err := s.loadBuffer(a.imageSource)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColor(buf, a.X, a.Y)
}

type imageDominantColorsArgs struct {
	imageSource
	Count  int           `json:"count"`
	Region *imaging.Rect `json:"region"`
}

type dominantColorsResult struct {
	Colors []inpaint.DominantColor `json:"colors"`
	Count  int                     `json:"count"`
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imageDominantColorsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Count <= 0 {
		a.Count = 5
	}
	buf, err := s.loadBuffer(a.imageSource)
	if err != nil {
		return nil, err
	}
	colors := s.engine.DominantColors(buf, a.Count, a.Region)
	return &dominantColorsResult{Colors: colors, Count: len(colors)}, nil
}

type imageEstimateBackgroundArgs struct {
	imageSource
	Region *imaging.Rect `json:"region"`
}

type backgroundResult struct {
	imaging.ColorResult
	Region   imaging.Rect    `json:"region"`
	Strips   [4]imaging.Rect `json:"strips"`
	Samples  int             `json:"samples"`
	Fallback bool            `json:"fallback"`
}

func (s *Server) handleImageEstimateBackground(args json.RawMessage) (interface{}, error) {
	var a imageEstimateBackgroundArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Region == nil {
		return nil, errors.New("region is required")
	}
	buf, err := s.loadBuffer(a.imageSource)
	if err != nil {
		return nil, err
	}

	h := s.engine.Histogram(buf, *a.Region)
	c, err := inpaint.ParseNRGBA(h.Dominant())
	if err != nil {
		return nil, err
	}
	return &backgroundResult{
		ColorResult: imaging.NewColorResult(c),
		Region:      *a.Region,
		Strips:      inpaint.SampleStrips(*a.Region, buf.Width(), buf.Height(), s.engine.Options().SampleWidth),
		Samples:     h.Total(),
		Fallback:    h.Total() == 0,
	}, nil
}

// === Detection Handlers ===

type detectArgs struct {
	Engine        string        `json:"engine"`
	Level         string        `json:"level"`
	Language      string        `json:"language"`
	MinConfidence *float64      `json:"min_confidence"`
	Sparse        bool          `json:"sparse"`
	Region        *imaging.Rect `json:"region"`
}

type imageDetectTextArgs struct {
	imageSource
	detectArgs
}

type detectResult struct {
	Engine         string         `json:"engine"`
	FallbackReason string         `json:"fallback_reason,omitempty"`
	FullText       string         `json:"full_text,omitempty"`
	Masks          []ocr.TextMask `json:"masks"`
	Count          int            `json:"count"`
}

func (r *detectResult) rects() []imaging.Rect {
	rects := make([]imaging.Rect, len(r.Masks))
	for i, m := range r.Masks {
		rects[i] = m.Rect
	}
	return rects
}

func (s *Server) handleImageDetectText(args json.RawMessage) (interface{}, error) {
	var a imageDetectTextArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	buf, err := s.loadBuffer(a.imageSource)
	if err != nil {
		return nil, err
	}
	return s.detectText(buf, a.detectArgs)
}

// detectText runs the requested engine. In auto mode a Tesseract failure
// falls back to the heuristic detector and the reason is reported.
func (s *Server) detectText(buf *imaging.PixelBuffer, a detectArgs) (*detectResult, error) {
	opts := s.cfg.OCROptions()
	if a.Language != "" {
		opts.Language = a.Language
	}
	if a.MinConfidence != nil {
		opts.MinConfidence = *a.MinConfidence
	}
	opts.Level = ocr.Level(a.Level)
	opts.Sparse = a.Sparse

	switch a.Engine {
	case "", "auto":
		res, err := s.detectWithTesseract(buf, a.Region, opts)
		if err == nil {
			return res, nil
		}
		if errors.Is(err, ocr.ErrUnknownLevel) {
			return nil, err
		}
		s.log.Warn().Err(err).Msg("Tesseract failed, using heuristic detector")
		res, herr := s.detectWithHeuristic(buf, a.Region, opts.MinConfidence)
		if herr != nil {
			return nil, herr
		}
		res.FallbackReason = err.Error()
		return res, nil
	case "tesseract":
		return s.detectWithTesseract(buf, a.Region, opts)
	case "heuristic":
		return s.detectWithHeuristic(buf, a.Region, opts.MinConfidence)
	default:
		return nil, fmt.Errorf("unknown detection engine: %s", a.Engine)
	}
}

func (s *Server) detectWithTesseract(buf *imaging.PixelBuffer, region *imaging.Rect, opts ocr.Options) (*detectResult, error) {
	var (
		res *ocr.Result
		err error
	)
	if region != nil {
		res, err = ocr.RecognizeRegion(buf, *region, opts)
	} else {
		res, err = ocr.Recognize(buf, opts)
	}
	if err != nil {
		return nil, err
	}
	return &detectResult{
		Engine:   "tesseract",
		FullText: res.FullText,
		Masks:    res.Masks,
		Count:    len(res.Masks),
	}, nil
}

func (s *Server) detectWithHeuristic(buf *imaging.PixelBuffer, region *imaging.Rect, minConfidence float64) (*detectResult, error) {
	img := buf.Image()
	var offset image.Point
	if region != nil {
		area := region.Clip(buf.Width(), buf.Height())
		if area.Empty() {
			return nil, fmt.Errorf("region %s does not overlap the %dx%d image", *region, buf.Width(), buf.Height())
		}
		img = dimaging.Crop(img, area)
		offset = area.Min
	}

	res, err := detection.DetectTextRegions(img, minConfidence)
	if err != nil {
		return nil, err
	}

	masks := make([]ocr.TextMask, 0, len(res.Regions))
	for _, r := range res.Regions {
		rect := r.Rect
		rect.X += offset.X
		rect.Y += offset.Y
		masks = append(masks, ocr.TextMask{Confidence: r.Confidence, Rect: rect})
	}
	return &detectResult{Engine: "heuristic", Masks: masks, Count: len(masks)}, nil
}

// === Erasing Handlers ===

type fillArgs struct {
	Mode       string `json:"mode"`
	Color      string `json:"color"`
	OutputPath string `json:"output_path"`
}

type imageFillArgs struct {
	imageSource
	fillArgs
	Masks []imaging.Rect `json:"masks"`
}

type fillResult struct {
	Image      string                `json:"image,omitempty"`
	MimeType   string                `json:"mime_type,omitempty"`
	OutputPath string                `json:"output_path,omitempty"`
	Width      int                   `json:"width"`
	Height     int                   `json:"height"`
	Fills      []inpaint.AppliedFill `json:"fills"`
}

func (s *Server) handleImageFill(args json.RawMessage) (interface{}, error) {
	var a imageFillArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Masks == nil {
		return nil, errors.New("masks is required")
	}
	buf, err := s.loadBuffer(a.imageSource)
	if err != nil {
		return nil, err
	}
	return s.fill(buf, a.Masks, a.fillArgs)
}

// fill runs the engine and either returns the image inline or saves it.
func (s *Server) fill(buf *imaging.PixelBuffer, masks []imaging.Rect, a fillArgs) (*fillResult, error) {
	mode, err := inpaint.ParseFillMode(a.Mode)
	if err != nil {
		return nil, err
	}

	res, err := s.engine.Fill(buf, masks, inpaint.FillSpec{Mode: mode, Color: a.Color})
	if err != nil {
		return nil, err
	}

	if a.OutputPath != "" {
		if err := imaging.Save(res.Buffer, a.OutputPath); err != nil {
			return nil, err
		}
		s.cache.Evict(a.OutputPath)
		return &fillResult{
			OutputPath: a.OutputPath,
			Width:      res.Buffer.Width(),
			Height:     res.Buffer.Height(),
			Fills:      res.Fills,
		}, nil
	}

	enc, err := inpaint.Encode(res)
	if err != nil {
		return nil, err
	}
	return &fillResult{
		Image:    enc.Image,
		MimeType: enc.MimeType,
		Width:    enc.Width,
		Height:   enc.Height,
		Fills:    enc.Fills,
	}, nil
}

type imageEraseTextArgs struct {
	imageSource
	detectArgs
	fillArgs
}

type eraseResult struct {
	Detection *detectResult `json:"detection"`
	Fill      *fillResult   `json:"fill"`
}

func (s *Server) handleImageEraseText(args json.RawMessage) (interface{}, error) {
	var a imageEraseTextArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	buf, err := s.loadBuffer(a.imageSource)
	if err != nil {
		return nil, err
	}

	det, err := s.detectText(buf, a.detectArgs)
	if err != nil {
		return nil, err
	}

	filled, err := s.fill(buf, det.rects(), a.fillArgs)
	if err != nil {
		return nil, err
	}
	return &eraseResult{Detection: det, Fill: filled}, nil
}

// === Preview Handlers ===

type imageMaskOverlayArgs struct {
	imageSource
	Masks []imaging.Rect `json:"masks"`
	Color string         `json:"color"`
}

func (s *Server) handleImageMaskOverlay(args json.RawMessage) (interface{}, error) {
	var a imageMaskOverlayArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Color == "" {
		a.Color = "#FF0000"
	}
	buf, err := s.loadBuffer(a.imageSource)
	if err != nil {
		return nil, err
	}
	return imaging.MaskOverlay(buf, a.Masks, a.Color)
}

type imageCropArgs struct {
	imageSource
	Region *imaging.Rect `json:"region"`
	Scale  float64       `json:"scale"`
}

func (s *Server) handleImageCrop(args json.RawMessage) (interface{}, error) {
	var a imageCropArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Region == nil {
		return nil, errors.New("region is required")
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	buf, err := s.loadBuffer(a.imageSource)
	if err != nil {
		return nil, err
	}
	return imaging.Crop(buf, *a.Region, a.Scale)
}
