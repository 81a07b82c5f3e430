package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// rectSchema describes an imaging.Rect argument.
func rectSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"x":      map[string]interface{}{"type": "integer", "description": "Left edge X coordinate (0-based)"},
			"y":      map[string]interface{}{"type": "integer", "description": "Top edge Y coordinate (0-based)"},
			"width":  map[string]interface{}{"type": "integer", "description": "Width in pixels"},
			"height": map[string]interface{}{"type": "integer", "description": "Height in pixels"},
		},
		"required": []string{"x", "y", "width", "height"},
	}
}

func masksSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"description": "Rectangles to erase, in paint order. Later masks win where they overlap.",
		"items":       rectSchema("One mask"),
	}
}

// toolSchema builds an object schema whose properties always include the
// image/path source pair.
func toolSchema(props map[string]interface{}, required ...string) map[string]interface{} {
	all := map[string]interface{}{
		"image": map[string]interface{}{
			"type":        "string",
			"description": "Image as a data URI (data:image/png;base64,...) or bare base64. Use this or path.",
		},
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the image file. Use this or image.",
		},
	}
	for k, v := range props {
		all[k] = v
	}
	if required == nil {
		required = []string{}
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": all,
		"required":   required,
	}
}

func fillProps() map[string]interface{} {
	return map[string]interface{}{
		"mode": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"auto", "color", "gradient"},
			"description": "auto: estimate each mask's background from the original image. color: paint with 'color', or estimate when it is empty. gradient: left-to-right blend between the colours beside each mask. Default auto",
			"default":     "auto",
		},
		"color": map[string]interface{}{
			"type":        "string",
			"description": "Explicit fill colour (#rrggbb or #rgb)",
		},
		"output_path": map[string]interface{}{
			"type":        "string",
			"description": "Optional .png file to write the result to. When set, the image is not returned inline.",
		},
	}
}

func detectProps() map[string]interface{} {
	return map[string]interface{}{
		"engine": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"auto", "tesseract", "heuristic"},
			"description": "tesseract: OCR word boxes. heuristic: edge-density windows, no OCR needed. auto: tesseract, falling back to heuristic on failure. Default auto",
			"default":     "auto",
		},
		"level": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"word", "line", "block"},
			"description": "Tesseract box granularity. Default word",
			"default":     "word",
		},
		"language": map[string]interface{}{
			"type":        "string",
			"description": "Tesseract language code (e.g. 'eng', 'eng+deu'). Default from server configuration",
		},
		"min_confidence": map[string]interface{}{
			"type":        "number",
			"description": "Minimum confidence (0-1) for a detected region. Default from server configuration",
		},
		"sparse": map[string]interface{}{
			"type":        "boolean",
			"description": "Use sparse-text segmentation for scattered labels. Default false",
		},
		"region": rectSchema("Optional area to search; masks are reported in full-image coordinates"),
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	detect := detectProps()
	erase := fillProps()
	for k, v := range detect {
		erase[k] = v
	}

	return []Tool{
		// Inspection
		{
			Name:        "image_load",
			Description: "Decode an image and return its dimensions, format and whether it has an alpha channel.",
			InputSchema: toolSchema(nil),
		},
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate.",
			InputSchema: toolSchema(map[string]interface{}{
				"x": map[string]interface{}{"type": "integer", "description": "X coordinate (0-based, from left)"},
				"y": map[string]interface{}{"type": "integer", "description": "Y coordinate (0-based, from top)"},
			}, "x", "y"),
		},
		{
			Name:        "image_dominant_colors",
			Description: "Find the most common quantized colors in the image or a region.",
			InputSchema: toolSchema(map[string]interface{}{
				"count": map[string]interface{}{
					"type":        "integer",
					"description": "Number of colors to return. Default 5",
					"default":     5,
				},
				"region": rectSchema("Optional area to analyse. Default whole image"),
			}),
		},
		{
			Name:        "image_estimate_background",
			Description: "Estimate the background color around a region by voting over the pixels in four border strips. Returns #ffffff when nothing opaque could be sampled.",
			InputSchema: toolSchema(map[string]interface{}{
				"region": rectSchema("Area whose surroundings are sampled"),
			}, "region"),
		},

		// Detection
		{
			Name:        "image_detect_text",
			Description: "Locate text and return mask rectangles suitable for image_fill.",
			InputSchema: toolSchema(detect),
		},

		// Erasing
		{
			Name:        "image_fill",
			Description: "Paint over mask rectangles with a background color or gradient and return the result as a PNG data URI. The input image is never modified.",
			InputSchema: toolSchema(map[string]interface{}{
				"masks":       masksSchema(),
				"mode":        erase["mode"],
				"color":       erase["color"],
				"output_path": erase["output_path"],
			}, "masks"),
		},
		{
			Name:        "image_erase_text",
			Description: "Detect text and fill every detected region in one step.",
			InputSchema: toolSchema(erase),
		},

		// Preview
		{
			Name:        "image_mask_overlay",
			Description: "Draw numbered outlines of mask rectangles over the image to check them before filling.",
			InputSchema: toolSchema(map[string]interface{}{
				"masks": masksSchema(),
				"color": map[string]interface{}{
					"type":        "string",
					"description": "Outline color as hex (e.g., '#FF0000'). Default red",
					"default":     "#FF0000",
				},
			}, "masks"),
		},
		{
			Name:        "image_crop",
			Description: "Crop a rectangular region and return it as base64-encoded PNG. Use this to zoom into a filled area and inspect the result.",
			InputSchema: toolSchema(map[string]interface{}{
				"region": rectSchema("Area to crop; clipped to the image"),
				"scale": map[string]interface{}{
					"type":        "number",
					"description": "Optional scale factor (e.g., 2.0 to double size). Default 1.0",
					"default":     1.0,
				},
			}, "region"),
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
