// Package server implements the MCP (Model Context Protocol) server for
// background text erasing.
//
// The server speaks JSON-RPC 2.0 over stdio:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Inspection:
//   - image_load: Dimensions, format and alpha of an image
//   - image_sample_color: Color at one pixel
//   - image_dominant_colors: Quantized palette of the image or a region
//   - image_estimate_background: Border-strip vote for a region's background
//
// Detection:
//   - image_detect_text: Text masks from Tesseract or the edge heuristic
//
// Erasing:
//   - image_fill: Paint masks with an estimated color, a fixed color or a gradient
//   - image_erase_text: Detect then fill in one call
//
// Preview:
//   - image_mask_overlay: Numbered outlines of masks over the image
//   - image_crop: Zoom into a region to inspect a fill
//
// Every tool takes its image either inline as "image" (a data URI or bare
// base64) or as a file "path". Files are cached by path and modification
// time for the lifetime of the process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.NewWithConfig(cfg, version)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
