package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/text-eraser-mcp/internal/imaging"
)

// MaskFile is the document read by erase --masks. It is either a bare list
// of rectangles or a mapping that may also carry the fill settings:
//
//	mode: color
//	color: "#f0f0f0"
//	masks:
//	  - {x: 10, y: 20, width: 120, height: 18}
//
// JSON is valid YAML, so the same shapes work as .json files.
type MaskFile struct {
	Mode  string         `yaml:"mode"`
	Color string         `yaml:"color"`
	Masks []imaging.Rect `yaml:"masks"`
}

// parseMaskFile decodes a mask document.
func parseMaskFile(data []byte) (*MaskFile, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("invalid mask file: %w", err)
	}

	mf := &MaskFile{}
	if len(node.Content) == 0 {
		return mf, nil
	}

	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&mf.Masks); err != nil {
			return nil, fmt.Errorf("invalid mask list: %w", err)
		}
	case yaml.MappingNode:
		if err := root.Decode(mf); err != nil {
			return nil, fmt.Errorf("invalid mask file: %w", err)
		}
	default:
		return nil, fmt.Errorf("mask file must be a list or a mapping, got %s", root.Tag)
	}
	return mf, nil
}

// loadMaskFile reads and decodes path.
func loadMaskFile(path string) (*MaskFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mask file: %w", err)
	}
	return parseMaskFile(data)
}

// parseRect parses "x,y,width,height".
func parseRect(s string) (imaging.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return imaging.Rect{}, fmt.Errorf("mask %q: want x,y,width,height", s)
	}

	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return imaging.Rect{}, fmt.Errorf("mask %q: %w", s, err)
		}
		v[i] = n
	}
	return imaging.Rect{X: v[0], Y: v[1], Width: v[2], Height: v[3]}, nil
}
