package main

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/text-eraser-mcp/internal/config"
	"github.com/ironsheep/text-eraser-mcp/internal/imaging"
)

func TestEraseCommand(t *testing.T) {
	cfg = config.Default()
	dir := t.TempDir()

	img := image.NewNRGBA(image.Rect(0, 0, 60, 40))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.NRGBA{255, 255, 255, 255}}, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(10, 10, 40, 20), &image.Uniform{color.NRGBA{0, 0, 0, 255}}, image.Point{}, draw.Src)

	in := filepath.Join(dir, "in.png")
	f, err := os.Create(in)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	masks := filepath.Join(dir, "masks.yaml")
	if err := os.WriteFile(masks, []byte("mode: auto\nmasks:\n  - {x: 10, y: 10, width: 30, height: 10}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out.png")

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"erase", "--input", in, "--masks", masks, "--output", out})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("erase: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	buf, _, err := imaging.DecodeBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	if c, _ := buf.NRGBAAt(25, 15); c != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("masked pixel: got %v, want white", c)
	}
	if !strings.Contains(stdout.String(), "#ffffff") {
		t.Errorf("summary should list the fill color, got %q", stdout.String())
	}

	// The source file is not modified.
	orig, _ := os.ReadFile(in)
	src, _, _ := imaging.DecodeBytes(orig)
	if c, _ := src.NRGBAAt(25, 15); c != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("input pixel: got %v, want black", c)
	}
}

func TestEraseCommand_RejectsNonPNGOutput(t *testing.T) {
	cfg = config.Default()
	dir := t.TempDir()

	in := filepath.Join(dir, "in.png")
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	var enc bytes.Buffer
	if err := png.Encode(&enc, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(in, enc.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	masks := filepath.Join(dir, "masks.yaml")
	if err := os.WriteFile(masks, []byte("- {x: 2, y: 2, width: 5, height: 5}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out.jpg")

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"erase", "--input", in, "--masks", masks, "--output", out})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error for a .jpg output")
	}
	if _, err := os.Stat(out); err == nil {
		t.Error("no file should be written for a rejected output path")
	}
}
