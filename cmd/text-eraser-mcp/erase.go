package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ironsheep/text-eraser-mcp/internal/imaging"
	"github.com/ironsheep/text-eraser-mcp/internal/inpaint"
	"github.com/ironsheep/text-eraser-mcp/internal/logger"
)

var eraseCmd = &cobra.Command{
	Use:   "erase",
	Short: "Fill mask rectangles in an image file",
	Long: `Paint over rectangles in an image and write the result to a new file.

Masks come from a YAML or JSON file (--masks), from repeated --mask flags,
or both. The mask file may also set mode and color; flags win.

Modes:
  auto      estimate each mask's background from the original image
  color     paint with --color, or estimate when it is empty
  gradient  blend left to right between the colors beside each mask`,
	Example: `  # Erase two labels with their estimated background
  text-eraser-mcp erase --input diagram.png --masks labels.yaml --output clean.png

  # Paint one rectangle grey
  text-eraser-mcp erase -i shot.png --mask 40,12,200,24 --mode color --color "#eeeeee" -o out.png`,
	Args: cobra.NoArgs,
	RunE: runErase,
}

func init() {
	rootCmd.AddCommand(eraseCmd)

	eraseCmd.Flags().StringP("input", "i", "", "Input image path (required)")
	eraseCmd.Flags().StringP("output", "o", "", "Output PNG path (required)")
	eraseCmd.Flags().StringP("masks", "m", "", "YAML or JSON mask file")
	eraseCmd.Flags().StringArray("mask", nil, "Mask as x,y,width,height (repeatable)")
	eraseCmd.Flags().String("mode", "", "Fill mode: auto, color or gradient (default auto)")
	eraseCmd.Flags().String("color", "", "Fill color for color mode (#rrggbb or #rgb)")

	_ = eraseCmd.MarkFlagRequired("input")
	_ = eraseCmd.MarkFlagRequired("output")
}

func runErase(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("erase")

	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	masksPath, _ := cmd.Flags().GetString("masks")
	maskFlags, _ := cmd.Flags().GetStringArray("mask")

	mf := &MaskFile{}
	if masksPath != "" {
		var err error
		if mf, err = loadMaskFile(masksPath); err != nil {
			return err
		}
	}
	for _, s := range maskFlags {
		r, err := parseRect(s)
		if err != nil {
			return err
		}
		mf.Masks = append(mf.Masks, r)
	}
	if len(mf.Masks) == 0 {
		return errors.New("no masks given; use --masks or --mask")
	}

	if cmd.Flags().Changed("mode") {
		mf.Mode, _ = cmd.Flags().GetString("mode")
	}
	if cmd.Flags().Changed("color") {
		mf.Color, _ = cmd.Flags().GetString("color")
	}
	mode, err := inpaint.ParseFillMode(mf.Mode)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	buf, format, err := imaging.DecodeBytes(data)
	if err != nil {
		return err
	}

	log.Info().
		Str("input", inputPath).
		Str("format", format).
		Int("masks", len(mf.Masks)).
		Str("mode", string(mode)).
		Msg("Erasing")

	start := time.Now()
	engine := inpaint.NewEngine(cfg.EngineOptions())
	res, err := engine.Fill(buf, mf.Masks, inpaint.FillSpec{Mode: mode, Color: mf.Color})
	if err != nil {
		return err
	}
	if err := imaging.Save(res.Buffer, outputPath); err != nil {
		return err
	}

	log.Info().
		Str("output", outputPath).
		Dur("elapsed", time.Since(start)).
		Msg("Erase complete")

	printFills(cmd, res.Fills)
	return nil
}

func printFills(cmd *cobra.Command, fills []inpaint.AppliedFill) {
	out := cmd.OutOrStdout()
	for i, f := range fills {
		if f.EndColor != "" {
			fmt.Fprintf(out, "%3d  %-22s %s -> %s\n", i+1, f.Area, f.Color, f.EndColor)
			continue
		}
		fmt.Fprintf(out, "%3d  %-22s %s\n", i+1, f.Area, f.Color)
	}
}
