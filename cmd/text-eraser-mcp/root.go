package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/text-eraser-mcp/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "text-eraser-mcp",
	Short: "MCP server that erases text from images",
	Long: `text-eraser-mcp paints over text in images with the surrounding
background color, an explicit color, or a horizontal gradient.

Without a subcommand it runs the MCP server on stdin/stdout. Configure it
in your MCP client (e.g., Claude Desktop). The erase subcommand runs the
same engine on files.

Environment variables (also read from .env):
  TEXT_ERASER_LOG_LEVEL=debug     Enable debug logging
  TEXT_ERASER_FILL_PADDING=3      Pixels added around each mask
  TEXT_ERASER_OCR_LANGUAGE=eng    Tesseract language`,
	Args:         cobra.NoArgs,
	Version:      Version,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"text-eraser-mcp %s\n  Build time: %s\n  Git commit: %s\n",
		Version, BuildTime, GitCommit))
}
