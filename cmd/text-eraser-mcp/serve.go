package main

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/text-eraser-mcp/internal/logger"
	"github.com/ironsheep/text-eraser-mcp/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdin/stdout",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("serve")
	log.Debug().
		Str("version", Version).
		Str("build_time", BuildTime).
		Str("commit", GitCommit).
		Msg("Starting MCP server")

	return server.NewWithConfig(cfg, Version).Run()
}
