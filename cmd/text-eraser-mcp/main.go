package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/ironsheep/text-eraser-mcp/internal/config"
	"github.com/ironsheep/text-eraser-mcp/internal/logger"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// cfg is shared by every command. It is loaded before Execute runs.
var cfg *config.Config

func main() {
	// A missing .env is normal; the environment may already be set.
	_ = godotenv.Load()

	var err error
	cfg, err = config.Load()
	if err != nil {
		// stdout is reserved for MCP frames, and the standard logger writes to stderr.
		log.Printf("Warning: invalid configuration, using defaults: %v", err)
		cfg = config.Default()
	}

	if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
		log.Printf("Warning: could not initialize logger: %v", err)
		if err := logger.Setup(logger.DefaultConfig()); err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
	}

	Execute()
}
