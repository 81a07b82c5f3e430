// Package logger configures the process-wide zerolog logger.
//
// Logs go to stderr by default: stdout carries MCP protocol frames and must
// never see anything else.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogConfig holds logging configuration
type LogConfig struct {
	Level      string // trace, debug, info, warn, error, fatal, panic, disabled
	Format     string // json, console
	TimeFormat string // Go time layout
	Output     string // stderr, stdout, or file path
}

// DefaultConfig returns the logging configuration used when nothing is set
func DefaultConfig() LogConfig {
	return LogConfig{
		Level:      "info",
		Format:     "console",
		TimeFormat: time.RFC3339,
		Output:     "stderr",
	}
}

// Setup initializes the global logger with the provided configuration
func Setup(config LogConfig) error {
	level, err := zerolog.ParseLevel(strings.ToLower(config.Level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", config.Level, err)
	}

	output, err := openOutput(config.Output)
	if err != nil {
		return err
	}

	log.Logger = New(output, config.Format, config.TimeFormat)
	zerolog.SetGlobalLevel(level)
	if config.TimeFormat != "" {
		zerolog.TimeFieldFormat = config.TimeFormat
	}

	return nil
}

// New builds a logger writing to w in the given format. Unknown formats fall
// back to console.
func New(w io.Writer, format, timeFormat string) zerolog.Logger {
	if strings.ToLower(format) != "json" {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: timeFormat,
			NoColor:    true,
		}
	}
	return zerolog.New(w).With().Timestamp().Logger()
}

func openOutput(output string) (io.Writer, error) {
	switch output {
	case "", "stderr":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	default:
		file, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return file, nil
	}
}

// WithComponent returns a logger with a component field
func WithComponent(component string) zerolog.Logger {
	return log.Logger.With().Str("component", component).Logger()
}
