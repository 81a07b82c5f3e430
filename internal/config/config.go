// Package config reads runtime settings from the environment.
//
// Every variable is optional. A .env file in the working directory is loaded
// by main before Load runs, so values can live there too.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/ironsheep/text-eraser-mcp/internal/inpaint"
	"github.com/ironsheep/text-eraser-mcp/internal/logger"
	"github.com/ironsheep/text-eraser-mcp/internal/ocr"
)

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "TEXT_ERASER_"

// Config holds all runtime settings.
type Config struct {
	// Logging
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string

	// Fill engine
	SampleWidth  int
	QuantizeStep int
	FillPadding  int
	Workers      int

	// Text detection
	OCRLanguage   string
	MinConfidence float64
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var errs []string
	intEnv := func(key string, def int) int {
		v, err := getEnvInt(key, def)
		if err != nil {
			errs = append(errs, err.Error())
		}
		return v
	}

	config := &Config{
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		LogTimeFormat: getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:     getEnv("LOG_OUTPUT", "stderr"),
		SampleWidth:   intEnv("SAMPLE_WIDTH", inpaint.DefaultSampleWidth),
		QuantizeStep:  intEnv("QUANTIZE_STEP", inpaint.DefaultQuantizeStep),
		FillPadding:   intEnv("FILL_PADDING", inpaint.DefaultFillPadding),
		Workers:       intEnv("WORKERS", runtime.NumCPU()),
		OCRLanguage:   getEnv("OCR_LANGUAGE", ocr.DefaultOptions().Language),
	}

	minConf, err := getEnvFloat("MIN_CONFIDENCE", ocr.DefaultOptions().MinConfidence)
	if err != nil {
		errs = append(errs, err.Error())
	}
	config.MinConfidence = minConf

	if len(errs) > 0 {
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Default returns the configuration used when the environment is empty.
func Default() *Config {
	return &Config{
		LogLevel:      "info",
		LogFormat:     "console",
		LogTimeFormat: "2006-01-02T15:04:05Z07:00",
		LogOutput:     "stderr",
		SampleWidth:   inpaint.DefaultSampleWidth,
		QuantizeStep:  inpaint.DefaultQuantizeStep,
		FillPadding:   inpaint.DefaultFillPadding,
		Workers:       runtime.NumCPU(),
		OCRLanguage:   ocr.DefaultOptions().Language,
		MinConfidence: ocr.DefaultOptions().MinConfidence,
	}
}

func (c *Config) validate() error {
	if c.LogOutput == "stdout" {
		return fmt.Errorf("%sLOG_OUTPUT=stdout would corrupt the MCP stream; use stderr or a file", EnvPrefix)
	}
	if c.SampleWidth < 1 {
		return fmt.Errorf("%sSAMPLE_WIDTH must be at least 1, got %d", EnvPrefix, c.SampleWidth)
	}
	if c.QuantizeStep < 1 || c.QuantizeStep > 255 {
		return fmt.Errorf("%sQUANTIZE_STEP must be between 1 and 255, got %d", EnvPrefix, c.QuantizeStep)
	}
	if c.FillPadding < 0 {
		return fmt.Errorf("%sFILL_PADDING must not be negative, got %d", EnvPrefix, c.FillPadding)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%sWORKERS must be at least 1, got %d", EnvPrefix, c.Workers)
	}
	if c.MinConfidence < 0 || c.MinConfidence > 1 {
		return fmt.Errorf("%sMIN_CONFIDENCE must be between 0 and 1, got %g", EnvPrefix, c.MinConfidence)
	}
	if c.OCRLanguage == "" {
		return fmt.Errorf("%sOCR_LANGUAGE is required", EnvPrefix)
	}
	return nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

// EngineOptions returns the fill engine settings.
func (c *Config) EngineOptions() inpaint.Options {
	opts := inpaint.DefaultOptions()
	opts.SampleWidth = c.SampleWidth
	opts.QuantizeStep = c.QuantizeStep
	opts.FillPadding = c.FillPadding
	opts.Workers = c.Workers
	return opts
}

// OCROptions returns the default text detection settings.
func (c *Config) OCROptions() ocr.Options {
	opts := ocr.DefaultOptions()
	opts.Language = c.OCRLanguage
	opts.MinConfidence = c.MinConfidence
	return opts
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return defaultValue, fmt.Errorf("%s%s: %q is not an integer", EnvPrefix, key, raw)
	}
	return v, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return defaultValue, fmt.Errorf("%s%s: %q is not a number", EnvPrefix, key, raw)
	}
	return v, nil
}
