// ============================================================================
// lambda - Parser toolkit for a minimal lambda language
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating command line loggers
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"strings"

	mdwlog "github.com/msto63/lambda/foundation/core/log"
	"github.com/msto63/lambda/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name
	Name string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: json, text, console or logfmt (default: console)
	Format string

	// Destination, stderr when nil
	Output io.Writer

	// Disable colours for the console format
	NoColor bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "console",
	}
}

// FromConfig derives a logger configuration from the tool configuration.
// Each verbosity step lowers the level by one, down to trace.
func FromConfig(name string, cfg *config.Config, verbosity int) LoggerConfig {
	lc := DefaultLoggerConfig(name)
	if cfg != nil {
		lc.Level = cfg.General.LogLevel
		lc.Format = cfg.General.LogFormat
		lc.NoColor = cfg.Output.Color == "never"
	}

	lc.Level = parseLevel(lc.Level).Lower(verbosity).String()

	return lc
}

// NewLogger creates a new Foundation logger
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	level := parseLevel(cfg.Level)

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		format = mdwlog.FormatConsole
	}

	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	})

	if format == mdwlog.FormatConsole && cfg.NoColor {
		formatter := mdwlog.NewConsoleFormatter()
		formatter.DisableColors = true
		logger = logger.WithFormatter(formatter)
	}

	return logger
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(name string) *mdwlog.Logger {
	return NewLogger(DefaultLoggerConfig(name))
}

// parseLevel converts a string level to mdwlog.Level, falling back to warn
func parseLevel(level string) mdwlog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return mdwlog.LevelTrace
	case "debug":
		return mdwlog.LevelDebug
	case "info":
		return mdwlog.LevelInfo
	case "warn", "warning":
		return mdwlog.LevelWarn
	case "error":
		return mdwlog.LevelError
	case "fatal":
		return mdwlog.LevelFatal
	default:
		return mdwlog.LevelWarn
	}
}

// ToFields converts key-value pairs to mdwlog.Fields. Non-string keys and a
// trailing key without value are skipped.
func ToFields(keysAndValues ...interface{}) mdwlog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(mdwlog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
