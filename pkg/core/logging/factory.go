// ============================================================================
// textio - Text data file toolkit
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating configured loggers
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	tiolog "github.com/JoyPoint/textio/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name, shown in every entry
	Name string

	// Log level (trace, debug, info, warn, error, fatal, audit)
	Level string

	// Output format: json, text, console or logfmt (default: console)
	Format string

	// Primary output (default: stderr)
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer

	// Record the calling function, file and line
	EnableCaller bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "info",
		Format: "console",
	}
}

// NewLogger creates a new Foundation logger. Unknown levels fall back to
// info and unknown formats to console.
func NewLogger(cfg LoggerConfig) *tiolog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return tiolog.NewWithConfig(tiolog.Config{
		Level:        parseLevel(cfg.Level),
		Format:       parseFormat(cfg.Format),
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: cfg.EnableCaller,
	})
}

// NewRunLogger creates a logger whose entries all carry the same freshly
// generated run id as correlation id, and returns that id.
func NewRunLogger(cfg LoggerConfig) (*tiolog.Logger, string) {
	runID := uuid.New().String()
	return NewLogger(cfg).WithCorrelationID(runID), runID
}

// parseLevel converts a string level to tiolog.Level
func parseLevel(level string) tiolog.Level {
	l, err := tiolog.ParseLevel(level)
	if err != nil {
		return tiolog.LevelInfo
	}
	return l
}

// parseFormat converts a string format to tiolog.Format
func parseFormat(format string) tiolog.Format {
	f, err := tiolog.ParseFormat(format)
	if err != nil {
		return tiolog.FormatConsole
	}
	return f
}
