// ============================================================================
// tmplkit - Project Template Toolkit
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating command loggers from the
//              logging configuration
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	tklog "github.com/tmplkit/tmplkit/foundation/core/log"
	"github.com/tmplkit/tmplkit/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Component name
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: console, json or text (default: console)
	Format string

	// Output writer (default: stderr, so reports on stdout stay clean)
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer

	// Verbose forces debug level when Level is less detailed
	Verbose bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "info",
		Format: "console",
	}
}

// FromConfig builds a LoggerConfig from the [logging] section
func FromConfig(name string, cfg config.LoggingConfig) LoggerConfig {
	lc := DefaultLoggerConfig(name)
	if cfg.Level != "" {
		lc.Level = cfg.Level
	}
	if cfg.Format != "" {
		lc.Format = cfg.Format
	}
	return lc
}

// NewLogger creates a foundation logger. Unknown levels and formats fall
// back to info and console.
func NewLogger(cfg LoggerConfig) *tklog.Logger {
	level := parseLevel(cfg.Level)
	if cfg.Verbose && level > tklog.LevelDebug {
		level = tklog.LevelDebug
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	format, err := tklog.ParseFormat(cfg.Format)
	if err != nil {
		format = tklog.FormatConsole
	}

	return tklog.NewWithConfig(tklog.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: level <= tklog.LevelDebug,
	})
}

// ForRun tags every entry of logger with the run ID of a checker run
func ForRun(logger *tklog.Logger, runID string) *tklog.Logger {
	return logger.WithCorrelationID(runID).WithField("run_id", runID)
}

// parseLevel converts a string level to tklog.Level
func parseLevel(level string) tklog.Level {
	l, err := tklog.ParseLevel(level)
	if err != nil {
		return tklog.LevelInfo
	}
	return l
}
