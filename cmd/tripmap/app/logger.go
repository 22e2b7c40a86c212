package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/tripmap/pkg/logging"
)

// NewLogger creates a configured logger based on the application configuration.
// Log level precedence (highest to lowest):
//  1. --log-level flag or TRIPMAP_LOG_LEVEL
//  2. -v/--verbose flag (shortcut for debug)
//  3. -q/--quiet flag (shortcut for warn)
//  4. Default (info)
//
// Warnings about the configuration itself go to warn.
func NewLogger(config *Config, warn io.Writer) zerolog.Logger {
	level := determineLogLevel(config, warn)

	return logging.NewLoggerFromConfig(&logging.Config{
		Level:     level,
		Format:    config.LogFormat,
		Output:    config.LogOutput,
		NoColor:   config.NoColor,
		AddCaller: level == "debug" || level == "trace",
	})
}

// determineLogLevel determines the log level using clear precedence rules.
func determineLogLevel(config *Config, warn io.Writer) string {
	if config.LogLevel != "" {
		level := strings.ToLower(config.LogLevel)
		if !validLogLevel(level) {
			fmt.Fprintf(warn, "Warning: invalid log level %q, using %q\n", config.LogLevel, "info")
			return "info"
		}
		return level
	}

	switch {
	case config.Verbose && config.Quiet:
		fmt.Fprintf(warn, "Warning: both --verbose and --quiet specified, using --quiet\n")
		return "warn"
	case config.Verbose:
		return "debug"
	case config.Quiet:
		return "warn"
	default:
		return "info"
	}
}

func validLogLevel(level string) bool {
	switch level {
	case "trace", "debug", "info", "warn", "error":
		return true
	}
	return false
}
