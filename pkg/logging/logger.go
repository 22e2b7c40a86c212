// Package logging provides structured logging for the tripmap system using zerolog.
// It offers human-readable console output in terminals and structured JSON
// output everywhere else.
//
// Example usage:
//
//	log := logging.Default()
//	log.Info().Str("venue", "Cafe X").Int("rating", 4).Msg("Rating saved")
//
//	ctx := logging.WithLogger(context.Background(), log)
//	logging.FromContext(ctx).Debug().Msg("Using logger from context")
package logging

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// AppField is the field the default logger tags every line with, so
// explorer logs stay recognizable inside a host program's output.
const AppField = "app"

var defaultLogger zerolog.Logger

func init() {
	defaultLogger = NewLoggerFromConfig(ConfigFromEnv()).
		With().
		Str(AppField, "tripmap").
		Logger()
}

// ConfigFromEnv reads TRIPMAP_LOG_LEVEL, TRIPMAP_LOG_FORMAT and
// TRIPMAP_LOG_OUTPUT. The unprefixed LOG_LEVEL and LOG_FORMAT are honored
// when the prefixed ones are unset, and DEBUG turns on debug level.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()
	switch {
	case env("TRIPMAP_LOG_LEVEL", "LOG_LEVEL") != "":
		cfg.Level = env("TRIPMAP_LOG_LEVEL", "LOG_LEVEL")
	case os.Getenv("DEBUG") != "":
		cfg.Level = "debug"
	}
	if format := env("TRIPMAP_LOG_FORMAT", "LOG_FORMAT"); format != "" {
		cfg.Format = format
	}
	if output := os.Getenv("TRIPMAP_LOG_OUTPUT"); output != "" {
		cfg.Output = output
	}
	return cfg
}

func env(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// Default returns the default global logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault sets the default global logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}

// Debug starts a new debug level log event.
func Debug() *zerolog.Event {
	return defaultLogger.Debug()
}

// Info starts a new info level log event.
func Info() *zerolog.Event {
	return defaultLogger.Info()
}

// Warn starts a new warning level log event.
func Warn() *zerolog.Event {
	return defaultLogger.Warn()
}

// Error starts a new error level log event.
func Error() *zerolog.Event {
	return defaultLogger.Error()
}

// isTerminal reports whether stderr is a terminal.
func isTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
