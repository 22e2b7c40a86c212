package logging_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/tripmap/pkg/logging"
)

func TestConfigFunctions(t *testing.T) {
	originalLogger := *logging.Default()
	originalLevel := zerolog.GlobalLevel()
	defer func() {
		logging.SetDefault(originalLogger)
		zerolog.SetGlobalLevel(originalLevel)
	}()

	t.Run("DefaultConfig returns sensible defaults", func(t *testing.T) {
		cfg := logging.DefaultConfig()
		assert.Equal(t, "info", cfg.Level)
		assert.Equal(t, "auto", cfg.Format)
		assert.Equal(t, "stderr", cfg.Output)
		assert.False(t, cfg.AddCaller)
	})

	t.Run("Configure filters below level", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "log.txt")
		logging.Configure(&logging.Config{Level: "warn", Format: "json", Output: path})

		logging.Debug().Msg("debug message")
		logging.Info().Msg("info message")
		logging.Warn().Msg("warn message")
		logging.Error().Msg("error message")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		output := string(content)
		assert.NotContains(t, output, "debug message")
		assert.NotContains(t, output, "info message")
		assert.Contains(t, output, "warn message")
		assert.Contains(t, output, "error message")
	})

	t.Run("console format uses short level names", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "log.txt")
		logger := logging.NewLoggerFromConfig(&logging.Config{Level: "info", Format: "console", Output: path, NoColor: true})
		logger.Info().Str("key", "value").Msg("console test")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "console test")
		assert.Contains(t, string(content), "INF")
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"off", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logging.ParseLevel(tt.in))
		})
	}
}

func TestContextLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), tl.Logger)
	ctx = logging.WithVenue(ctx, "Cafe X")
	ctx = logging.WithOperation(ctx, "rate")
	logging.FromContext(ctx).Info().Msg("hello")

	assert.True(t, tl.Contains(`"venue":"Cafe X"`))
	assert.True(t, tl.Contains(`"operation":"rate"`))
	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
}

func TestConfigFromEnv(t *testing.T) {
	for _, key := range []string{"TRIPMAP_LOG_LEVEL", "LOG_LEVEL", "DEBUG", "TRIPMAP_LOG_FORMAT", "LOG_FORMAT", "TRIPMAP_LOG_OUTPUT"} {
		t.Setenv(key, "")
	}

	cfg := logging.ConfigFromEnv()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "auto", cfg.Format)
	assert.Equal(t, "stderr", cfg.Output)

	t.Setenv("DEBUG", "1")
	assert.Equal(t, "debug", logging.ConfigFromEnv().Level)

	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "console")
	cfg = logging.ConfigFromEnv()
	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, "console", cfg.Format)

	t.Setenv("TRIPMAP_LOG_LEVEL", "error")
	t.Setenv("TRIPMAP_LOG_FORMAT", "json")
	t.Setenv("TRIPMAP_LOG_OUTPUT", "discard")
	cfg = logging.ConfigFromEnv()
	assert.Equal(t, "error", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "discard", cfg.Output)
}

func TestCallerOnlyWhenRequested(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(originalLevel)

	dir := t.TempDir()
	plain := filepath.Join(dir, "plain.txt")
	logger := logging.NewLoggerFromConfig(&logging.Config{Level: "debug", Format: "json", Output: plain})
	logger.Debug().Msg("no caller")

	withCaller := filepath.Join(dir, "caller.txt")
	logger = logging.NewLoggerFromConfig(&logging.Config{Level: "debug", Format: "json", Output: withCaller, AddCaller: true})
	logger.Debug().Msg("caller")

	content, err := os.ReadFile(plain)
	require.NoError(t, err)
	assert.NotContains(t, string(content), `"caller"`)

	content, err = os.ReadFile(withCaller)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"caller"`)
}
