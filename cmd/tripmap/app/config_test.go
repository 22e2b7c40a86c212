package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/tripmap/pkg/errors"
)

// isolate points HOME and the working directory at empty temp dirs so no
// real config or .env file leaks into a test.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TRIPMAP_CONFIG", "")
	t.Chdir(t.TempDir())
	return home
}

func TestLoadConfigDefaults(t *testing.T) {
	home := isolate(t)

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "locations.json", config.DatasetPath)
	assert.Empty(t, config.ItineraryPath)
	assert.Empty(t, config.RatingsURL)
	assert.Equal(t, "bearer", config.RatingsAuth)
	assert.Equal(t, 10*time.Second, config.RatingsTimeout)
	assert.Equal(t, StoreFile, config.LocalStore)
	assert.Equal(t, filepath.Join(home, ".tripmap"), config.LocalPath)
	assert.Equal(t, "auto", config.LogFormat)
	assert.Equal(t, "stderr", config.LogOutput)
	assert.Empty(t, config.ConfigFile)
}

func TestLoadConfigEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("TRIPMAP_VERBOSE", "true")
	t.Setenv("TRIPMAP_FORMAT", "json")
	t.Setenv("TRIPMAP_RATINGS_URL", "http://ratings.local:8080")
	t.Setenv("TRIPMAP_RATINGS_TIMEOUT", "3s")
	t.Setenv("TRIPMAP_LOCAL_STORE", "BADGER")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, config.Verbose)
	assert.Equal(t, "json", config.Format)
	assert.Equal(t, "http://ratings.local:8080", config.RatingsURL)
	assert.Equal(t, 3*time.Second, config.RatingsTimeout)
	assert.Equal(t, StoreBadger, config.LocalStore)
}

func TestLoadConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "trip.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dataset: venues.yaml\nitinerary: trip-days.yaml\nlocal_store: memory\n"), 0o600))

	config, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "venues.yaml", config.DatasetPath)
	assert.Equal(t, "trip-days.yaml", config.ItineraryPath)
	assert.Equal(t, StoreMemory, config.LocalStore)
	assert.Equal(t, path, config.ConfigFile)

	// the environment still wins over the file
	t.Setenv("TRIPMAP_DATASET", "env.json")
	config, err = LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "env.json", config.DatasetPath)
}

func TestLoadConfigHomeFile(t *testing.T) {
	home := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".tripmap.yaml"), []byte("ratings_url: http://home:9000\n"), 0o600))

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://home:9000", config.RatingsURL)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	var cfgErr *errors.ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestLoadConfigDotEnv(t *testing.T) {
	isolate(t)
	t.Cleanup(func() { os.Unsetenv("TRIPMAP_ITINERARY") })
	require.NoError(t, os.WriteFile(".env", []byte("TRIPMAP_ITINERARY=from-dotenv.yaml\n"), 0o600))

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.yaml", config.ItineraryPath)
}

func TestUpdateFromFlags(t *testing.T) {
	config := &Config{Format: "yaml", LogLevel: "info"}

	config.UpdateFromFlags(true, false, true, "", "")
	assert.True(t, config.Verbose)
	assert.True(t, config.NoColor)
	assert.Equal(t, "yaml", config.Format, "empty flag keeps the configured format")
	assert.Equal(t, "info", config.LogLevel)

	config.UpdateFromFlags(false, true, false, "json", "debug")
	assert.False(t, config.Verbose)
	assert.True(t, config.Quiet)
	assert.Equal(t, "json", config.Format)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, home, expandHome("~"))
	assert.Equal(t, filepath.Join(home, "trips"), expandHome("~/trips"))
	assert.Equal(t, "/var/lib/tripmap", expandHome("/var/lib/tripmap"))
	assert.Equal(t, "~other/x", expandHome("~other/x"))
}
