package serve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/tripmap/cmd/tripmap/context"
	"github.com/agentstation/tripmap/pkg/constants"
	"github.com/agentstation/tripmap/pkg/errors"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Setenv(envPort, "")
	t.Setenv(envHost, "")
	t.Setenv(envToken, "")

	cmd := NewCommand(&context.MockContext{})
	require.NoError(t, cmd.ParseFlags(nil))

	cfg, err := parseConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.Addr())
	assert.Equal(t, constants.RatingsKey, cfg.Key)
	assert.True(t, cfg.CORSEnabled)
	assert.Empty(t, cfg.Token)
	assert.Equal(t, "X-API-Key", cfg.AuthHeader)
	assert.Equal(t, constants.ServerIdleTimeout, cfg.IdleTimeout)
}

func TestParseConfigFlagsAndEnv(t *testing.T) {
	t.Setenv(envPort, "9090")
	t.Setenv(envHost, "0.0.0.0")
	t.Setenv(envToken, "from-env")

	cmd := NewCommand(&context.MockContext{})
	require.NoError(t, cmd.ParseFlags([]string{"--port", "3000", "--cors-origins", "https://a.example,https://b.example", "--key", "trip"}))

	cfg, err := parseConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.Addr(), "environment overrides the listener flags")
	assert.Equal(t, "from-env", cfg.Token)
	assert.Equal(t, "trip", cfg.Key)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)

	require.NoError(t, cmd.ParseFlags([]string{"--token", "from-flag"}))
	cfg, err = parseConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.Token, "the flag wins over the environment")
}

func TestParsePort(t *testing.T) {
	port, err := parsePort("8443")
	require.NoError(t, err)
	assert.Equal(t, 8443, port)

	for _, bad := range []string{"http", "0", "70000"} {
		_, err := parsePort(bad)
		assert.True(t, errors.IsValidationError(err), bad)
	}
}

func TestParseConfigBadPort(t *testing.T) {
	t.Setenv(envPort, "")
	t.Setenv(envHost, "")
	cmd := NewCommand(&context.MockContext{})
	require.NoError(t, cmd.ParseFlags([]string{"--port", "0"}))
	_, err := parseConfig(cmd)
	assert.Error(t, err)
}
