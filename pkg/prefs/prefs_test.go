package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/tripmap/pkg/constants"
	"github.com/agentstation/tripmap/pkg/ratings/files"
	"github.com/agentstation/tripmap/pkg/ratings/memory"
)

func TestThemeToggle(t *testing.T) {
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeLight, Theme("neon").Toggle())
}

func TestReadWriteTheme(t *testing.T) {
	store := memory.New()

	theme, err := ReadTheme(store)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)

	require.NoError(t, WriteTheme(store, theme.Toggle()))
	theme, err = ReadTheme(store)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)

	require.NoError(t, WriteTheme(store, "neon"))
	theme, err = ReadTheme(store)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)
}

func TestThemeSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	store, err := files.New(dir)
	require.NoError(t, err)
	require.NoError(t, WriteTheme(store, ThemeLight))
	require.NoError(t, store.Close())

	reopened, err := files.New(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	theme, err := ReadTheme(reopened)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)

	data, found, err := reopened.Get(constants.ThemeKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "light", string(data))
}
