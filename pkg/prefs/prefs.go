// Package prefs holds the user preferences the explorer persists next to
// the ratings, in the same local store.
package prefs

import "github.com/agentstation/tripmap/pkg/constants"

// Store is the key-value tier preferences are kept in. Every local rating
// tier satisfies it.
type Store interface {
	Get(key string) (value []byte, found bool, err error)
	Put(key string, value []byte) error
}

// Theme is the persisted map theme preference.
type Theme string

// Known themes. Anything other than ThemeLight reads as ThemeDark.
const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// ReadTheme returns the stored theme, defaulting to dark.
func ReadTheme(store Store) (Theme, error) {
	data, found, err := store.Get(constants.ThemeKey)
	if err != nil || !found {
		return ThemeDark, err
	}
	if Theme(data) == ThemeLight {
		return ThemeLight, nil
	}
	return ThemeDark, nil
}

// WriteTheme stores the theme preference.
func WriteTheme(store Store, theme Theme) error {
	if theme != ThemeLight {
		theme = ThemeDark
	}
	return store.Put(constants.ThemeKey, []byte(theme))
}
