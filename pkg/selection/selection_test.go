package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/tripmap/pkg/venues"
)

func TestNewActivatesAllTags(t *testing.T) {
	s := New()
	assert.Equal(t, Browse, s.Mode)
	assert.Equal(t, GroupedDefault, s.Sort)
	assert.Equal(t, venues.AllTags(), s.ActiveTags())
}

func TestToggleFilter(t *testing.T) {
	s := State{}.WithFilters(venues.TagHotelLux)

	on := s.ToggleFilter(venues.TagDayTrip)
	assert.Equal(t, []venues.Tag{venues.TagHotelLux, venues.TagDayTrip}, on.ActiveTags())
	assert.Equal(t, []venues.Tag{venues.TagHotelLux}, s.ActiveTags(), "original state is untouched")

	off := on.ToggleFilter(venues.TagHotelLux)
	assert.Equal(t, []venues.Tag{venues.TagDayTrip}, off.ActiveTags())

	assert.Empty(t, off.ToggleFilter(venues.TagDayTrip).ActiveTags())
	assert.Equal(t, off.ActiveTags(), off.ToggleFilter("spa").ActiveTags())
}

func TestWithFiltersIgnoresUnknownTags(t *testing.T) {
	s := State{}.WithFilters("spa", venues.TagHotelMid)
	assert.Equal(t, []venues.Tag{venues.TagHotelMid}, s.ActiveTags())
	assert.False(t, s.Active("spa"))
}

func TestModeSwitchKeepsFilters(t *testing.T) {
	s := State{}.WithFilters(venues.TagHotelLux).WithMode(Itinerary)
	assert.Equal(t, Itinerary, s.Mode)

	back := s.WithMode(Browse)
	assert.Equal(t, []venues.Tag{venues.TagHotelLux}, back.ActiveTags())
}

func TestParse(t *testing.T) {
	m, err := ParseMode("itinerary")
	require.NoError(t, err)
	assert.Equal(t, Itinerary, m)
	_, err = ParseMode("map")
	assert.Error(t, err)

	for name, want := range map[string]SortMode{
		"":           GroupedDefault,
		"default":    GroupedDefault,
		"stars-desc": StarDescending,
		"desc":       StarDescending,
		"stars-asc":  StarAscending,
	} {
		got, err := ParseSortMode(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err = ParseSortMode("alpha")
	assert.Error(t, err)

	assert.Equal(t, "stars-desc", StarDescending.String())
	assert.Equal(t, "itinerary", Itinerary.String())
}

func TestCompact(t *testing.T) {
	assert.True(t, State{}.WithCompact(true).Compact)
}
