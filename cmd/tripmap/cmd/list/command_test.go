package list

import (
	"bytes"
	stdctx "context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/tripmap"
	"github.com/agentstation/tripmap/cmd/tripmap/context"
	"github.com/agentstation/tripmap/pkg/errors"
	"github.com/agentstation/tripmap/pkg/logging"
	"github.com/agentstation/tripmap/pkg/venues"
)

func testVenues() []venues.Venue {
	return []venues.Venue{
		{Name: "Caruso's", Type: venues.TagRestaurantStar, Lat: 34.41, Lng: -119.60, Address: "8301 Hollister Ave"},
		{Name: "Rosewood Miramar Beach", Type: venues.TagHotelLux, Lat: 34.42, Lng: -119.61},
		{Name: "Hotel Californian", Type: venues.TagHotelLux, Lat: 34.41, Lng: -119.69},
	}
}

func newMock(out *bytes.Buffer, format string) *context.MockContext {
	return &context.MockContext{
		ExplorerFunc: func(ctx stdctx.Context, opts ...tripmap.Option) (tripmap.Explorer, error) {
			base := []tripmap.Option{
				tripmap.WithVenues(testVenues()),
				tripmap.WithLogger(logging.NewNopLogger()),
			}
			return tripmap.New(ctx, append(base, opts...)...)
		},
		OutputFormatFunc: func() string { return format },
		Out:              out,
	}
}

func execute(t *testing.T, mock *context.MockContext, args ...string) error {
	t.Helper()
	cmd := NewCommand(mock)
	cmd.SetArgs(args)
	cmd.SetContext(stdctx.Background())
	return cmd.Execute()
}

func TestListJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, execute(t, newMock(&out, "json"), "--filter", "hotel-lux"))

	var rows []struct {
		Position int    `json:"position"`
		Name     string `json:"name"`
		Type     string `json:"type"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &rows))
	require.Len(t, rows, 2)
	for i, row := range rows {
		assert.Equal(t, i+1, row.Position)
		assert.Equal(t, "hotel-lux", row.Type)
	}
}

func TestListTableCompact(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, execute(t, newMock(&out, "table"), "--compact", "--sort", "stars-desc"))

	text := out.String()
	assert.Contains(t, text, "Caruso's")
	assert.NotContains(t, text, "8301 Hollister Ave")
}

func TestListView(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, execute(t, newMock(&out, "table"), "--view", "--focus", "Caruso's"))

	text := out.String()
	assert.Contains(t, text, "3 venues shown")
	assert.Contains(t, text, "📍 Caruso's")
}

func TestListFocusErrors(t *testing.T) {
	var out bytes.Buffer

	err := execute(t, newMock(&out, "table"), "--focus", "Caruso's")
	assert.True(t, errors.IsValidationError(err), "focus needs --view")

	err = execute(t, newMock(&out, "table"), "--view", "--filter", "hotel-lux", "--focus", "Caruso's")
	assert.True(t, errors.IsNotFound(err), "filtered out venues cannot be focused")
}

func TestListHints(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, execute(t, newMock(&out, "table"), "--filter", "daytrip"))
	assert.Contains(t, out.String(), "No venues match the current filters")

	out.Reset()
	require.NoError(t, execute(t, newMock(&out, "table"), "--mode", "itinerary"))
	assert.Contains(t, out.String(), "No itinerary is loaded")

	out.Reset()
	require.NoError(t, execute(t, newMock(&out, "json"), "--filter", "daytrip"))
	assert.NotContains(t, out.String(), "💡")
}
