package validate

import (
	"bytes"
	stdctx "context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/tripmap"
	"github.com/agentstation/tripmap/cmd/tripmap/context"
	"github.com/agentstation/tripmap/pkg/errors"
	"github.com/agentstation/tripmap/pkg/logging"
	"github.com/agentstation/tripmap/pkg/venues"
)

func newMock(out *bytes.Buffer, opts ...tripmap.Option) *context.MockContext {
	return &context.MockContext{
		ExplorerFunc: func(ctx stdctx.Context, _ ...tripmap.Option) (tripmap.Explorer, error) {
			return tripmap.New(ctx, append([]tripmap.Option{tripmap.WithLogger(logging.NewNopLogger())}, opts...)...)
		},
		Out: out,
	}
}

func itinerary(names ...string) *venues.Itinerary {
	day := venues.Day{Title: "Day 1"}
	for _, name := range names {
		day.Slots = append(day.Slots, venues.Slot{Title: "Visit", Venue: name})
	}
	return &venues.Itinerary{Days: []venues.Day{day}}
}

var sample = []venues.Venue{
	{Name: "Caruso's", Type: venues.TagRestaurantStar, Lat: 34.41, Lng: -119.60},
	{Name: "Solvang Bakery", Type: venues.TagDayTrip, Lat: 34.59, Lng: -120.13},
}

func validate(t *testing.T, opts ...tripmap.Option) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewCommand(newMock(&out, opts...))
	cmd.SetArgs(nil)
	err := cmd.ExecuteContext(stdctx.Background())
	return out.String(), err
}

func TestValidateOK(t *testing.T) {
	text, err := validate(t, tripmap.WithVenues(sample), tripmap.WithItinerary(itinerary("Caruso's", "Solvang Bakery")))
	require.NoError(t, err)
	assert.Contains(t, text, "Dataset: 2 venues")
	assert.Contains(t, text, "Itinerary: 1 days, 2 venues")
}

func TestValidateWithoutItinerary(t *testing.T) {
	text, err := validate(t, tripmap.WithVenues(sample))
	require.NoError(t, err)
	assert.Contains(t, text, "Itinerary: none loaded")
}

func TestValidateUnresolved(t *testing.T) {
	text, err := validate(t, tripmap.WithVenues(sample), tripmap.WithItinerary(itinerary("Caruso's", "Lost Bar")))
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, text, "Lost Bar")
}

func TestValidateDataset(t *testing.T) {
	broken := []venues.Venue{{Name: "No Type", Lat: 1, Lng: 1}}
	text, err := validate(t, tripmap.WithVenues(broken))
	assert.True(t, errors.IsValidationError(err))
	assert.Contains(t, text, "Dataset:")
}
