package export

import (
	"bytes"
	stdctx "context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/tripmap"
	"github.com/agentstation/tripmap/cmd/tripmap/context"
	"github.com/agentstation/tripmap/pkg/logging"
	"github.com/agentstation/tripmap/pkg/venues"
)

func newMock(out *bytes.Buffer) *context.MockContext {
	list := []venues.Venue{
		{Name: "Caruso's", Type: venues.TagRestaurantStar, Lat: 34.41, Lng: -119.60},
		{Name: "Rosewood Miramar Beach", Type: venues.TagHotelLux, Lat: 34.42, Lng: -119.61},
	}
	return &context.MockContext{
		ExplorerFunc: func(ctx stdctx.Context, opts ...tripmap.Option) (tripmap.Explorer, error) {
			base := []tripmap.Option{tripmap.WithVenues(list), tripmap.WithLogger(logging.NewNopLogger())}
			return tripmap.New(ctx, append(base, opts...)...)
		},
		Out: out,
	}
}

func TestExportStdout(t *testing.T) {
	var out bytes.Buffer
	cmd := NewCommand(newMock(&out))
	cmd.SetArgs([]string{"--title", "Santa Barbara", "--filter", "hotel-lux"})
	require.NoError(t, cmd.ExecuteContext(stdctx.Background()))

	text := out.String()
	assert.Contains(t, text, "# Santa Barbara")
	assert.Contains(t, text, "Rosewood Miramar Beach")
	assert.NotContains(t, text, "Caruso's")
}

func TestExportFile(t *testing.T) {
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "trip.md")
	cmd := NewCommand(newMock(&out))
	cmd.SetArgs([]string{"--out", path, "--sort", "stars-desc"})
	require.NoError(t, cmd.ExecuteContext(stdctx.Background()))

	assert.Zero(t, out.Len())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Trip Sheet")
	assert.Contains(t, string(data), "Caruso's")
}
