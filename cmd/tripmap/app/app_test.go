package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/tripmap/pkg/errors"
	"github.com/agentstation/tripmap/pkg/logging"
)

const testDataset = `[
  {"name": "Caruso's", "lat": 34.4186, "lng": -119.6066, "type": "restaurant-star", "category": "Michelin 1 Star",
   "menu": {"items": [{"name": "Tasting Menu", "desc": "Seasonal coastal Italian"}]}},
  {"name": "Rosewood Miramar Beach", "lat": 34.4195, "lng": -119.6070, "type": "hotel-lux"},
  {"name": "Solvang Bakery", "lat": 34.5958, "lng": -120.1376, "type": "daytrip"}
]`

const testItinerary = `days:
  - title: Day 1
    slots:
      - time: "19:30"
        title: Dinner
        venue: "Caruso's"
      - time: "21:00"
        title: Nightcap
        venue: Lost Bar
`

// newTestApp returns an app running on an in-memory store with its output
// captured.
func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	isolate(t)
	t.Setenv("TRIPMAP_LOG_OUTPUT", "discard")

	dir := t.TempDir()
	dataset := filepath.Join(dir, "locations.json")
	require.NoError(t, os.WriteFile(dataset, []byte(testDataset), 0o600))
	itinerary := filepath.Join(dir, "itinerary.yaml")
	require.NoError(t, os.WriteFile(itinerary, []byte(testItinerary), 0o600))

	config, err := LoadConfig()
	require.NoError(t, err)
	config.DatasetPath = dataset
	config.ItineraryPath = itinerary
	config.LocalStore = StoreMemory

	var stdout bytes.Buffer
	app, err := New("1.0.0", "abc123", "2026-01-01", "test",
		WithConfig(config),
		WithLogger(logging.NewNopLogger()),
		WithOutput(&stdout, &bytes.Buffer{}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Shutdown(context.Background()) })
	return app, &stdout
}

func run(t *testing.T, app *App, out *bytes.Buffer, args ...string) string {
	t.Helper()
	out.Reset()
	require.NoError(t, app.Execute(context.Background(), args))
	return out.String()
}

func TestAppNew(t *testing.T) {
	app, _ := newTestApp(t)

	assert.Equal(t, "1.0.0", app.Version())
	assert.Equal(t, "abc123", app.Commit())
	assert.Equal(t, "2026-01-01", app.Date())
	assert.Equal(t, "test", app.BuiltBy())
	assert.NotNil(t, app.Logger())
	assert.NotNil(t, app.Config())
}

func TestAppExplorerSingleton(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()

	ex1, err := app.Explorer(ctx)
	require.NoError(t, err)
	ex2, err := app.Explorer(ctx)
	require.NoError(t, err)
	assert.Same(t, ex1, ex2)
	assert.Equal(t, 3, ex1.Venues().Len())
	require.NotNil(t, ex1.Itinerary())

	require.NoError(t, app.Shutdown(ctx))
	ex3, err := app.Explorer(ctx)
	require.NoError(t, err)
	assert.NotSame(t, ex1, ex3)
}

func TestAppOpenLocal(t *testing.T) {
	app, _ := newTestApp(t)

	for _, kind := range []string{StoreMemory, StoreFile, StoreBadger} {
		t.Run(kind, func(t *testing.T) {
			local, err := app.OpenLocal(kind, t.TempDir())
			require.NoError(t, err)
			require.NoError(t, local.Put("k", []byte("v")))
			got, found, err := local.Get("k")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, []byte("v"), got)
			require.NoError(t, local.Close())
		})
	}

	_, err := app.OpenLocal("etcd", t.TempDir())
	require.Error(t, err)
	var cfgErr *errors.ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestExecuteList(t *testing.T) {
	app, out := newTestApp(t)

	var rows []struct {
		Name  string `json:"name"`
		Group string `json:"group"`
	}
	require.NoError(t, json.Unmarshal([]byte(run(t, app, out, "list", "-o", "json")), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "Caruso's", rows[0].Name)
	assert.NotEmpty(t, rows[0].Group)
}

func TestExecuteRateAndRatings(t *testing.T) {
	app, out := newTestApp(t)

	assert.Contains(t, run(t, app, out, "rate", "Caruso's", "4", "-o", "table"), "Rated Caruso's ★★★★☆")

	var rows []struct {
		Name   string `json:"name"`
		Rating int    `json:"rating"`
	}
	require.NoError(t, json.Unmarshal([]byte(run(t, app, out, "ratings", "-o", "json")), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Caruso's", rows[0].Name)
	assert.Equal(t, 4, rows[0].Rating)

	// same stars again clears the rating
	assert.Contains(t, run(t, app, out, "rate", "Caruso's", "4", "-o", "table"), "Cleared rating for Caruso's")
}

func TestExecuteErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad format", []string{"list", "-o", "xml"}},
		{"unknown venue", []string{"rate", "Nowhere", "3"}},
		{"stars out of range", []string{"rate", "Caruso's", "6"}},
		{"unknown filter", []string{"list", "--filter", "castle"}},
		{"unresolved itinerary", []string{"validate"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newTestApp(t)
			assert.Error(t, app.Execute(context.Background(), tt.args))
		})
	}
}

func TestExecuteVersion(t *testing.T) {
	app, out := newTestApp(t)

	text := run(t, app, out, "version")
	assert.True(t, strings.HasPrefix(text, "tripmap version 1.0.0\n"))
	assert.Contains(t, text, "commit: abc123")
}
