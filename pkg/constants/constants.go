// Package constants provides shared constants used throughout the tripmap codebase.
// This includes timeouts, file permissions, storage keys, and the presentation
// values the view layer applies to markers and viewports.
package constants

import "time"

// Timeout constants
const (
	// ShutdownTimeout bounds graceful shutdown of the reference rating service
	ShutdownTimeout = 5 * time.Second

	// ServerReadTimeout is the default HTTP read timeout for the rating service
	ServerReadTimeout = 10 * time.Second

	// ServerWriteTimeout is the default HTTP write timeout for the rating service
	ServerWriteTimeout = 10 * time.Second

	// ServerIdleTimeout is the default HTTP idle timeout for the rating service
	ServerIdleTimeout = 120 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Storage keys used by the local fallback tier
const (
	// RatingsKey holds the serialized rating mapping
	RatingsKey = "sb-ratings"

	// ThemeKey holds the map theme preference
	ThemeKey = "sb-map-theme"
)

// Rating service defaults
const (
	// RatingsPath is the path of the rating service endpoint
	RatingsPath = "/api/ratings"

	// MaxRequestBody limits POST bodies accepted by the rating service
	MaxRequestBody = 64 << 10

	// MaxResponseBody limits responses read from the rating service
	MaxResponseBody = 4 << 20
)

// Rating bounds
const (
	// MinStar is the lowest star a user can click
	MinStar = 1

	// MaxStar is the highest star a user can click
	MaxStar = 5
)

// Viewport constants
const (
	// InitialFitPadding pads the bounds of all markers on first load
	InitialFitPadding = 0.12

	// FitPadding pads the bounds of the visible markers after every reconciliation
	FitPadding = 0.15

	// FocusZoom is the zoom level used when flying to a single venue
	FocusZoom = 16
)

// Marker emphasis constants
const (
	// EmphasizedOpacity is the opacity of the highlighted marker
	EmphasizedOpacity = 1.0

	// DimmedOpacity is the opacity of every other marker while one is highlighted
	DimmedOpacity = 0.3

	// EmphasizedZIndex lifts the highlighted marker above the others
	EmphasizedZIndex = 1000

	// BaseZIndex is the stacking order of markers at rest
	BaseZIndex = 400

	// EmphasizedScale enlarges the highlighted marker glyph
	EmphasizedScale = 1.4

	// BaseScale is the glyph scale of markers at rest
	BaseScale = 1.0
)

// Output format constants
const (
	// FormatTable is the default table output format
	FormatTable = "table"

	// FormatJSON is the JSON output format
	FormatJSON = "json"

	// FormatYAML is the YAML output format
	FormatYAML = "yaml"

	// FormatMarkdown is the markdown export format
	FormatMarkdown = "markdown"
)
