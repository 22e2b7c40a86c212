package viewsync

import (
	"github.com/agentstation/tripmap/pkg/constants"
	"github.com/agentstation/tripmap/pkg/geo"
	"github.com/agentstation/tripmap/pkg/reconciler"
	"github.com/agentstation/tripmap/pkg/venues"
)

// Handle is an opaque reference to a presenter-owned marker.
type Handle string

// Emphasis is the rendering weight of a marker.
type Emphasis struct {
	Opacity float64
	ZIndex  int
	Scale   float64
}

// Emphasis levels.
var (
	// Emphasized is the single highlighted marker.
	Emphasized = Emphasis{Opacity: constants.EmphasizedOpacity, ZIndex: constants.EmphasizedZIndex, Scale: constants.EmphasizedScale}
	// Dimmed is every other visible marker while one is highlighted.
	Dimmed = Emphasis{Opacity: constants.DimmedOpacity, ZIndex: constants.BaseZIndex, Scale: constants.BaseScale}
	// Base is every visible marker while nothing is highlighted.
	Base = Emphasis{Opacity: constants.EmphasizedOpacity, ZIndex: constants.BaseZIndex, Scale: constants.BaseScale}
)

// List is everything the list presentation needs to rebuild itself.
type List struct {
	Result  *reconciler.Result
	Compact bool
}

// Presenter is the presentation layer: a marker layer, a list and a
// viewport. Markers are created once and only ever shown or hidden.
type Presenter interface {
	// CreateMarker may return a hidden marker. ViewSync shows it.
	CreateMarker(v venues.Venue) (Handle, error)
	ShowMarker(h Handle)
	HideMarker(h Handle)
	SetEmphasis(h Handle, e Emphasis)
	OpenPopup(h Handle)
	ClosePopup(h Handle)

	// RenderList rebuilds the list, which clears the active item.
	RenderList(list List)
	SetActiveItem(name string)
	ShowMessage(msg string)

	FitBounds(b geo.Bounds)
	FlyTo(p geo.Point, zoom int)
}
