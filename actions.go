package tripmap

import (
	"context"

	"github.com/agentstation/tripmap/pkg/errors"
	"github.com/agentstation/tripmap/pkg/geo"
	"github.com/agentstation/tripmap/pkg/logging"
	"github.com/agentstation/tripmap/pkg/prefs"
	"github.com/agentstation/tripmap/pkg/ratings"
	"github.com/agentstation/tripmap/pkg/selection"
	"github.com/agentstation/tripmap/pkg/venues"
	"github.com/agentstation/tripmap/pkg/viewsync"
)

// ToggleFilter flips tag in the active filter set.
func (e *explorer) ToggleFilter(tag venues.Tag) {
	e.update(func(s selection.State) selection.State { return s.ToggleFilter(tag) })
}

// SetFilters replaces the active filter set.
func (e *explorer) SetFilters(tags ...venues.Tag) {
	e.update(func(s selection.State) selection.State { return s.WithFilters(tags...) })
}

// SetSort changes the list ordering.
func (e *explorer) SetSort(mode selection.SortMode) {
	e.update(func(s selection.State) selection.State { return s.WithSort(mode) })
}

// SetMode switches between browsing and the itinerary.
func (e *explorer) SetMode(mode selection.Mode) {
	e.update(func(s selection.State) selection.State { return s.WithMode(mode) })
}

// SetCompact toggles the compact list.
func (e *explorer) SetCompact(compact bool) {
	e.update(func(s selection.State) selection.State { return s.WithCompact(compact) })
}

// Rate toggles the rating of name with star. The view is reconciled once
// with the optimistic value and again when the write settles. Only unknown
// venues, stars outside [1,5] and a canceled ctx are errors.
func (e *explorer) Rate(ctx context.Context, name string, star ratings.Rating) (ratings.Rating, error) {
	if _, ok := e.set.Lookup(name); !ok {
		return ratings.Unrated, errors.NewNotFoundError("venue", name)
	}
	ctx = logging.WithOperation(logging.WithVenue(logging.WithLogger(ctx, e.logger), name), "rate")
	m, err := e.store.SetRating(ctx, name, star)
	if err != nil {
		return ratings.Unrated, err
	}
	return m.Get(name), nil
}

// Menu returns the menu of the named venue.
func (e *explorer) Menu(name string) (*venues.Menu, error) {
	v, ok := e.set.Find(name)
	if !ok {
		return nil, errors.NewNotFoundError("venue", name)
	}
	if !v.HasMenu() {
		return nil, errors.NewNotFoundError("menu", name)
	}
	return v.Menu, nil
}

// Theme returns the persisted theme preference.
func (e *explorer) Theme() prefs.Theme {
	theme, err := prefs.ReadTheme(e.store.Local())
	if err != nil {
		e.logger.Warn().Err(err).Msg("theme preference unreadable")
	}
	return theme
}

// ToggleTheme flips and persists the theme preference.
func (e *explorer) ToggleTheme() (prefs.Theme, error) {
	theme := e.Theme().Toggle()
	if err := prefs.WriteTheme(e.store.Local(), theme); err != nil {
		return e.Theme(), err
	}
	return theme, nil
}

// interact runs a view interaction under the reconciliation lock.
func (e *explorer) interact(fn func(*viewsync.ViewSync, string) bool, name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.view, name)
}

// HoverItem highlights the venue of a hovered list item.
func (e *explorer) HoverItem(name string) bool {
	return e.interact((*viewsync.ViewSync).HoverItem, name)
}

// LeaveItem clears the highlight when the pointer leaves a list item.
func (e *explorer) LeaveItem(name string) bool {
	return e.interact((*viewsync.ViewSync).LeaveItem, name)
}

// ClickItem focuses the venue of a clicked list item.
func (e *explorer) ClickItem(name string) bool {
	return e.interact((*viewsync.ViewSync).ClickItem, name)
}

// HoverSlot highlights the venue of a hovered itinerary slot.
func (e *explorer) HoverSlot(name string) bool {
	return e.interact((*viewsync.ViewSync).HoverSlot, name)
}

// LeaveSlot clears the highlight when the pointer leaves an itinerary slot.
func (e *explorer) LeaveSlot(name string) bool {
	return e.interact((*viewsync.ViewSync).LeaveSlot, name)
}

// ClickSlot flies to the venue of a clicked itinerary slot.
func (e *explorer) ClickSlot(name string) bool {
	return e.interact((*viewsync.ViewSync).ClickSlot, name)
}

// discard is the presenter used when none is configured.
type discard struct{}

func (discard) CreateMarker(v venues.Venue) (viewsync.Handle, error) {
	return viewsync.Handle(v.Name), nil
}

func (discard) ShowMarker(viewsync.Handle)                     {}
func (discard) HideMarker(viewsync.Handle)                     {}
func (discard) SetEmphasis(viewsync.Handle, viewsync.Emphasis) {}
func (discard) OpenPopup(viewsync.Handle)                      {}
func (discard) ClosePopup(viewsync.Handle)                     {}
func (discard) RenderList(viewsync.List)                       {}
func (discard) SetActiveItem(string)                           {}
func (discard) ShowMessage(string)                             {}
func (discard) FitBounds(geo.Bounds)                           {}
func (discard) FlyTo(geo.Point, int)                           {}
