// Package tripmap is an interactive point-of-interest explorer engine.
//
// An Explorer keeps three coupled presentations consistent: map markers, a
// grouped or star-sorted list, and itinerary cross-references. User actions
// mutate the selection state or the ratings, after which the visible set is
// reconciled from scratch and applied to the presenter in one step.
//
// Ratings go through a two-tier store: a remote authoritative service and a
// local fallback. Remote failures never reach the caller.
//
// Example usage:
//
//	ex, err := tripmap.New(ctx,
//	    tripmap.WithDatasetPath("locations.json"),
//	    tripmap.WithItineraryPath("itinerary.yaml"),
//	    tripmap.WithRemoteURL("http://localhost:8080"),
//	    tripmap.WithPresenter(presenter),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ex.Close()
//
//	ex.ToggleFilter(venues.TagHotelLux)
//	ex.SetSort(selection.StarDescending)
//	if _, err := ex.Rate(ctx, "Caruso's", 5); err != nil {
//	    log.Fatal(err)
//	}
package tripmap

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/tripmap/pkg/errors"
	"github.com/agentstation/tripmap/pkg/logging"
	"github.com/agentstation/tripmap/pkg/prefs"
	"github.com/agentstation/tripmap/pkg/ratings"
	"github.com/agentstation/tripmap/pkg/ratings/memory"
	"github.com/agentstation/tripmap/pkg/reconciler"
	"github.com/agentstation/tripmap/pkg/selection"
	"github.com/agentstation/tripmap/pkg/venues"
	"github.com/agentstation/tripmap/pkg/viewsync"
)

// Compile-time interface check to ensure proper implementation.
var _ Explorer = (*explorer)(nil)

// Views provides read access to the current state.
type Views interface {
	// Venues returns the loaded venue set. It is empty after a dataset failure.
	Venues() *venues.Set

	// Itinerary returns the loaded itinerary, or nil.
	Itinerary() *venues.Itinerary

	// State returns the current selection state.
	State() selection.State

	// Result returns the most recently applied visible set.
	Result() *reconciler.Result

	// Ratings returns a snapshot of the rating cache.
	Ratings() ratings.Mapping

	// DatasetErr returns the dataset load failure, if any.
	DatasetErr() error
}

// Actions mutates the selection state. Each action reconciles and applies
// the view before returning.
type Actions interface {
	ToggleFilter(tag venues.Tag)
	SetFilters(tags ...venues.Tag)
	SetSort(mode selection.SortMode)
	SetMode(mode selection.Mode)
	SetCompact(compact bool)

	// Rate toggles the rating of the named venue and returns the settled value.
	Rate(ctx context.Context, name string, star ratings.Rating) (ratings.Rating, error)
}

// Interactions forwards list and itinerary events to the view. Each
// reports whether the named venue was found and visible.
type Interactions interface {
	HoverItem(name string) bool
	LeaveItem(name string) bool
	ClickItem(name string) bool
	HoverSlot(name string) bool
	LeaveSlot(name string) bool
	ClickSlot(name string) bool
}

// Preferences exposes venue details and view-local settings.
type Preferences interface {
	// Menu returns the menu of the named venue.
	Menu(name string) (*venues.Menu, error)

	// Theme returns the persisted theme preference.
	Theme() prefs.Theme

	// ToggleTheme flips and persists the theme preference.
	ToggleTheme() (prefs.Theme, error)
}

// Hooks provides event callback registration. Callbacks run without any
// explorer lock held and may call other Explorer methods, including Rate.
// A rating written from a callback is delivered to the callbacks after the
// current one returns.
type Hooks interface {
	OnRatingChanged(fn RatingChangedHook)
	OnViewApplied(fn ViewAppliedHook)
}

// Explorer is the view-state reconciliation engine.
type Explorer interface {
	Views
	Actions
	Interactions
	Preferences
	Hooks

	// Close releases the local store.
	Close() error
}

// explorer is the internal implementation of the Explorer interface.
type explorer struct {
	options *options
	logger  *zerolog.Logger

	// immutable after New
	set        *venues.Set
	itinerary  *venues.Itinerary
	references []string
	datasetErr error
	store      *ratings.Store
	presenter  viewsync.Presenter

	// mu serializes every reconciliation so no caller observes a partial view
	mu      sync.Mutex
	state   selection.State
	view    *viewsync.ViewSync
	result  *reconciler.Result
	ratings ratings.Mapping

	hooks *hooks
}

// New loads ratings and the dataset, creates one marker per venue and
// applies the initial view. A dataset failure is not returned: the
// presenter shows a diagnostic and the explorer runs with zero venues.
func New(ctx context.Context, opts ...Option) (Explorer, error) {
	o, err := (&options{}).apply(opts...)
	if err != nil {
		return nil, errors.WrapResource("create", "explorer", "", err)
	}
	if o.logger == nil {
		o.logger = logging.FromContext(ctx)
	}
	if o.local == nil {
		o.local = memory.New()
	}
	if o.presenter == nil {
		o.presenter = discard{}
	}

	e := &explorer{
		options:   o,
		logger:    o.logger,
		presenter: o.presenter,
		state:     selection.New(),
		hooks:     newHooks(),
	}
	if o.state != nil {
		e.state = *o.state
	}

	e.store = ratings.NewStore(
		ratings.WithRemote(o.remote),
		ratings.WithLocal(o.local),
		ratings.WithLogger(o.logger),
	)
	e.ratings = e.store.Load(ctx)
	e.logger.Debug().Int("rated", len(e.ratings.Names())).Msg("ratings loaded")

	e.set, e.datasetErr = loadVenues(o)
	if e.datasetErr != nil {
		e.logger.Error().Err(e.datasetErr).Msg("failed to load venues")
		e.set = venues.Empty()
		e.presenter.ShowMessage(datasetMessage(e.datasetErr))
	}

	e.itinerary = e.loadItinerary()
	e.references = e.itinerary.VenueNames()

	view, err := viewsync.New(e.presenter, e.set, viewsync.WithLogger(e.logger))
	if err != nil {
		return nil, errors.WrapResource("create", "explorer", "", err)
	}
	e.view = view

	e.store.OnChange(e.ratingsChanged)

	e.mu.Lock()
	result := e.applyLocked()
	e.mu.Unlock()
	e.hooks.triggerViewApplied(result)

	e.logger.Info().
		Int("venues", e.set.Len()).
		Int("visible", result.Len()).
		Msg("explorer ready")
	return e, nil
}

func loadVenues(o *options) (*venues.Set, error) {
	switch {
	case o.venues != nil:
		set, err := venues.Build(o.venues)
		if err != nil {
			return nil, errors.WrapDataset("venues", err)
		}
		return set, nil
	case o.datasetPath != "":
		return venues.Load(o.datasetPath)
	default:
		return venues.Empty(), nil
	}
}

func (e *explorer) loadItinerary() *venues.Itinerary {
	it := e.options.itinerary
	if it == nil && e.options.itineraryPath != "" {
		loaded, err := venues.LoadItinerary(e.options.itineraryPath)
		if err != nil {
			e.logger.Warn().Err(err).Str("path", e.options.itineraryPath).Msg("itinerary unavailable")
			return nil
		}
		it = loaded
	}
	if missing := it.Unresolved(e.set); len(missing) > 0 && e.datasetErr == nil {
		e.logger.Warn().Strs("names", missing).Msg("itinerary references unknown venues")
	}
	return it
}

func datasetMessage(err error) string {
	return fmt.Sprintf("⚠️ Failed to load locations: %v", err)
}

// applyLocked reconciles the current state and applies it to the view.
// Callers hold e.mu and trigger the view hooks after unlocking.
func (e *explorer) applyLocked() *reconciler.Result {
	result := reconciler.Reconcile(e.set, e.state, e.references, e.ratings)
	e.view.Apply(result, e.state.Compact)
	if e.datasetErr != nil {
		e.presenter.ShowMessage(datasetMessage(e.datasetErr))
	}
	e.result = result
	return result
}

// update mutates the state and applies the result as one step.
func (e *explorer) update(mutate func(selection.State) selection.State) {
	e.mu.Lock()
	e.state = mutate(e.state)
	result := e.applyLocked()
	e.mu.Unlock()
	e.hooks.triggerViewApplied(result)
}

// ratingsChanged is the rating store callback. The list shows ratings, so
// every cache change reconciles the view.
func (e *explorer) ratingsChanged(m ratings.Mapping) {
	e.mu.Lock()
	old := e.ratings
	e.ratings = m
	result := e.applyLocked()
	e.mu.Unlock()

	e.hooks.triggerRatingsUpdate(old, m)
	e.hooks.triggerViewApplied(result)
}

// Venues returns the loaded venue set.
func (e *explorer) Venues() *venues.Set {
	return e.set
}

// Itinerary returns the loaded itinerary.
func (e *explorer) Itinerary() *venues.Itinerary {
	return e.itinerary
}

// State returns the current selection state.
func (e *explorer) State() selection.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Result returns the most recently applied visible set.
func (e *explorer) Result() *reconciler.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.result
}

// Ratings returns a snapshot of the rating cache.
func (e *explorer) Ratings() ratings.Mapping {
	return e.store.Snapshot()
}

// DatasetErr returns the dataset load failure, if any.
func (e *explorer) DatasetErr() error {
	return e.datasetErr
}

// OnRatingChanged registers a callback for rating changes.
func (e *explorer) OnRatingChanged(fn RatingChangedHook) {
	e.hooks.OnRatingChanged(fn)
}

// OnViewApplied registers a callback for applied views.
func (e *explorer) OnViewApplied(fn ViewAppliedHook) {
	e.hooks.OnViewApplied(fn)
}

// Close releases the local store.
func (e *explorer) Close() error {
	return e.store.Local().Close()
}
