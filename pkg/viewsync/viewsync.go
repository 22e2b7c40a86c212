// Package viewsync applies reconciled visible sets to a Presenter and keeps
// the marker layer and the list consistent with each other.
//
// ViewSync exclusively owns the venue to marker correspondence: a map from
// venue id to presenter handle built once at construction, plus a name
// index used for every cross-reference lookup. A ViewSync is not safe for
// concurrent use; callers serialize access.
package viewsync

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/tripmap/pkg/constants"
	"github.com/agentstation/tripmap/pkg/errors"
	"github.com/agentstation/tripmap/pkg/geo"
	"github.com/agentstation/tripmap/pkg/logging"
	"github.com/agentstation/tripmap/pkg/reconciler"
	"github.com/agentstation/tripmap/pkg/venues"
)

// none marks the absence of a highlighted venue.
const none venues.ID = -1

// ViewSync keeps a Presenter in step with reconciled results.
type ViewSync struct {
	presenter Presenter
	set       *venues.Set
	logger    *zerolog.Logger

	handles map[venues.ID]Handle
	visible map[venues.ID]bool

	highlighted venues.ID
	active      string
	last        *reconciler.Result
	compact     bool
}

// Option configures a ViewSync.
type Option func(*ViewSync)

// WithLogger sets the logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *ViewSync) {
		s.logger = logger
	}
}

// New creates one marker per venue, shows them all and fits the viewport
// to their bounds with the initial padding.
func New(p Presenter, set *venues.Set, opts ...Option) (*ViewSync, error) {
	if set == nil {
		set = venues.Empty()
	}
	s := &ViewSync{
		presenter:   p,
		set:         set,
		handles:     make(map[venues.ID]Handle, set.Len()),
		visible:     make(map[venues.ID]bool, set.Len()),
		highlighted: none,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.Default()
	}

	var bounds geo.Bounds
	for _, id := range set.IDs() {
		v, _ := set.Get(id)
		h, err := p.CreateMarker(v)
		if err != nil {
			return nil, errors.WrapResource("create", "marker", v.Name, err)
		}
		s.handles[id] = h
		p.ShowMarker(h)
		s.visible[id] = true
		bounds = bounds.Extend(v.Point())
	}
	if !bounds.IsEmpty() {
		p.FitBounds(bounds.Pad(constants.InitialFitPadding))
	}
	return s, nil
}

// Apply shows exactly the markers of result, hides the rest, rebuilds the
// list from the same result and re-fits the viewport to the visible
// markers. An empty result leaves the viewport where it is.
func (s *ViewSync) Apply(result *reconciler.Result, compact bool) {
	var bounds geo.Bounds
	for _, id := range s.set.IDs() {
		h := s.handles[id]
		if result.Contains(id) {
			v, _ := s.set.Get(id)
			bounds = bounds.Extend(v.Point())
			s.presenter.ShowMarker(h)
			s.visible[id] = true
		} else {
			s.presenter.HideMarker(h)
			s.visible[id] = false
		}
	}

	s.last = result
	s.compact = compact
	if s.active != "" {
		if id, ok := s.set.Lookup(s.active); !ok || !s.visible[id] {
			s.active = ""
		}
	}
	s.presenter.RenderList(List{Result: result, Compact: compact})
	if s.active != "" {
		s.presenter.SetActiveItem(s.active)
	}

	if s.highlighted != none && !s.visible[s.highlighted] {
		s.highlighted = none
	}
	s.renderEmphasis()

	if !bounds.IsEmpty() {
		s.presenter.FitBounds(bounds.Pad(constants.FitPadding))
	}
	s.logger.Debug().Int("visible", result.Len()).Msg("view applied")
}

// Highlight emphasizes the visible venue with id and dims every other
// visible marker. It reports false for unknown or hidden venues.
func (s *ViewSync) Highlight(id venues.ID) bool {
	if _, ok := s.handles[id]; !ok || !s.visible[id] {
		return false
	}
	s.highlighted = id
	s.renderEmphasis()
	return true
}

// ClearHighlight restores every visible marker to base emphasis.
func (s *ViewSync) ClearHighlight() {
	s.highlighted = none
	s.renderEmphasis()
}

// Highlighted returns the emphasized venue, if any.
func (s *ViewSync) Highlighted() (venues.ID, bool) {
	return s.highlighted, s.highlighted != none
}

// Handle returns the marker handle for id.
func (s *ViewSync) Handle(id venues.ID) (Handle, bool) {
	h, ok := s.handles[id]
	return h, ok
}

// Visible reports whether the marker for id is shown.
func (s *ViewSync) Visible(id venues.ID) bool {
	return s.visible[id]
}

// VisibleIDs returns the shown venue ids in dataset order.
func (s *ViewSync) VisibleIDs() []venues.ID {
	var ids []venues.ID
	for _, id := range s.set.IDs() {
		if s.visible[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// Last returns the most recently applied result, or nil.
func (s *ViewSync) Last() *reconciler.Result {
	return s.last
}

// Active returns the name of the active list item, if any.
func (s *ViewSync) Active() string {
	return s.active
}

func (s *ViewSync) renderEmphasis() {
	for _, id := range s.set.IDs() {
		if !s.visible[id] {
			continue
		}
		e := Base
		if s.highlighted != none {
			e = Dimmed
			if id == s.highlighted {
				e = Emphasized
			}
		}
		s.presenter.SetEmphasis(s.handles[id], e)
	}
}
