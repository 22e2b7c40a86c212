// Package reconciler derives what is shown: the ordered, optionally grouped
// subset of venues selected by the current selection state.
//
// Reconciliation is a pure function of the venue set, the selection state,
// the itinerary references and the current ratings. Every view renders from
// its Result and nothing else.
package reconciler

import (
	"sort"

	"github.com/agentstation/tripmap/pkg/ratings"
	"github.com/agentstation/tripmap/pkg/selection"
	"github.com/agentstation/tripmap/pkg/venues"
)

// RatingLookup returns the current rating of a venue by name.
// Both ratings.Mapping and *ratings.Store satisfy it.
type RatingLookup interface {
	Get(name string) ratings.Rating
}

// Reconciler binds a venue set and its collaborators so callers only pass
// the selection state.
type Reconciler struct {
	venues    *venues.Set
	itinerary []string
	ratings   RatingLookup
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithItinerary sets the venue names referenced by the itinerary.
func WithItinerary(names []string) Option {
	return func(r *Reconciler) {
		r.itinerary = append([]string(nil), names...)
	}
}

// WithRatings sets the rating source used for star sorting.
func WithRatings(lookup RatingLookup) Option {
	return func(r *Reconciler) {
		r.ratings = lookup
	}
}

// New creates a Reconciler over set. A nil set reconciles to nothing.
func New(set *venues.Set, opts ...Option) *Reconciler {
	r := &Reconciler{venues: set}
	for _, opt := range opts {
		opt(r)
	}
	if r.venues == nil {
		r.venues = venues.Empty()
	}
	if r.ratings == nil {
		r.ratings = ratings.Mapping{}
	}
	return r
}

// Reconcile derives the visible set for state.
func (r *Reconciler) Reconcile(state selection.State) *Result {
	return Reconcile(r.venues, state, r.itinerary, r.ratings)
}

// Reconcile derives the visible set for state.
//
// In Browse mode a venue is selected when its tag is an active filter; in
// Itinerary mode when its name is referenced by the itinerary. Grouped
// sorting partitions the selection into the fixed group order and keeps
// dataset order inside each group. Star sorting flattens the selection by
// rating and keeps dataset order between equal ratings. An empty filter set
// selects nothing.
func Reconcile(set *venues.Set, state selection.State, itinerary []string, lookup RatingLookup) *Result {
	if lookup == nil {
		lookup = ratings.Mapping{}
	}
	selected := selectIDs(set, state, itinerary)

	entries := make([]Entry, 0, len(selected))
	for _, id := range selected {
		v, _ := set.Get(id)
		entries = append(entries, Entry{ID: id, Venue: v, Rating: lookup.Get(v.Name)})
	}

	switch state.Sort {
	case selection.StarDescending:
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Rating > entries[j].Rating })
	case selection.StarAscending:
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Rating < entries[j].Rating })
	default:
		entries = group(entries)
	}
	return newResult(state, entries)
}

// selectIDs returns the selected ids in dataset order.
func selectIDs(set *venues.Set, state selection.State, itinerary []string) []venues.ID {
	var include func(venues.Venue) bool
	switch state.Mode {
	case selection.Itinerary:
		referenced := make(map[string]bool, len(itinerary))
		for _, name := range itinerary {
			referenced[name] = true
		}
		include = func(v venues.Venue) bool { return referenced[v.Name] }
	default:
		include = func(v venues.Venue) bool { return state.Filters[v.Type] }
	}

	var ids []venues.ID
	for _, id := range set.IDs() {
		v, _ := set.Get(id)
		if include(v) {
			ids = append(ids, id)
		}
	}
	return ids
}

// group orders entries by the fixed group partition and labels them.
// Venues whose tag is outside the partition are dropped.
func group(entries []Entry) []Entry {
	byTag := make(map[venues.Tag][]Entry)
	for _, e := range entries {
		byTag[e.Venue.Type] = append(byTag[e.Venue.Type], e)
	}

	out := make([]Entry, 0, len(entries))
	for _, g := range venues.Groups() {
		for _, e := range byTag[g.Tag] {
			e.Group = g.Label
			out = append(out, e)
		}
	}
	return out
}
