package reconciler

import (
	"github.com/agentstation/tripmap/pkg/ratings"
	"github.com/agentstation/tripmap/pkg/selection"
	"github.com/agentstation/tripmap/pkg/venues"
)

// Entry is one visible venue in display order.
type Entry struct {
	ID     venues.ID
	Venue  venues.Venue
	Rating ratings.Rating

	// Group is the group label under grouped sorting and empty otherwise.
	Group string
}

// Section is a non-empty display group under grouped sorting.
type Section struct {
	Tag     venues.Tag
	Label   string
	Entries []Entry
}

// Result is the ordered visible set for one selection state.
type Result struct {
	Mode    selection.Mode
	Sort    selection.SortMode
	Entries []Entry

	// Sections is set only under grouped sorting. Its entries concatenate
	// to Entries.
	Sections []Section

	ids map[venues.ID]bool
}

func newResult(state selection.State, entries []Entry) *Result {
	r := &Result{
		Mode:    state.Mode,
		Sort:    state.Sort,
		Entries: entries,
		ids:     make(map[venues.ID]bool, len(entries)),
	}
	for _, e := range entries {
		r.ids[e.ID] = true
	}
	if state.Sort == selection.GroupedDefault {
		r.Sections = sections(entries)
	}
	return r
}

// Grouped reports whether group headers apply.
func (r *Result) Grouped() bool {
	return r.Sort == selection.GroupedDefault
}

// Len returns the number of visible venues.
func (r *Result) Len() int {
	return len(r.Entries)
}

// Empty reports whether nothing is visible.
func (r *Result) Empty() bool {
	return len(r.Entries) == 0
}

// Contains reports whether the venue with id is visible.
func (r *Result) Contains(id venues.ID) bool {
	return r.ids[id]
}

// IDs returns the visible ids in display order.
func (r *Result) IDs() []venues.ID {
	ids := make([]venues.ID, len(r.Entries))
	for i, e := range r.Entries {
		ids[i] = e.ID
	}
	return ids
}

// Names returns the visible venue names in display order.
func (r *Result) Names() []string {
	names := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		names[i] = e.Venue.Name
	}
	return names
}

// sections splits grouped entries at group boundaries.
func sections(entries []Entry) []Section {
	var out []Section
	for _, e := range entries {
		if n := len(out); n > 0 && out[n-1].Tag == e.Venue.Type {
			out[n-1].Entries = append(out[n-1].Entries, e)
			continue
		}
		out = append(out, Section{Tag: e.Venue.Type, Label: e.Group, Entries: []Entry{e}})
	}
	return out
}
