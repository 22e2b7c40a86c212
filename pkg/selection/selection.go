// Package selection holds the explorer's selection state: mode, active
// filters, sort mode and the compact flag. It performs no I/O.
package selection

import (
	"github.com/agentstation/tripmap/pkg/errors"
	"github.com/agentstation/tripmap/pkg/venues"
)

// Mode selects which venues are candidates.
type Mode int

const (
	// Browse selects venues by the active filter set.
	Browse Mode = iota
	// Itinerary selects venues referenced by the itinerary.
	Itinerary
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Browse:
		return "browse"
	case Itinerary:
		return "itinerary"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "browse", "":
		return Browse, nil
	case "itinerary":
		return Itinerary, nil
	default:
		return Browse, errors.NewValidationError("mode", s, "must be browse or itinerary")
	}
}

// SortMode controls list ordering.
type SortMode int

const (
	// GroupedDefault partitions venues into the fixed group order.
	GroupedDefault SortMode = iota
	// StarDescending flattens venues by rating, highest first.
	StarDescending
	// StarAscending flattens venues by rating, lowest first.
	StarAscending
)

// String returns the sort mode name as used by the CLI.
func (s SortMode) String() string {
	switch s {
	case GroupedDefault:
		return "default"
	case StarDescending:
		return "stars-desc"
	case StarAscending:
		return "stars-asc"
	default:
		return "unknown"
	}
}

// ParseSortMode parses a sort mode name.
func ParseSortMode(s string) (SortMode, error) {
	switch s {
	case "default", "":
		return GroupedDefault, nil
	case "stars-desc", "desc":
		return StarDescending, nil
	case "stars-asc", "asc":
		return StarAscending, nil
	default:
		return GroupedDefault, errors.NewValidationError("sort", s, "must be default, stars-desc or stars-asc")
	}
}

// State is the current selection. The zero value is Browse mode with no
// filters, grouped sorting and full details. State is a value type; the
// mutators return the updated copy.
type State struct {
	Mode    Mode
	Filters map[venues.Tag]bool
	Sort    SortMode
	Compact bool
}

// New returns a Browse state with every tag active.
func New() State {
	return State{}.WithFilters(venues.AllTags()...)
}

// Active reports whether tag is in the filter set.
func (s State) Active(tag venues.Tag) bool {
	return s.Filters[tag]
}

// ActiveTags returns the active tags in group order.
func (s State) ActiveTags() []venues.Tag {
	var tags []venues.Tag
	for _, tag := range venues.AllTags() {
		if s.Filters[tag] {
			tags = append(tags, tag)
		}
	}
	return tags
}

// WithFilters replaces the filter set. Unknown tags are ignored.
func (s State) WithFilters(tags ...venues.Tag) State {
	filters := make(map[venues.Tag]bool, len(tags))
	for _, tag := range tags {
		if tag.Valid() {
			filters[tag] = true
		}
	}
	s.Filters = filters
	return s
}

// ToggleFilter flips tag in the filter set. Unknown tags are ignored.
func (s State) ToggleFilter(tag venues.Tag) State {
	if !tag.Valid() {
		return s
	}
	filters := make(map[venues.Tag]bool, len(s.Filters)+1)
	for t, on := range s.Filters {
		if on {
			filters[t] = true
		}
	}
	if filters[tag] {
		delete(filters, tag)
	} else {
		filters[tag] = true
	}
	s.Filters = filters
	return s
}

// WithMode switches mode. The filter set is kept for the return to Browse.
func (s State) WithMode(m Mode) State {
	s.Mode = m
	return s
}

// WithSort sets the sort mode.
func (s State) WithSort(m SortMode) State {
	s.Sort = m
	return s
}

// WithCompact sets the compact flag.
func (s State) WithCompact(compact bool) State {
	s.Compact = compact
	return s
}
