package venues

import (
	"github.com/agentstation/tripmap/pkg/errors"
)

// ID identifies a venue inside a Set. IDs are dense and follow dataset order.
type ID int

// Set is the arena of venues loaded for a session. It is immutable.
type Set struct {
	venues []Venue
	byName map[string]ID
}

// NewSet builds a Set in dataset order. Duplicate names are rejected.
func NewSet(venues []Venue) (*Set, error) {
	s := &Set{
		venues: make([]Venue, len(venues)),
		byName: make(map[string]ID, len(venues)),
	}
	copy(s.venues, venues)
	for i, v := range s.venues {
		if _, dup := s.byName[v.Name]; dup {
			return nil, errors.NewValidationError("name", v.Name, "duplicate venue name")
		}
		s.byName[v.Name] = ID(i)
	}
	return s, nil
}

// Empty returns a Set with no venues.
func Empty() *Set {
	return &Set{byName: map[string]ID{}}
}

// Len returns the number of venues.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.venues)
}

// Get returns the venue with the given id.
func (s *Set) Get(id ID) (Venue, bool) {
	if s == nil || id < 0 || int(id) >= len(s.venues) {
		return Venue{}, false
	}
	return s.venues[id], true
}

// Lookup returns the id of the venue with the given name.
func (s *Set) Lookup(name string) (ID, bool) {
	if s == nil {
		return 0, false
	}
	id, ok := s.byName[name]
	return id, ok
}

// Find returns the venue with the given name.
func (s *Set) Find(name string) (Venue, bool) {
	id, ok := s.Lookup(name)
	if !ok {
		return Venue{}, false
	}
	return s.venues[id], true
}

// IDs returns every id in dataset order.
func (s *Set) IDs() []ID {
	ids := make([]ID, s.Len())
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

// List returns a copy of the venues in dataset order.
func (s *Set) List() []Venue {
	out := make([]Venue, s.Len())
	if s != nil {
		copy(out, s.venues)
	}
	return out
}
