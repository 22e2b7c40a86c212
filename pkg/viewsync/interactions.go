package viewsync

import (
	"github.com/agentstation/tripmap/pkg/constants"
	"github.com/agentstation/tripmap/pkg/venues"
)

// Cross-references from the list and the itinerary resolve venues by name
// through the set's index on every call. Names that are unknown or whose
// marker is hidden are ignored and reported as false.

func (s *ViewSync) resolve(name string) (venues.ID, bool) {
	id, ok := s.set.Lookup(name)
	if !ok || !s.visible[id] {
		return 0, false
	}
	return id, true
}

// HoverItem opens the venue popup and highlights its marker.
func (s *ViewSync) HoverItem(name string) bool {
	id, ok := s.resolve(name)
	if !ok {
		return false
	}
	s.presenter.OpenPopup(s.handles[id])
	return s.Highlight(id)
}

// LeaveItem closes the venue popup and clears the highlight.
func (s *ViewSync) LeaveItem(name string) bool {
	id, ok := s.resolve(name)
	if !ok {
		return false
	}
	s.presenter.ClosePopup(s.handles[id])
	s.ClearHighlight()
	return true
}

// ClickItem flies to the venue, opens its popup and marks its list item
// active.
func (s *ViewSync) ClickItem(name string) bool {
	id, ok := s.resolve(name)
	if !ok {
		return false
	}
	v, _ := s.set.Get(id)
	s.presenter.FlyTo(v.Point(), constants.FocusZoom)
	s.presenter.OpenPopup(s.handles[id])
	s.active = name
	s.presenter.SetActiveItem(name)
	return true
}

// HoverSlot behaves like HoverItem for an itinerary slot.
func (s *ViewSync) HoverSlot(name string) bool {
	return s.HoverItem(name)
}

// LeaveSlot behaves like LeaveItem for an itinerary slot.
func (s *ViewSync) LeaveSlot(name string) bool {
	return s.LeaveItem(name)
}

// ClickSlot flies to the venue referenced by an itinerary slot. Unlike a
// list click it neither opens the popup nor changes the active item.
func (s *ViewSync) ClickSlot(name string) bool {
	id, ok := s.resolve(name)
	if !ok {
		return false
	}
	v, _ := s.set.Get(id)
	s.presenter.FlyTo(v.Point(), constants.FocusZoom)
	return true
}
