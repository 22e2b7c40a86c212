package viewsync

import (
	"fmt"
	"sync"

	"github.com/agentstation/tripmap/pkg/geo"
	"github.com/agentstation/tripmap/pkg/venues"
)

// Recorder is a Presenter that records every call and the resulting marker
// state. It is meant for tests.
type Recorder struct {
	mu sync.Mutex

	markers  map[Handle]string
	shown    map[Handle]bool
	emphasis map[Handle]Emphasis
	popups   map[Handle]bool
	lists    []List
	active   string
	messages []string
	fits     []geo.Bounds
	flights  []geo.Point
	created  int

	// FailOn makes CreateMarker fail for the venue with this name.
	FailOn string
}

var _ Presenter = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		markers:  map[Handle]string{},
		shown:    map[Handle]bool{},
		emphasis: map[Handle]Emphasis{},
		popups:   map[Handle]bool{},
	}
}

// CreateMarker implements Presenter.
func (r *Recorder) CreateMarker(v venues.Venue) (Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v.Name == r.FailOn {
		return "", fmt.Errorf("cannot place %s", v.Name)
	}
	r.created++
	h := Handle(fmt.Sprintf("m%d", r.created))
	r.markers[h] = v.Name
	r.shown[h] = false
	return h, nil
}

// ShowMarker implements Presenter.
func (r *Recorder) ShowMarker(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shown[h] = true
}

// HideMarker implements Presenter.
func (r *Recorder) HideMarker(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shown[h] = false
}

// SetEmphasis implements Presenter.
func (r *Recorder) SetEmphasis(h Handle, e Emphasis) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.emphasis[h] = e
}

// OpenPopup implements Presenter.
func (r *Recorder) OpenPopup(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.popups[h] = true
}

// ClosePopup implements Presenter.
func (r *Recorder) ClosePopup(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.popups[h] = false
}

// RenderList implements Presenter.
func (r *Recorder) RenderList(list List) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lists = append(r.lists, list)
	r.active = ""
}

// SetActiveItem implements Presenter.
func (r *Recorder) SetActiveItem(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = name
}

// ShowMessage implements Presenter.
func (r *Recorder) ShowMessage(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
}

// FitBounds implements Presenter.
func (r *Recorder) FitBounds(b geo.Bounds) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fits = append(r.fits, b)
}

// FlyTo implements Presenter.
func (r *Recorder) FlyTo(p geo.Point, zoom int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flights = append(r.flights, p)
}

// ShownNames returns the names of shown markers.
func (r *Recorder) ShownNames() map[string]bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := map[string]bool{}
	for h, on := range r.shown {
		if on {
			out[r.markers[h]] = true
		}
	}
	return out
}

// EmphasisOf returns the last emphasis set on the marker of name.
func (r *Recorder) EmphasisOf(name string) Emphasis {
	r.mu.Lock()
	defer r.mu.Unlock()
	for h, n := range r.markers {
		if n == name {
			return r.emphasis[h]
		}
	}
	return Emphasis{}
}

// PopupOpen reports whether the popup of name is open.
func (r *Recorder) PopupOpen(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for h, n := range r.markers {
		if n == name {
			return r.popups[h]
		}
	}
	return false
}

// Created returns the number of markers created.
func (r *Recorder) Created() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.created
}

// Lists returns every rendered list in order.
func (r *Recorder) Lists() []List {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]List(nil), r.lists...)
}

// LastList returns the most recent list, or the zero List.
func (r *Recorder) LastList() List {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.lists) == 0 {
		return List{}
	}
	return r.lists[len(r.lists)-1]
}

// ActiveItem returns the active list item.
func (r *Recorder) ActiveItem() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// Messages returns the diagnostic messages shown.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...)
}

// Fits returns every viewport fit in order.
func (r *Recorder) Fits() []geo.Bounds {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]geo.Bounds(nil), r.fits...)
}

// Flights returns every fly-to target in order.
func (r *Recorder) Flights() []geo.Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]geo.Point(nil), r.flights...)
}
