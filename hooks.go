package tripmap

import (
	"sync"

	"github.com/agentstation/tripmap/pkg/ratings"
	"github.com/agentstation/tripmap/pkg/reconciler"
)

// Hook function types for explorer events
type (
	// RatingChangedHook is called when the cached rating of a venue changes
	RatingChangedHook func(name string, old, new ratings.Rating)

	// ViewAppliedHook is called after every reconciliation is applied
	ViewAppliedHook func(result *reconciler.Result)
)

// hooks manages event callbacks. Callbacks run with no explorer or store
// lock held, so they may call back into the Explorer.
type hooks struct {
	mu              sync.RWMutex
	onRatingChanged []RatingChangedHook
	onViewApplied   []ViewAppliedHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnRatingChanged registers a callback for rating changes
func (h *hooks) OnRatingChanged(fn RatingChangedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onRatingChanged = append(h.onRatingChanged, fn)
}

// OnViewApplied registers a callback for applied views
func (h *hooks) OnViewApplied(fn ViewAppliedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onViewApplied = append(h.onViewApplied, fn)
}

// triggerRatingsUpdate compares old and new mappings and triggers hooks for
// every name whose rating differs
func (h *hooks) triggerRatingsUpdate(old, new ratings.Mapping) {
	h.mu.RLock()
	callbacks := h.onRatingChanged
	h.mu.RUnlock()
	if len(callbacks) == 0 {
		return
	}

	changed := make(map[string]bool)
	for name := range old {
		changed[name] = true
	}
	for name := range new {
		changed[name] = true
	}
	for name := range changed {
		before, after := old.Get(name), new.Get(name)
		if before == after {
			continue
		}
		for _, hook := range callbacks {
			hook(name, before, after)
		}
	}
}

// triggerViewApplied calls every view hook with result
func (h *hooks) triggerViewApplied(result *reconciler.Result) {
	h.mu.RLock()
	callbacks := h.onViewApplied
	h.mu.RUnlock()
	for _, hook := range callbacks {
		hook(result)
	}
}
