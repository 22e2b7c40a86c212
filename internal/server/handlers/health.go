package handlers

import (
	"net/http"
	"time"

	"github.com/agentstation/tripmap/internal/server/response"
)

// HandleHealth handles GET /health.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		response.MethodNotAllowed(w, r.Method)
		return
	}
	response.OK(w, map[string]any{
		"status":  "healthy",
		"service": "tripmap-ratings",
		"uptime":  time.Since(h.started).Round(time.Second).String(),
	})
}
