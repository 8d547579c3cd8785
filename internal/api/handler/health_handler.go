package handler

import "net/http"

// HealthHandler serves the liveness probe endpoint.
type HealthHandler struct {
	depth func() int
}

// NewHealthHandler takes the queue's Len so the probe can report backlog.
func NewHealthHandler(depth func() int) *HealthHandler { return &HealthHandler{depth: depth} }

// Health handles GET /health
//
// @Summary  Liveness probe
// @Tags     system
// @Produce  json
// @Success  200  {object}  map[string]any
// @Router   /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"status": "ok", "queue_depth": h.depth()})
}
