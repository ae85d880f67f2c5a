package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/meridianeng/intake-backend/internal/store"
)

// statsProvider defines the minimal interface for store health reporting.
type statsProvider interface {
	Stats(ctx context.Context) store.Stats
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	stats   statsProvider
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(stats statsProvider, version string) *HealthHandler {
	return &HealthHandler{stats: stats, version: version}
}

// HealthResponse is the JSON response for /health and /live.
type HealthResponse struct {
	Status    string       `json:"status"`
	Version   string       `json:"version,omitempty"`
	Store     *store.Stats `json:"store,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health reports the build version and per-collection record counts. The
// store is in-process and infallible, so the status is always "ok" while
// the process is serving.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	stats := h.stats.Stats(r.Context())
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Version:   h.version,
		Store:     &stats,
		Timestamp: time.Now(),
	})
}
