package handlers

import (
	"log/slog"
	"net/http"

	"github.com/plateful/dish-api/internal/config"
)

// StatusHandler serves the root welcome and health check endpoints
type StatusHandler struct {
	instanceID string
	logger     *slog.Logger
}

// NewStatusHandler creates a new status handler. instanceID identifies this
// process for the lifetime of the run.
func NewStatusHandler(instanceID string, logger *slog.Logger) *StatusHandler {
	return &StatusHandler{
		instanceID: instanceID,
		logger:     logger,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Instance string `json:"instance"`
}

// Root handles GET /
func (h *StatusHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to the " + config.AppTitle,
	}, h.logger)
}

// Health handles GET /health
func (h *StatusHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:   "ok",
		Version:  config.AppVersion,
		Instance: h.instanceID,
	}, h.logger)
}
