package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/plateful/dish-api/internal/models"
)

// errorResponse is the JSON shape of every error reply.
// Errors carries field-level detail for validation failures.
type errorResponse struct {
	Detail string              `json:"detail"`
	Errors []models.FieldError `json:"errors,omitempty"`
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// writeError writes an error response with a human-readable detail message
func writeError(w http.ResponseWriter, status int, detail string, logger *slog.Logger) {
	writeJSON(w, status, errorResponse{Detail: detail}, logger)
}

// writeValidationError writes a 422 carrying per-field messages
func writeValidationError(w http.ResponseWriter, verr *models.ValidationError, logger *slog.Logger) {
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
		Detail: "validation failed",
		Errors: verr.Errors,
	}, logger)
}
