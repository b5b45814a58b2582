package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ngogiaquyen/coinshop/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response. Kind is a stable category
// string so clients can branch without matching message text.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first; headers are already sent if this fails
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, kind, message string) {
	respondJSON(w, status, ErrorResponse{Error: message, Kind: kind})
}

// respondServiceError translates a service error into its HTTP shape and
// logs it with the failed action for correlation.
func respondServiceError(w http.ResponseWriter, r *http.Request, actionName string, err error) {
	log := logger.FromContext(r.Context())

	status, kind, message := mapServiceError(err)
	if status >= http.StatusInternalServerError {
		log.Error(actionName+" failed", "error", err)
	} else {
		log.Warn(actionName+" rejected", "kind", kind, "error", err)
	}

	respondError(w, status, kind, message)
}
