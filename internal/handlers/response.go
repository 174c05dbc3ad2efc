package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-articles/internal/logger"
)

// MessageResponse is a plain status message
// swagger:model MessageResponse
type MessageResponse struct {
	// example: Login successful
	Message string `json:"message"`
}

// ErrorResponse describes a failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// example: Validation failed
	Message string `json:"message"`
	// Field level problems, present on validation failures
	Errors []string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string, errs ...string) {
	writeJSON(w, status, ErrorResponse{Message: message, Errors: errs})
}

func writeInternalError(w http.ResponseWriter, err error) {
	logger.Log.Errorw("internal server error", "err", err)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
