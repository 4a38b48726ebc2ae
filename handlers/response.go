package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rajat290/fitpro-connect/repository"
)

type ApiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp ApiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// writeStoreError answers 503 for store outages and a generic 500 for
// anything else, without echoing internal details to the client.
func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrStoreUnavailable) {
		writeJSON(w, http.StatusServiceUnavailable, ApiResponse{
			Success: false,
			Message: "Service temporarily unavailable",
		})
		return
	}
	writeJSON(w, http.StatusInternalServerError, ApiResponse{
		Success: false,
		Message: "Internal server error",
	})
}
