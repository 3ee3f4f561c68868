package http

import (
	"encoding/json"
	"net/http"

	"github.com/goliatone/go-homepage/internal/errs"
)

const (
	msgMissingSecrets = "Misconfigured server environment. Missing Notion secrets."
	msgUpstreamFailed = "Failed to fetch data from Notion"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	status, payload := mapError(err)
	writeJSON(w, status, payload)
}

// mapError keeps configuration failures distinct from upstream failures.
// Both are server errors; neither is ever reported as an empty document.
func mapError(err error) (int, errorResponse) {
	if errs.IsConfiguration(err) {
		return http.StatusInternalServerError, errorResponse{Error: msgMissingSecrets}
	}
	return http.StatusInternalServerError, errorResponse{
		Error:   msgUpstreamFailed,
		Details: errs.Details(err),
	}
}
