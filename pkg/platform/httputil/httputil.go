// Package httputil centralizes JSON response writing so every handler emits
// the same envelope: {"success": true, ...} or {"success": false, "error": msg}.
package httputil

import (
	"encoding/json"
	"net/http"

	dErrors "leadgate/pkg/domain-errors"
)

const genericInternalMessage = "Something went wrong. Please try again."

// WriteJSON writes v as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ErrorResponse is the failure envelope returned to clients.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// WriteError translates a domain error into the failure envelope. Errors
// without a code, and all internal errors, collapse to a generic message so
// infrastructure detail never leaks to the client.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := genericInternalMessage

	if de, ok := err.(*dErrors.Error); ok {
		status = dErrors.ToHTTPStatus(de.Code)
		if de.Code != dErrors.CodeInternal {
			message = de.Message
		}
	}

	WriteJSON(w, status, ErrorResponse{Success: false, Error: message})
}
