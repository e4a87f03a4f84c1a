// Package httputil centralizes JSON response shaping so every handler
// emits the same envelope.
package httputil

import (
	"encoding/json"
	"net/http"

	dErrors "keymint/pkg/domain-errors"
)

// WriteJSON writes v as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a coded domain error into the JSON error envelope.
// Un-coded errors map to 500 without leaking detail.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	body := map[string]string{"error": string(code)}
	if status := ToHTTPStatus(code); status < http.StatusInternalServerError {
		body["message"] = err.Error()
		WriteJSON(w, status, body)
		return
	}
	WriteJSON(w, http.StatusInternalServerError, body)
}

// ToHTTPStatus maps a domain error code to an HTTP status.
func ToHTTPStatus(code dErrors.Code) int {
	switch code {
	case dErrors.CodeValidation, dErrors.CodeBadRequest:
		return http.StatusBadRequest
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
