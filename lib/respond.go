package lib

import (
	"encoding/json"
	"net/http"
)

// The storefront page depends on the exact envelope shapes below, so they are
// written explicitly instead of going through gecho's response helpers.

// ListEnvelope wraps collection responses: {"success": true, "items": [...]}.
type ListEnvelope struct {
	Success bool `json:"success"`
	Items   any  `json:"items"`
}

// MessageEnvelope carries a human-readable message, used for not-found and
// similar outcomes: {"success": false, "message": "..."}.
type MessageEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CreatedEnvelope is the order-creation success response.
type CreatedEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// ErrorEnvelope carries a failure payload; Error is either a string or a
// structured ValidationError.
type ErrorEnvelope struct {
	Success bool `json:"success"`
	Error   any  `json:"error"`
}

// WriteJSON encodes v as the response body with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
