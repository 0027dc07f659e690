// internal/app/system/jsonresp/jsonresp.go
//
// Response helpers for the JSON API endpoints (search, proximity, heart
// toggle). These endpoints must return machine-readable errors rather
// than the HTML flash-and-redirect the rest of the site uses.
package jsonresp

import (
	"encoding/json"
	"net/http"
)

// OK writes v as a 200 JSON response.
func OK(w http.ResponseWriter, v any) {
	Write(w, http.StatusOK, v)
}

// Write writes v as JSON with the given status.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes {"error": msg} with the given status.
func Error(w http.ResponseWriter, status int, msg string) {
	Write(w, status, map[string]string{"error": msg})
}
