// Package common holds the response envelope shared by every HTTP handler:
// successes wrap their payload in {"data": ...}, failures carry a code,
// message and optional details under {"error": ...}.
package common

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the canonical error payload.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Data writes a success envelope.
func Data(w http.ResponseWriter, status int, v any) {
	write(w, status, map[string]any{"data": v})
}

// Error writes a failure envelope.
func Error(w http.ResponseWriter, status int, code, message string, details any) {
	write(w, status, map[string]any{"error": ErrorBody{Code: code, Message: message, Details: details}})
}

func write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
