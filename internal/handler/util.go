package handler

import (
	"encoding/json"
	"net/http"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"error": message,
	})
}

// writeErrorDetails writes a JSON error response with extra fields alongside
// the error message, for errors the client can act on.
func writeErrorDetails(w http.ResponseWriter, status int, message string, details map[string]interface{}) {
	body := map[string]interface{}{"error": message}
	for k, v := range details {
		body[k] = v
	}
	writeJSON(w, status, body)
}
