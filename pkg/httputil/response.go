// Package httputil provides shared HTTP response helpers so every handler
// emits the same envelope shapes.
package httputil

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteRawJSON writes pre-encoded JSON with a 200 status. Used for bodies
// the shaping pipeline has already marshalled.
func WriteRawJSON(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// WriteCSV writes tabular text with a Content-Disposition filename hint.
func WriteCSV(w http.ResponseWriter, filename string, body []byte) {
	w.Header().Set("Content-Type", "text/csv")
	if filename != "" {
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// WriteError writes a JSON error response with a machine-readable error
// kind and a human-readable message.
func WriteError(w http.ResponseWriter, status int, errKind, message string) {
	WriteJSON(w, status, map[string]string{
		"error":   errKind,
		"message": message,
	})
}

// WriteBadRequest writes a 400 Bad Request error response.
func WriteBadRequest(w http.ResponseWriter, errKind, message string) {
	WriteError(w, http.StatusBadRequest, errKind, message)
}

// WriteNotFound writes a 404 Not Found error response.
func WriteNotFound(w http.ResponseWriter, errKind, message string) {
	WriteError(w, http.StatusNotFound, errKind, message)
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, errKind, message string) {
	WriteError(w, http.StatusInternalServerError, errKind, message)
}

// WriteOK writes a 200 OK response with data.
func WriteOK(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}
