// Package response provides utilities for sending consistent HTTP responses.
// Every body the API writes is an Envelope.
package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// Messages shared by more than one handler.
const (
	MsgEndpointNotFound    = "Endpoint not found"
	MsgInternalServerError = "Internal server error"
)

// Envelope is the uniform wrapper around every API response.
// Data and Count are only present on success; Error carries the raw detail
// of unexpected failures.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RespondJSON sends a JSON response with the given status code.
// Sets the Content-Type header to application/json and writes the status code.
// If data is nil, only the status code is sent.
// Logs encoding errors but does not fail the response.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("failed to encode JSON response: %v", err)
		}
	}
}

// RespondSuccess sends a successful envelope carrying data.
func RespondSuccess(w http.ResponseWriter, status int, message string, data any) {
	RespondJSON(w, status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// RespondList sends a successful envelope carrying data and its item count.
func RespondList(w http.ResponseWriter, message string, data any, count int) {
	RespondJSON(w, http.StatusOK, Envelope{
		Success: true,
		Message: message,
		Data:    data,
		Count:   &count,
	})
}

// RespondError sends a failure envelope with the given status code.
// The detail is omitted from the body when empty.
//
// Example:
//
//	response.RespondError(w, http.StatusNotFound, "Portfolio not found", "")
//	response.RespondError(w, http.StatusInternalServerError, response.MsgInternalServerError, err.Error())
func RespondError(w http.ResponseWriter, status int, message string, detail string) {
	RespondJSON(w, status, Envelope{
		Success: false,
		Message: message,
		Error:   detail,
	})
}
