package httputil

import (
	"encoding/json"
	"net/http"
	"time"
)

// ErrorResponse is the error payload returned by every failing
// endpoint: a timestamp, a short message, request context, and the
// status code repeated in the body.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Status    int       `json:"status"`
}

// RespondJSON writes a JSON response with the given status code. The
// payload is marshaled before any header is written so an encoding
// failure cannot produce a half-sent 200.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		RespondError(w, http.StatusInternalServerError, "failed to encode response", "")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

// RespondError writes an ErrorResponse with the given status code.
func RespondError(w http.ResponseWriter, status int, message, details string) {
	resp := ErrorResponse{
		Timestamp: time.Now().UTC(),
		Message:   message,
		Details:   details,
		Status:    status,
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}
