package httputil

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// maxBodySize caps request bodies; project payloads are small text.
const maxBodySize = 1 << 20

// ParseJSON decodes JSON from the request body into dest. The body is
// size-limited so an oversized request produces a proper 413.
func ParseJSON(w http.ResponseWriter, r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	return nil
}
