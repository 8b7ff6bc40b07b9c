package utils

import (
	"encoding/json"
	"log"
	"net/http"
)

// WriteJSON writes payload as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// WriteError writes a JSON error envelope.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"error": message})
}

// WriteDataUnavailable reports that the backing store could not be
// queried. This is deliberately distinct from an empty result: the client
// must show "data unavailable", never substituted content.
func WriteDataUnavailable(w http.ResponseWriter, err error) {
	log.Printf("Data unavailable: %v", err)
	WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
		"error": "data unavailable",
	})
}
