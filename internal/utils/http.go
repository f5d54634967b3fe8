package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-flashcards/models"
)

// WriteJSON marshals data and writes it with the given status and an
// application/json content type. On a marshal failure it answers 500 instead
// and returns the error. The int result is the number of body bytes written.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes the API error envelope {"error": message}.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	_, _ = WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}

// WriteMessage writes {"message": message}, used by delete endpoints.
func WriteMessage(w http.ResponseWriter, message string, statusCode int) {
	_, _ = WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
}
