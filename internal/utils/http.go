package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ContentTypeJSON is the media type of every JSON body written by the service.
const ContentTypeJSON = "application/json; charset=utf-8"

// WriteJSON serializes data to JSON and writes it to the response with the
// given status code.
//
// The body is marshaled before any header is written, so a marshaling
// failure still produces a clean 500 Internal Server Error. The returned int
// is the number of body bytes written.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteNoContent writes a bodyless 204 No Content response.
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
