package utils

import (
	"encoding/xml"
	"fmt"
	"net/http"
)

// WriteXML serializes the given data to XML and writes it to the HTTP
// response, prefixed with the standard XML declaration.
//
// It sets the "Content-Type" header to "text/xml; charset=utf-8" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Parameters:
//
//	w          - the HTTP response writer to write the response to
//	data       - any value to be serialized as XML (struct, slice, nil, etc.)
//	statusCode - HTTP status code to set in the response (e.g. http.StatusOK)
//
// Returns:
//
//	int   - number of bytes written to the response body
//	error - non-nil if XML marshaling fails
//
// Example usage:
//
//	WriteXML(w, portalResponse{Status: "LIVE"}, http.StatusOK)
func WriteXML(w http.ResponseWriter, data any, statusCode int) (int, error) {
	xmlData, err := xml.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to XML", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to XML: %w", err)
	}

	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(statusCode)

	return w.Write(append([]byte(xml.Header), xmlData...))
}
