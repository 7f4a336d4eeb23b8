package httpapi

import (
	"encoding/json"
	"net/http"
)

// response is the uniform JSON envelope for every endpoint:
// {"status": "success"|"error", "message": ..., "data": ...}.
type response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, resp response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	// the envelope contains only marshalable values, encode cannot fail
	_ = json.NewEncoder(w).Encode(resp)
}

func writeSuccess(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, response{Status: "success", Message: message})
}

func writeData(w http.ResponseWriter, code int, data any) {
	writeJSON(w, code, response{Status: "success", Data: data})
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, response{Status: "error", Message: message})
}
