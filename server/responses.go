package server

import (
	"encoding/json"
	"net/http"
)

const contentTypeJSON = "application/json; charset=utf-8"

type errorResponse struct {
	Error       string `json:"error"`
	Description string `json:"error_description"`
}

// Unauthorized writes a 401 with a bearer challenge: the caller is not
// authenticated.
func Unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="admin"`)
	writeJSONError(w, http.StatusUnauthorized, "unauthorized", message)
}

// Forbidden writes a 403: the caller is authenticated but its role lacks the
// requested capability.
func Forbidden(w http.ResponseWriter, message string) {
	writeJSONError(w, http.StatusForbidden, "forbidden", message)
}

func writeJSONError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Description: message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
