package utils

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Message string `json:"message"`
}

// WriteJSONError replies with {"error": {"message": ...}} and the given status.
func WriteJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(errorResponse{Error: errorBody{Message: message}})
}

// WriteStatusError replies with the status alone, for bodyless responses.
func WriteStatusError(w http.ResponseWriter, status int) {
	w.WriteHeader(status)
}
