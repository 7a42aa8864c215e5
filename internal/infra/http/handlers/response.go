package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xavierca1/postcard-ads/internal/usecase"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorResponse(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeUseCaseError maps the use case error taxonomy to a status code.
// Validation messages are shown as is; anything else gets fallback.
func writeUseCaseError(w http.ResponseWriter, err error, fallback string) {
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		writeErrorResponse(w, http.StatusBadRequest, verr.Message)
		return
	}
	writeErrorResponse(w, http.StatusInternalServerError, fallback)
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
