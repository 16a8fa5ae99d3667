package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"club-management-platform/internal/models"

	"github.com/go-chi/chi/v5"
)

// respondJSON writes a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Printf("Failed to encode response: %v", err)
		}
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// respondError maps domain errors onto HTTP status codes and writes a JSON
// error body.
func respondError(w http.ResponseWriter, err error) {
	var (
		validationErr *models.ValidationError
		limitErr      *models.LimitExceededError
		stockErr      *models.InsufficientStockError
	)

	switch {
	case errors.As(err, &validationErr):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: validationErr.Error()})
	case errors.Is(err, models.ErrEmptyCart):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrNotAuthenticated), errors.Is(err, models.ErrInvalidCredentials):
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrUnauthorized):
		respondJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrProductNotFound),
		errors.Is(err, models.ErrTicketNotFound),
		errors.Is(err, models.ErrMatchNotFound),
		errors.Is(err, models.ErrOrderNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.As(err, &limitErr):
		respondJSON(w, http.StatusConflict, errorResponse{Error: limitErr.Error()})
	case errors.As(err, &stockErr):
		respondJSON(w, http.StatusConflict, errorResponse{Error: stockErr.Error()})
	case errors.Is(err, models.ErrDuplicateEntry):
		respondJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		log.Printf("Internal error: %v", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

// atoiParam parses an integer chi route parameter
func atoiParam(r *http.Request, key string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, key))
}

// decodeJSON decodes a request body into dst, rejecting unknown fields
func decodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return &models.ValidationError{Field: "body", Message: "invalid request body"}
	}
	return nil
}
