package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/dom/superhero-pets/internal/domain"
	"github.com/dom/superhero-pets/internal/service"
	"github.com/go-chi/chi/v5"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message})
}

// writeServiceError maps a service error to its status code. Unknown errors
// are logged under op and reported as 500.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrPetNotFound),
		errors.Is(err, domain.ErrHeroNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, domain.ErrPetAlreadyAdopted),
		errors.Is(err, domain.ErrPetNotAdopted),
		errors.Is(err, domain.ErrNotPetAdopter),
		errors.Is(err, domain.ErrPetHasHero),
		errors.Is(err, domain.ErrPetNotOfHero),
		errors.Is(err, domain.ErrInvalidItemKind),
		errors.Is(err, domain.ErrItemNameExists),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrPetNameRequired),
		errors.Is(err, service.ErrHeroNameRequired),
		errors.Is(err, service.ErrItemFieldsRequired):
		writeError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, err.Error())

	case errors.Is(err, service.ErrConcurrentModification):
		writeError(w, http.StatusConflict, err.Error())

	default:
		log.Printf("ERROR [handlers.%s] %v", op, err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func parseID(r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// decodeJSON decodes the request body into v. An empty body is accepted
// when optional is true.
func decodeJSON(r *http.Request, v any, optional bool) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) && optional {
		return nil
	}
	return err
}
