package handlers

import (
	"log"
	"net/http"

	"github.com/dom/superhero-pets/internal/api/middleware"
	"github.com/dom/superhero-pets/internal/domain"
	"github.com/dom/superhero-pets/internal/service"
)

type AdoptionHandler struct {
	adoptionService *service.AdoptionService
}

func NewAdoptionHandler(adoptionService *service.AdoptionService) *AdoptionHandler {
	return &AdoptionHandler{adoptionService: adoptionService}
}

type AdoptionResponse struct {
	Message string      `json:"message"`
	Pet     *domain.Pet `json:"pet"`
}

// Listing endpoints answer 200 with an empty list when the store fails.
func writePetList(w http.ResponseWriter, op string, pets []*domain.Pet, err error) {
	if err != nil {
		log.Printf("ERROR [handlers.%s] %v", op, err)
		pets = nil
	}
	if pets == nil {
		pets = []*domain.Pet{}
	}
	writeJSON(w, http.StatusOK, pets)
}

// Available godoc
// @Summary Pets nobody has adopted
// @Tags adoption
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Pet
// @Router /adopcion/disponibles [get]
func (h *AdoptionHandler) Available(w http.ResponseWriter, r *http.Request) {
	pets, err := h.adoptionService.ListAvailable(r.Context())
	writePetList(w, "AdoptionHandler.Available", pets, err)
}

// Adopted godoc
// @Summary Pets adopted by any user
// @Tags adoption
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Pet
// @Router /adopcion/adoptadas [get]
func (h *AdoptionHandler) Adopted(w http.ResponseWriter, r *http.Request) {
	pets, err := h.adoptionService.ListAdopted(r.Context())
	writePetList(w, "AdoptionHandler.Adopted", pets, err)
}

// Mine godoc
// @Summary Pets adopted by the caller
// @Tags adoption
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Pet
// @Router /adopcion/mis-mascotas [get]
func (h *AdoptionHandler) Mine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	pets, err := h.adoptionService.ListMine(r.Context(), userID)
	writePetList(w, "AdoptionHandler.Mine", pets, err)
}

// Adopt godoc
// @Summary Adopt an available pet
// @Tags adoption
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pet ID"
// @Success 200 {object} AdoptionResponse
// @Failure 400 {object} ErrorResponse "already adopted"
// @Failure 404 {object} ErrorResponse
// @Router /adopcion/adoptar/{id} [post]
func (h *AdoptionHandler) Adopt(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, ok := parseID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid pet ID")
		return
	}

	pet, err := h.adoptionService.Adopt(r.Context(), id, userID)
	if err != nil {
		writeServiceError(w, "AdoptionHandler.Adopt", err)
		return
	}
	writeJSON(w, http.StatusOK, AdoptionResponse{Message: "Pet adopted", Pet: pet})
}

// Abandon godoc
// @Summary Give up a pet the caller adopted
// @Tags adoption
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pet ID"
// @Success 200 {object} AdoptionResponse
// @Failure 400 {object} ErrorResponse "not adopted, or adopted by someone else"
// @Failure 404 {object} ErrorResponse
// @Router /adopcion/abandonar/{id} [post]
func (h *AdoptionHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, ok := parseID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid pet ID")
		return
	}

	pet, err := h.adoptionService.Abandon(r.Context(), id, userID)
	if err != nil {
		writeServiceError(w, "AdoptionHandler.Abandon", err)
		return
	}
	writeJSON(w, http.StatusOK, AdoptionResponse{Message: "Pet abandoned", Pet: pet})
}

// Stats godoc
// @Summary Adoption statistics
// @Tags adoption
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.AdoptionStats
// @Router /adopcion/estadisticas [get]
func (h *AdoptionHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adoptionService.Stats(r.Context())
	if err != nil {
		log.Printf("ERROR [handlers.AdoptionHandler.Stats] %v", err)
		zero := domain.NewAdoptionStats(0, 0)
		stats = &zero
	}
	writeJSON(w, http.StatusOK, stats)
}
