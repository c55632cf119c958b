package handlers

import (
	"net/http"

	"github.com/dom/superhero-pets/internal/api/middleware"
	"github.com/dom/superhero-pets/internal/service"
)

type PetHandler struct {
	petService *service.PetService
}

func NewPetHandler(petService *service.PetService) *PetHandler {
	return &PetHandler{petService: petService}
}

type CreatePetRequest struct {
	Name          string  `json:"name"`
	OwnerHeroName *string `json:"ownerHeroName"`
}

type UpdatePetRequest struct {
	Name          *string `json:"name"`
	OwnerHeroName *string `json:"ownerHeroName"`
}

// List godoc
// @Summary Pets that are available or adopted by the caller
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Pet
// @Failure 401 {object} ErrorResponse
// @Router /mascotas [get]
func (h *PetHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	pets, err := h.petService.ListVisible(r.Context(), userID)
	if err != nil {
		writeServiceError(w, "PetHandler.List", err)
		return
	}
	writeJSON(w, http.StatusOK, pets)
}

// Get godoc
// @Summary Get a pet
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pet ID"
// @Success 200 {object} domain.Pet
// @Failure 404 {object} ErrorResponse
// @Router /mascotas/{id} [get]
func (h *PetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid pet ID")
		return
	}

	pet, err := h.petService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, "PetHandler.Get", err)
		return
	}
	writeJSON(w, http.StatusOK, pet)
}

// Create godoc
// @Summary Create a pet
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body CreatePetRequest true "Pet"
// @Success 201 {object} domain.Pet
// @Failure 400 {object} ErrorResponse "name is required"
// @Router /mascotas [post]
func (h *PetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePetRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pet, err := h.petService.Create(r.Context(), service.CreatePetInput{
		Name:          req.Name,
		OwnerHeroName: req.OwnerHeroName,
	})
	if err != nil {
		writeServiceError(w, "PetHandler.Create", err)
		return
	}
	writeJSON(w, http.StatusCreated, pet)
}

// Update godoc
// @Summary Update a pet
// @Description Changes name and hero. Other fields are ignored, use the actions to change welfare stats.
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pet ID"
// @Param payload body UpdatePetRequest true "Fields to change"
// @Success 200 {object} domain.Pet
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "concurrent modification"
// @Router /mascotas/{id} [put]
func (h *PetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid pet ID")
		return
	}

	var req UpdatePetRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	pet, err := h.petService.Update(r.Context(), id, service.UpdatePetInput{
		Name:          req.Name,
		OwnerHeroName: req.OwnerHeroName,
	})
	if err != nil {
		writeServiceError(w, "PetHandler.Update", err)
		return
	}
	writeJSON(w, http.StatusOK, pet)
}

// Delete godoc
// @Summary Delete a pet
// @Tags pets
// @Security BearerAuth
// @Param id path int true "Pet ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /mascotas/{id} [delete]
func (h *PetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid pet ID")
		return
	}

	if err := h.petService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, "PetHandler.Delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Seed godoc
// @Summary Insert the starter pets
// @Description Does nothing once there are at least as many pets as starters.
// @Tags pets
// @Produce json
// @Success 200 {object} service.SeedResult
// @Router /mascotas/poblar [post]
func (h *PetHandler) Seed(w http.ResponseWriter, r *http.Request) {
	result, err := h.petService.Seed(r.Context())
	if err != nil {
		writeServiceError(w, "PetHandler.Seed", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
