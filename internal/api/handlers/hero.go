package handlers

import (
	"net/http"

	"github.com/dom/superhero-pets/internal/domain"
	"github.com/dom/superhero-pets/internal/service"
)

type HeroHandler struct {
	heroService *service.HeroService
}

func NewHeroHandler(heroService *service.HeroService) *HeroHandler {
	return &HeroHandler{heroService: heroService}
}

type HeroRequest struct {
	Name  string `json:"name"`
	Alias string `json:"alias"`
	City  string `json:"city"`
	Team  string `json:"team"`
}

type HeroPetRequest struct {
	PetID int64 `json:"petId"`
}

type HeroPetResponse struct {
	Hero *domain.Hero `json:"hero"`
	Pet  *domain.Pet  `json:"pet"`
}

func (req HeroRequest) input() service.HeroInput {
	return service.HeroInput{
		Name:  req.Name,
		Alias: req.Alias,
		City:  req.City,
		Team:  req.Team,
	}
}

// List godoc
// @Summary List heroes
// @Tags heroes
// @Produce json
// @Success 200 {array} domain.Hero
// @Router /heroes [get]
func (h *HeroHandler) List(w http.ResponseWriter, r *http.Request) {
	heroes, err := h.heroService.List(r.Context())
	if err != nil {
		writeServiceError(w, "HeroHandler.List", err)
		return
	}
	if heroes == nil {
		heroes = []*domain.Hero{}
	}
	writeJSON(w, http.StatusOK, heroes)
}

// Get godoc
// @Summary Get a hero
// @Tags heroes
// @Produce json
// @Param id path int true "Hero ID"
// @Success 200 {object} domain.Hero
// @Failure 404 {object} ErrorResponse
// @Router /heroes/{id} [get]
func (h *HeroHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid hero ID")
		return
	}

	hero, err := h.heroService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, "HeroHandler.Get", err)
		return
	}
	writeJSON(w, http.StatusOK, hero)
}

// Create godoc
// @Summary Create a hero
// @Tags heroes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body HeroRequest true "Hero"
// @Success 201 {object} domain.Hero
// @Failure 400 {object} ErrorResponse
// @Router /heroes [post]
func (h *HeroHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req HeroRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	hero, err := h.heroService.Create(r.Context(), req.input())
	if err != nil {
		writeServiceError(w, "HeroHandler.Create", err)
		return
	}
	writeJSON(w, http.StatusCreated, hero)
}

// Update godoc
// @Summary Replace a hero
// @Tags heroes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hero ID"
// @Param payload body HeroRequest true "Hero"
// @Success 200 {object} domain.Hero
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /heroes/{id} [put]
func (h *HeroHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid hero ID")
		return
	}

	var req HeroRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	hero, err := h.heroService.Update(r.Context(), id, req.input())
	if err != nil {
		writeServiceError(w, "HeroHandler.Update", err)
		return
	}
	writeJSON(w, http.StatusOK, hero)
}

// Delete godoc
// @Summary Delete a hero
// @Tags heroes
// @Security BearerAuth
// @Param id path int true "Hero ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /heroes/{id} [delete]
func (h *HeroHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid hero ID")
		return
	}

	if err := h.heroService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, "HeroHandler.Delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AssignPet godoc
// @Summary A hero takes a pet
// @Tags heroes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hero ID"
// @Param payload body HeroPetRequest true "Pet"
// @Success 200 {object} HeroPetResponse
// @Failure 400 {object} ErrorResponse "pet already belongs to a hero"
// @Failure 404 {object} ErrorResponse
// @Router /heroes/{id}/adoptar [post]
func (h *HeroHandler) AssignPet(w http.ResponseWriter, r *http.Request) {
	heroID, petID, ok := h.heroPetParams(w, r)
	if !ok {
		return
	}

	hero, pet, err := h.heroService.AssignPet(r.Context(), heroID, petID)
	if err != nil {
		writeServiceError(w, "HeroHandler.AssignPet", err)
		return
	}
	writeJSON(w, http.StatusOK, HeroPetResponse{Hero: hero, Pet: pet})
}

// ReleasePet godoc
// @Summary A hero gives up a pet
// @Tags heroes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Hero ID"
// @Param payload body HeroPetRequest true "Pet"
// @Success 200 {object} HeroPetResponse
// @Failure 400 {object} ErrorResponse "pet does not belong to this hero"
// @Failure 404 {object} ErrorResponse
// @Router /heroes/{id}/abandonar [post]
func (h *HeroHandler) ReleasePet(w http.ResponseWriter, r *http.Request) {
	heroID, petID, ok := h.heroPetParams(w, r)
	if !ok {
		return
	}

	hero, pet, err := h.heroService.ReleasePet(r.Context(), heroID, petID)
	if err != nil {
		writeServiceError(w, "HeroHandler.ReleasePet", err)
		return
	}
	writeJSON(w, http.StatusOK, HeroPetResponse{Hero: hero, Pet: pet})
}

func (h *HeroHandler) heroPetParams(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	heroID, ok := parseID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid hero ID")
		return 0, 0, false
	}

	var req HeroPetRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return 0, 0, false
	}
	if req.PetID < 1 {
		writeError(w, http.StatusBadRequest, "petId is required")
		return 0, 0, false
	}
	return heroID, req.PetID, true
}

// Seed godoc
// @Summary Insert the starter heroes
// @Tags heroes
// @Produce json
// @Success 200 {object} service.SeedResult
// @Router /heroes/poblar [post]
func (h *HeroHandler) Seed(w http.ResponseWriter, r *http.Request) {
	result, err := h.heroService.Seed(r.Context())
	if err != nil {
		writeServiceError(w, "HeroHandler.Seed", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
