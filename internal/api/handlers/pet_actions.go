package handlers

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/dom/superhero-pets/internal/domain"
	"github.com/dom/superhero-pets/internal/service"
)

// ActionResponse is returned by every pet action. A rejected action still
// answers 200 with applied=false and the unchanged pet.
type ActionResponse struct {
	Applied bool                `json:"applied"`
	Reason  domain.ActionReason `json:"reason"`
	Message string              `json:"message"`
	Pet     *domain.Pet         `json:"pet"`
}

type CustomizeRequest struct {
	Item string `json:"item"`
}

type IllnessRequest struct {
	Illness string `json:"illness"`
}

type KillRequest struct {
	Cause string `json:"cause"`
}

// LifePotionRequest accepts the amount as a JSON number or a numeric string.
type LifePotionRequest struct {
	Amount any `json:"amount" swaggertype:"number"`
}

type petAction func(ctx context.Context, id int64) (*service.ActionOutcome, error)

func (h *PetHandler) runAction(w http.ResponseWriter, r *http.Request, op string, action petAction) {
	id, ok := parseID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid pet ID")
		return
	}

	outcome, err := action(r.Context(), id)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}

	writeJSON(w, http.StatusOK, ActionResponse{
		Applied: outcome.Result.Applied,
		Reason:  outcome.Result.Reason,
		Message: outcome.Result.Message,
		Pet:     outcome.Pet,
	})
}

// Feed godoc
// @Summary Feed a pet
// @Description An already happy pet gets sick from overfeeding instead.
// @Tags pet-actions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pet ID"
// @Success 200 {object} ActionResponse
// @Failure 404 {object} ErrorResponse
// @Router /mascotas/{id}/alimentar [post]
func (h *PetHandler) Feed(w http.ResponseWriter, r *http.Request) {
	h.runAction(w, r, "PetHandler.Feed", h.petService.Feed)
}

// Walk godoc
// @Summary Walk a pet
// @Description Raises happiness and cures the oldest illness.
// @Tags pet-actions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pet ID"
// @Success 200 {object} ActionResponse
// @Failure 404 {object} ErrorResponse
// @Router /mascotas/{id}/pasear [post]
func (h *PetHandler) Walk(w http.ResponseWriter, r *http.Request) {
	h.runAction(w, r, "PetHandler.Walk", h.petService.Walk)
}

// Customize godoc
// @Summary Add a catalog item to a pet
// @Tags pet-actions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pet ID"
// @Param payload body CustomizeRequest true "Item name"
// @Success 200 {object} ActionResponse
// @Failure 404 {object} ErrorResponse
// @Router /mascotas/{id}/personalizar [post]
func (h *PetHandler) Customize(w http.ResponseWriter, r *http.Request) {
	var req CustomizeRequest
	if err := decodeJSON(r, &req, true); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.runAction(w, r, "PetHandler.Customize", func(ctx context.Context, id int64) (*service.ActionOutcome, error) {
		return h.petService.Customize(ctx, id, req.Item)
	})
}

// Sicken godoc
// @Summary Make a pet sick
// @Description Without an illness name a random one the pet does not have is chosen.
// @Tags pet-actions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pet ID"
// @Param payload body IllnessRequest false "Illness name"
// @Success 200 {object} ActionResponse
// @Failure 404 {object} ErrorResponse
// @Router /mascotas/{id}/enfermar [post]
func (h *PetHandler) Sicken(w http.ResponseWriter, r *http.Request) {
	var req IllnessRequest
	if err := decodeJSON(r, &req, true); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.runAction(w, r, "PetHandler.Sicken", func(ctx context.Context, id int64) (*service.ActionOutcome, error) {
		return h.petService.Sicken(ctx, id, req.Illness)
	})
}

// Cure godoc
// @Summary Cure one illness
// @Tags pet-actions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pet ID"
// @Param payload body IllnessRequest true "Illness name"
// @Success 200 {object} ActionResponse
// @Failure 404 {object} ErrorResponse
// @Router /mascotas/{id}/curar [post]
func (h *PetHandler) Cure(w http.ResponseWriter, r *http.Request) {
	var req IllnessRequest
	if err := decodeJSON(r, &req, true); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.runAction(w, r, "PetHandler.Cure", func(ctx context.Context, id int64) (*service.ActionOutcome, error) {
		return h.petService.Cure(ctx, id, req.Illness)
	})
}

// Revive godoc
// @Summary Revive a dead pet
// @Tags pet-actions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pet ID"
// @Success 200 {object} ActionResponse
// @Failure 404 {object} ErrorResponse
// @Router /mascotas/{id}/revivir [post]
func (h *PetHandler) Revive(w http.ResponseWriter, r *http.Request) {
	h.runAction(w, r, "PetHandler.Revive", h.petService.Revive)
}

// Kill godoc
// @Summary Kill a pet
// @Tags pet-actions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pet ID"
// @Param payload body KillRequest false "Cause of death"
// @Success 200 {object} ActionResponse
// @Failure 404 {object} ErrorResponse
// @Router /mascotas/{id}/matar [post]
func (h *PetHandler) Kill(w http.ResponseWriter, r *http.Request) {
	var req KillRequest
	if err := decodeJSON(r, &req, true); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.runAction(w, r, "PetHandler.Kill", func(ctx context.Context, id int64) (*service.ActionOutcome, error) {
		return h.petService.Kill(ctx, id, req.Cause)
	})
}

// LifePotion godoc
// @Summary Give a life potion
// @Tags pet-actions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pet ID"
// @Param payload body LifePotionRequest true "Amount of life to restore"
// @Success 200 {object} ActionResponse
// @Failure 404 {object} ErrorResponse
// @Router /mascotas/{id}/pocion-vida [post]
func (h *PetHandler) LifePotion(w http.ResponseWriter, r *http.Request) {
	var req LifePotionRequest
	if err := decodeJSON(r, &req, true); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	amount := parseAmount(req.Amount)
	h.runAction(w, r, "PetHandler.LifePotion", func(ctx context.Context, id int64) (*service.ActionOutcome, error) {
		return h.petService.LifePotion(ctx, id, amount)
	})
}

// parseAmount returns NaN for anything that is not a number, which the
// potion rejects as an invalid amount.
func parseAmount(v any) float64 {
	switch a := v.(type) {
	case float64:
		return a
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}
