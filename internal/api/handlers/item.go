package handlers

import (
	"net/http"

	"github.com/dom/superhero-pets/internal/domain"
	"github.com/dom/superhero-pets/internal/service"
)

type ItemHandler struct {
	itemService *service.ItemService
}

func NewItemHandler(itemService *service.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

type ItemRequest struct {
	Name string          `json:"name"`
	Kind domain.ItemKind `json:"kind" enums:"free,paid"`
}

// List godoc
// @Summary List catalog items
// @Tags items
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Item
// @Router /items [get]
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.itemService.List(r.Context())
	if err != nil {
		writeServiceError(w, "ItemHandler.List", err)
		return
	}
	if items == nil {
		items = []*domain.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

// Get godoc
// @Summary Get a catalog item
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} domain.Item
// @Failure 404 {object} ErrorResponse
// @Router /items/{id} [get]
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	item, err := h.itemService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, "ItemHandler.Get", err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Create godoc
// @Summary Add an item to the catalog
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body ItemRequest true "Item"
// @Success 201 {object} domain.Item
// @Failure 400 {object} ErrorResponse "missing fields, bad kind or duplicate name"
// @Router /items [post]
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.itemService.Create(r.Context(), service.ItemInput{Name: req.Name, Kind: req.Kind})
	if err != nil {
		writeServiceError(w, "ItemHandler.Create", err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// Update godoc
// @Summary Replace a catalog item
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Param payload body ItemRequest true "Item"
// @Success 200 {object} domain.Item
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /items/{id} [put]
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var req ItemRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.itemService.Update(r.Context(), id, service.ItemInput{Name: req.Name, Kind: req.Kind})
	if err != nil {
		writeServiceError(w, "ItemHandler.Update", err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Delete godoc
// @Summary Remove a catalog item
// @Tags items
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /items/{id} [delete]
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid item ID")
		return
	}

	if err := h.itemService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, "ItemHandler.Delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Seed godoc
// @Summary Fill the catalog with the starter items
// @Description Also served at /items/poblar30. Does nothing once the catalog has 30 items.
// @Tags items
// @Produce json
// @Success 200 {object} service.SeedResult
// @Router /items/poblar [post]
func (h *ItemHandler) Seed(w http.ResponseWriter, r *http.Request) {
	result, err := h.itemService.Seed(r.Context())
	if err != nil {
		writeServiceError(w, "ItemHandler.Seed", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
