package handlers

import (
	"log"
	"net/http"

	"github.com/dom/superhero-pets/internal/service"
	"github.com/dom/superhero-pets/internal/websocket"
	ws "github.com/gorilla/websocket"
)

var upgrader = ws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WebSocketHandler struct {
	hub         *websocket.Hub
	authService *service.AuthService
}

func NewWebSocketHandler(hub *websocket.Hub, authService *service.AuthService) *WebSocketHandler {
	return &WebSocketHandler{
		hub:         hub,
		authService: authService,
	}
}

// Handle godoc
// @Summary Live pet feed
// @Description Upgrades to a WebSocket that pushes PET_UPDATED and PET_DELETED messages.
// @Tags feed
// @Param token query string true "JWT issued by /usuarios/login"
// @Success 101
// @Failure 401 {object} ErrorResponse
// @Router /ws [get]
func (h *WebSocketHandler) Handle(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		writeError(w, http.StatusUnauthorized, "Token required")
		return
	}

	user, err := h.authService.ResolveUser(r.Context(), token)
	if err != nil {
		writeServiceError(w, "WebSocketHandler.Handle", err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	client := websocket.NewClient(h.hub, conn, user.ID)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
