package websocket

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/dom/superhero-pets/internal/domain"
)

// Hub fans pet changes out to every connected client. It holds connections
// only; pet state always comes from the store.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	stop       chan struct{}
	done       chan struct{} // closed when Run() exits
	stopped    bool
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.stop:
			h.mu.Lock()
			h.stopped = true
			for client := range h.clients {
				client.Close()
			}
			h.clients = make(map[*Client]bool)
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if !h.stopped {
				h.clients[client] = true
			}
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.Close()
			}
			h.mu.Unlock()

		case data := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				if !client.trySend(data) {
					log.Printf("Hub: dropping slow client %s", client.userID)
					delete(h.clients, client)
					client.Close()
				}
			}
			h.mu.Unlock()
		}
	}
}

// Stop disconnects every client and blocks until Run has returned.
func (h *Hub) Stop() {
	h.mu.Lock()
	if h.stopped {
		h.mu.Unlock()
		return
	}
	h.mu.Unlock()

	close(h.stop)
	<-h.done
}

func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
		client.Close()
	}
}

// Unregister safely unregisters a client, handling the case where the hub may be stopped.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) Broadcast(msg *Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("ERROR [websocket.Broadcast] failed to marshal message: %v", err)
		return
	}

	select {
	case h.broadcast <- data:
	case <-h.done:
	default:
		log.Printf("Hub: broadcast queue full, dropping %s", msg.Type)
	}
}

// PetUpdated implements service.PetEvents.
func (h *Hub) PetUpdated(pet *domain.Pet) {
	msg, err := NewMessage(MessageTypePetUpdated, PetUpdatedPayload{Pet: pet})
	if err != nil {
		log.Printf("ERROR [websocket.PetUpdated] pet %d: %v", pet.ID, err)
		return
	}
	h.Broadcast(msg)
}

// PetDeleted implements service.PetEvents.
func (h *Hub) PetDeleted(id int64) {
	msg, err := NewMessage(MessageTypePetDeleted, PetDeletedPayload{PetID: id})
	if err != nil {
		log.Printf("ERROR [websocket.PetDeleted] pet %d: %v", id, err)
		return
	}
	h.Broadcast(msg)
}
