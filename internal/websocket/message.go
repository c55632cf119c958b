package websocket

import (
	"encoding/json"
	"time"

	"github.com/dom/superhero-pets/internal/domain"
)

type MessageType string

const (
	// Client to Server
	MessageTypePing MessageType = "PING"

	// Server to Client
	MessageTypePong       MessageType = "PONG"
	MessageTypePetUpdated MessageType = "PET_UPDATED"
	MessageTypePetDeleted MessageType = "PET_DELETED"
	MessageTypeError      MessageType = "ERROR"
)

type Message struct {
	Type      MessageType     `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp int64           `json:"timestamp"`
}

func NewMessage(msgType MessageType, payload interface{}) (*Message, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Message{
		Type:      msgType,
		Payload:   payloadBytes,
		Timestamp: time.Now().UnixMilli(),
	}, nil
}

// Server to Client payloads

type PetUpdatedPayload struct {
	Pet *domain.Pet `json:"pet"`
}

type PetDeletedPayload struct {
	PetID int64 `json:"petId"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
