package testutil

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/dom/superhero-pets/internal/websocket"
	gorillaWS "github.com/gorilla/websocket"
)

// WSClient is a test WebSocket client
type WSClient struct {
	t        *testing.T
	conn     *gorillaWS.Conn
	messages chan *websocket.Message
	errors   chan error
	done     chan struct{}
	mu       sync.Mutex
}

// NewWSClient creates a new WebSocket test client
func NewWSClient(t *testing.T, url string) *WSClient {
	t.Helper()

	dialer := gorillaWS.DefaultDialer
	dialer.HandshakeTimeout = 5 * time.Second

	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to connect to websocket: %v", err)
	}

	client := &WSClient{
		t:        t,
		conn:     conn,
		messages: make(chan *websocket.Message, 100),
		errors:   make(chan error, 10),
		done:     make(chan struct{}),
	}

	go client.readPump()

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

// readPump reads messages from the WebSocket connection
func (c *WSClient) readPump() {
	defer close(c.messages)
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			select {
			case <-c.done:
			case c.errors <- err:
			default:
			}
			return
		}

		var msg websocket.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			select {
			case c.errors <- err:
			default:
			}
			continue
		}

		select {
		case c.messages <- &msg:
		case <-c.done:
			return
		}
	}
}

// Close closes the WebSocket connection gracefully
func (c *WSClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	select {
	case <-c.done:
		return
	default:
		close(c.done)
		c.conn.WriteMessage(gorillaWS.CloseMessage, gorillaWS.FormatCloseMessage(gorillaWS.CloseNormalClosure, ""))
		c.conn.Close()
	}
}

// Send writes a client message.
func (c *WSClient) Send(msgType websocket.MessageType) {
	c.t.Helper()

	c.mu.Lock()
	defer c.mu.Unlock()

	data, _ := json.Marshal(websocket.Message{Type: msgType, Timestamp: time.Now().UnixMilli()})
	if err := c.conn.WriteMessage(gorillaWS.TextMessage, data); err != nil {
		c.t.Fatalf("failed to send %s: %v", msgType, err)
	}
}

// ExpectMessage waits for a message of the specified type
func (c *WSClient) ExpectMessage(msgType websocket.MessageType, timeout time.Duration) *websocket.Message {
	c.t.Helper()

	deadline := time.After(timeout)
	for {
		select {
		case msg := <-c.messages:
			if msg == nil {
				c.t.Fatalf("connection closed while waiting for %s", msgType)
			}
			if msg.Type == msgType {
				return msg
			}
		case err := <-c.errors:
			c.t.Fatalf("error while waiting for %s: %v", msgType, err)
		case <-deadline:
			c.t.Fatalf("timeout waiting for message type %s", msgType)
		}
	}
}

// ExpectPetUpdated waits for a PET_UPDATED message about petID.
func (c *WSClient) ExpectPetUpdated(petID int64, timeout time.Duration) *websocket.PetUpdatedPayload {
	c.t.Helper()

	deadline := time.Now().Add(timeout)
	for {
		msg := c.ExpectMessage(websocket.MessageTypePetUpdated, time.Until(deadline))

		var payload websocket.PetUpdatedPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			c.t.Fatalf("failed to decode pet updated payload: %v", err)
		}
		if payload.Pet != nil && payload.Pet.ID == petID {
			return &payload
		}
	}
}

// ExpectPetDeleted waits for a PET_DELETED message.
func (c *WSClient) ExpectPetDeleted(timeout time.Duration) *websocket.PetDeletedPayload {
	c.t.Helper()

	msg := c.ExpectMessage(websocket.MessageTypePetDeleted, timeout)

	var payload websocket.PetDeletedPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		c.t.Fatalf("failed to decode pet deleted payload: %v", err)
	}
	return &payload
}

// ExpectNoMessage verifies no messages are received within timeout
func (c *WSClient) ExpectNoMessage(timeout time.Duration) {
	c.t.Helper()

	select {
	case msg := <-c.messages:
		if msg != nil {
			c.t.Fatalf("unexpected message received: %s", msg.Type)
		}
	case <-time.After(timeout):
	}
}
