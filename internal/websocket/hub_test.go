package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dom/superhero-pets/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(h *Hub, buffer int) *Client {
	return &Client{
		hub:    h,
		send:   make(chan []byte, buffer),
		userID: uuid.New(),
	}
}

func waitForClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return h.ClientCount() == n }, time.Second, 10*time.Millisecond)
}

func receive(t *testing.T, c *Client) *Message {
	t.Helper()
	select {
	case data, ok := <-c.send:
		require.True(t, ok, "send channel closed")
		var msg Message
		require.NoError(t, json.Unmarshal(data, &msg))
		return &msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return nil
	}
}

func TestHub_BroadcastsPetEventsToAllClients(t *testing.T) {
	h := NewHub()
	go h.Run()
	defer h.Stop()

	a := newTestClient(h, 8)
	b := newTestClient(h, 8)
	h.Register(a)
	h.Register(b)
	waitForClients(t, h, 2)

	pet := domain.NewPet("Krypto", nil)
	pet.ID = 7
	h.PetUpdated(pet)

	for _, c := range []*Client{a, b} {
		msg := receive(t, c)
		assert.Equal(t, MessageTypePetUpdated, msg.Type)

		var payload PetUpdatedPayload
		require.NoError(t, json.Unmarshal(msg.Payload, &payload))
		assert.Equal(t, int64(7), payload.Pet.ID)
		assert.Equal(t, "Krypto", payload.Pet.Name)
	}

	h.PetDeleted(7)

	msg := receive(t, a)
	assert.Equal(t, MessageTypePetDeleted, msg.Type)
	var deleted PetDeletedPayload
	require.NoError(t, json.Unmarshal(msg.Payload, &deleted))
	assert.Equal(t, int64(7), deleted.PetID)
}

func TestHub_UnregisterClosesClient(t *testing.T) {
	h := NewHub()
	go h.Run()
	defer h.Stop()

	c := newTestClient(h, 1)
	h.Register(c)
	waitForClients(t, h, 1)

	h.Unregister(c)
	waitForClients(t, h, 0)

	_, ok := <-c.send
	assert.False(t, ok)
}

func TestHub_DropsSlowClient(t *testing.T) {
	h := NewHub()
	go h.Run()
	defer h.Stop()

	slow := newTestClient(h, 1)
	h.Register(slow)
	waitForClients(t, h, 1)

	h.PetDeleted(1)
	h.PetDeleted(2)

	waitForClients(t, h, 0)
}

func TestHub_StopClosesClients(t *testing.T) {
	h := NewHub()
	go h.Run()

	c := newTestClient(h, 1)
	h.Register(c)
	waitForClients(t, h, 1)

	h.Stop()

	_, ok := <-c.send
	assert.False(t, ok)

	// Calls after Stop must not block.
	h.PetDeleted(3)
	h.Unregister(c)
}
