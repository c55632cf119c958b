package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/dom/superhero-pets/internal/testutil"
	"github.com/dom/superhero-pets/internal/websocket"
	gorillaWS "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebSocket_RejectsBadTokens(t *testing.T) {
	ts := testutil.NewTestServer(t)

	for _, token := range []string{"", "garbage"} {
		_, resp, err := gorillaWS.DefaultDialer.Dial(ts.WebSocketURL(token), nil)
		require.Error(t, err)
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
}

func TestWebSocket_PetFeed(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	ws := testutil.NewWSClient(t, ts.WebSocketURL(token))

	t.Run("ping", func(t *testing.T) {
		ws.Send(websocket.MessageTypePing)
		ws.ExpectMessage(websocket.MessageTypePong, 2*time.Second)
	})

	pet := createPet(t, ts, token, "Lockjaw")

	t.Run("created pets are pushed", func(t *testing.T) {
		payload := ws.ExpectPetUpdated(pet.ID, 2*time.Second)
		assert.Equal(t, "Lockjaw", payload.Pet.Name)
	})

	t.Run("actions are pushed", func(t *testing.T) {
		resp := testutil.PostJSON(t, ts.APIURL(fmt.Sprintf("/mascotas/%d/alimentar", pet.ID)), nil, token)
		resp.Body.Close()

		payload := ws.ExpectPetUpdated(pet.ID, 2*time.Second)
		assert.Equal(t, 60, payload.Pet.Happiness)
	})

	t.Run("rejected actions are not pushed", func(t *testing.T) {
		resp := testutil.PostJSON(t, ts.APIURL(fmt.Sprintf("/mascotas/%d/revivir", pet.ID)), nil, token)
		resp.Body.Close()

		ws.ExpectNoMessage(300 * time.Millisecond)
	})

	t.Run("deletes are pushed", func(t *testing.T) {
		resp := testutil.Do(t, http.MethodDelete, ts.APIURL(fmt.Sprintf("/mascotas/%d", pet.ID)), nil, token)
		resp.Body.Close()

		payload := ws.ExpectPetDeleted(2 * time.Second)
		assert.Equal(t, pet.ID, payload.PetID)
	})

	t.Run("unknown messages get an error", func(t *testing.T) {
		ws.Send(websocket.MessageType("DANCE"))
		ws.ExpectMessage(websocket.MessageTypeError, 2*time.Second)
	})
}
