package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/dom/superhero-pets/internal/domain"
	"github.com/dom/superhero-pets/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type petBody struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	OwnerHeroName *string `json:"ownerHeroName"`
	Happiness     int     `json:"happiness"`
	Life          int     `json:"life"`
}

func createPet(t *testing.T, ts *testutil.TestServer, token, name string) petBody {
	t.Helper()

	resp := testutil.PostJSON(t, ts.APIURL("/mascotas"), map[string]string{"name": name}, token)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var pet petBody
	testutil.AssertJSONResponse(t, resp, &pet)
	return pet
}

func TestPetHandler_CRUD(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

	t.Run("requires auth", func(t *testing.T) {
		resp := testutil.Do(t, http.MethodGet, ts.APIURL("/mascotas"), nil, "")
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
	})

	t.Run("create starts with defaults", func(t *testing.T) {
		pet := createPet(t, ts, token, "Krypto")
		assert.Equal(t, "Krypto", pet.Name)
		assert.Equal(t, domain.DefaultHappiness, pet.Happiness)
		assert.Equal(t, domain.DefaultLife, pet.Life)
		assert.Nil(t, pet.OwnerHeroName)
	})

	t.Run("create without name", func(t *testing.T) {
		resp := testutil.PostJSON(t, ts.APIURL("/mascotas"), map[string]string{}, token)
		defer resp.Body.Close()
		testutil.AssertErrorResponse(t, resp, http.StatusBadRequest, "name")
	})

	t.Run("ids are never reused", func(t *testing.T) {
		first := createPet(t, ts, token, "Ace")

		resp := testutil.Do(t, http.MethodDelete, ts.APIURL(fmt.Sprintf("/mascotas/%d", first.ID)), nil, token)
		resp.Body.Close()
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		second := createPet(t, ts, token, "Streaky")
		assert.Greater(t, second.ID, first.ID)

		resp = testutil.Do(t, http.MethodGet, ts.APIURL(fmt.Sprintf("/mascotas/%d", first.ID)), nil, token)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusNotFound)
	})

	t.Run("update", func(t *testing.T) {
		pet := createPet(t, ts, token, "Comet")

		resp := testutil.Do(t, http.MethodPut, ts.APIURL(fmt.Sprintf("/mascotas/%d", pet.ID)), map[string]any{
			"name":          "Comet II",
			"ownerHeroName": "Supergirl",
		}, token)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)
		var updated petBody
		testutil.AssertJSONResponse(t, resp, &updated)
		assert.Equal(t, "Comet II", updated.Name)
		assert.Equal(t, domain.DefaultHappiness, updated.Happiness)
		require.NotNil(t, updated.OwnerHeroName)
		assert.Equal(t, "Supergirl", *updated.OwnerHeroName)
	})

	t.Run("update cannot revive or kill", func(t *testing.T) {
		dead := testutil.NewPetBuilder().WithID(500).Dead("Poison").Build(t, ts.DB.DB)
		alive := testutil.NewPetBuilder().WithID(501).Build(t, ts.DB.DB)

		tests := []struct {
			name      string
			id        int64
			life      int
			wantLife  int
			wantCause *string
		}{
			{name: "dead pet sent life", id: dead.ID, life: 50, wantLife: 0, wantCause: dead.CauseOfDeath},
			{name: "live pet sent zero life", id: alive.ID, life: 0, wantLife: domain.DefaultLife},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				resp := testutil.Do(t, http.MethodPut, ts.APIURL(fmt.Sprintf("/mascotas/%d", tt.id)), map[string]any{
					"life":      tt.life,
					"happiness": 100,
				}, token)
				defer resp.Body.Close()

				testutil.AssertStatusCode(t, resp, http.StatusOK)
				var updated struct {
					petBody
					CauseOfDeath *string `json:"causeOfDeath"`
				}
				testutil.AssertJSONResponse(t, resp, &updated)
				assert.Equal(t, tt.wantLife, updated.Life)
				assert.Equal(t, domain.DefaultHappiness, updated.Happiness)
				assert.Equal(t, tt.wantCause, updated.CauseOfDeath)
			})
		}

		resp := testutil.PostJSON(t, ts.APIURL(fmt.Sprintf("/mascotas/%d/revivir", dead.ID)), nil, token)
		defer resp.Body.Close()
		testutil.AssertAction(t, resp, true, string(domain.ReasonRevived))
	})

	t.Run("invalid id", func(t *testing.T) {
		resp := testutil.Do(t, http.MethodGet, ts.APIURL("/mascotas/abc"), nil, token)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
	})
}

func TestPetHandler_ListHidesOtherUsersPets(t *testing.T) {
	ts := testutil.NewTestServer(t)
	me, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
	other, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)

	testutil.NewPetBuilder().WithID(1).Build(t, ts.DB.DB)
	testutil.NewPetBuilder().WithID(2).AdoptedBy(me).Build(t, ts.DB.DB)
	testutil.NewPetBuilder().WithID(3).AdoptedBy(other).Build(t, ts.DB.DB)

	resp := testutil.Do(t, http.MethodGet, ts.APIURL("/mascotas"), nil, token)
	defer resp.Body.Close()

	var pets []petBody
	testutil.AssertJSONResponse(t, resp, &pets)
	ids := make([]int64, 0, len(pets))
	for _, p := range pets {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int64{1, 2}, ids)
}

func TestPetHandler_Actions(t *testing.T) {
	ts := testutil.NewTestServer(t)
	_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
	testutil.SeedItem(t, ts.DB.DB, 1, "Cape", domain.ItemKindPaid)

	action := func(t *testing.T, id int64, path string, body any) *http.Response {
		t.Helper()
		return testutil.PostJSON(t, ts.APIURL(fmt.Sprintf("/mascotas/%d/%s", id, path)), body, token)
	}

	t.Run("feed", func(t *testing.T) {
		pet := testutil.NewPetBuilder().WithID(10).Build(t, ts.DB.DB)
		resp := action(t, pet.ID, "alimentar", nil)
		defer resp.Body.Close()

		body := testutil.AssertAction(t, resp, true, string(domain.ReasonFed))
		assert.Equal(t, 60, body.Pet.Happiness)
	})

	t.Run("walk cures the oldest illness", func(t *testing.T) {
		pet := testutil.NewPetBuilder().WithID(11).WithIllnesses("Flu", "Cold").Build(t, ts.DB.DB)
		resp := action(t, pet.ID, "pasear", nil)
		defer resp.Body.Close()

		body := testutil.AssertAction(t, resp, true, string(domain.ReasonWalkedCured))
		assert.Equal(t, []string{"Cold"}, body.Pet.Illnesses)
	})

	t.Run("customize with a catalog item", func(t *testing.T) {
		pet := testutil.NewPetBuilder().WithID(12).Build(t, ts.DB.DB)
		resp := action(t, pet.ID, "personalizar", map[string]string{"item": "cape"})
		defer resp.Body.Close()

		body := testutil.AssertAction(t, resp, true, string(domain.ReasonCustomized))
		require.Len(t, body.Pet.CustomItems, 1)
		assert.Equal(t, "Cape", body.Pet.CustomItems[0].Name)
		assert.Equal(t, "paid", body.Pet.CustomItems[0].Kind)
	})

	t.Run("customize with an unknown item is a soft failure", func(t *testing.T) {
		pet := testutil.NewPetBuilder().WithID(13).Build(t, ts.DB.DB)
		resp := action(t, pet.ID, "personalizar", map[string]string{"item": "Jetpack"})
		defer resp.Body.Close()

		body := testutil.AssertAction(t, resp, false, string(domain.ReasonInvalidItem))
		assert.Empty(t, body.Pet.CustomItems)
	})

	t.Run("sicken and cure", func(t *testing.T) {
		pet := testutil.NewPetBuilder().WithID(14).Build(t, ts.DB.DB)

		resp := action(t, pet.ID, "enfermar", map[string]string{"illness": "Flu"})
		testutil.AssertAction(t, resp, true, string(domain.ReasonSickened))
		resp.Body.Close()

		resp = action(t, pet.ID, "enfermar", map[string]string{"illness": "flu"})
		testutil.AssertAction(t, resp, false, string(domain.ReasonAlreadySick))
		resp.Body.Close()

		resp = action(t, pet.ID, "curar", map[string]string{"illness": "FLU"})
		body := testutil.AssertAction(t, resp, true, string(domain.ReasonCured))
		resp.Body.Close()
		assert.Empty(t, body.Pet.Illnesses)
	})

	t.Run("kill and revive", func(t *testing.T) {
		pet := testutil.NewPetBuilder().WithID(15).Build(t, ts.DB.DB)

		resp := action(t, pet.ID, "matar", nil)
		body := testutil.AssertAction(t, resp, true, string(domain.ReasonKilled))
		resp.Body.Close()
		require.NotNil(t, body.Pet.CauseOfDeath)
		assert.Equal(t, domain.UnknownCauseOfDeath, *body.Pet.CauseOfDeath)

		resp = action(t, pet.ID, "alimentar", nil)
		testutil.AssertAction(t, resp, false, string(domain.ReasonPetDead))
		resp.Body.Close()

		resp = action(t, pet.ID, "revivir", nil)
		body = testutil.AssertAction(t, resp, true, string(domain.ReasonRevived))
		resp.Body.Close()
		assert.Equal(t, domain.ReviveLife, body.Pet.Life)
		assert.Nil(t, body.Pet.CauseOfDeath)
	})

	t.Run("life potion", func(t *testing.T) {
		tests := []struct {
			name    string
			amount  any
			applied bool
			reason  domain.ActionReason
			life    int
		}{
			{name: "number", amount: 20, applied: true, reason: domain.ReasonHealed, life: 60},
			{name: "numeric string", amount: "5", applied: true, reason: domain.ReasonHealed, life: 45},
			{name: "fraction rounds up", amount: 0.2, applied: true, reason: domain.ReasonHealed, life: 41},
			{name: "not a number", amount: "lots", reason: domain.ReasonInvalidAmount, life: 40},
			{name: "negative", amount: -3, reason: domain.ReasonInvalidAmount, life: 40},
			{name: "missing", amount: nil, reason: domain.ReasonInvalidAmount, life: 40},
		}

		for i, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				pet := testutil.NewPetBuilder().WithID(int64(100 + i)).WithStats(50, 40).Build(t, ts.DB.DB)
				resp := action(t, pet.ID, "pocion-vida", map[string]any{"amount": tt.amount})
				defer resp.Body.Close()

				body := testutil.AssertAction(t, resp, tt.applied, string(tt.reason))
				assert.Equal(t, tt.life, body.Pet.Life)
			})
		}
	})

	t.Run("unknown pet", func(t *testing.T) {
		resp := action(t, 9999, "alimentar", nil)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusNotFound)
	})
}
