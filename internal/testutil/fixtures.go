package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/dom/superhero-pets/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	name     string
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		name:     fmt.Sprintf("testuser_%s", suffix),
		email:    fmt.Sprintf("testuser_%s@example.com", suffix),
		password: "testpassword123",
	}
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Name:         b.name,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// BuildAndAuthenticate registers the user via the API, logs in and returns
// the user with its token.
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	resp := PostJSON(t, ts.APIURL("/usuarios/registro"), map[string]string{
		"name":     b.name,
		"email":    b.email,
		"password": b.password,
	}, "")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected register status code: %d", resp.StatusCode)
	}

	var registered struct {
		User struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&registered); err != nil {
		t.Fatalf("failed to decode register response: %v", err)
	}

	loginResp := PostJSON(t, ts.APIURL("/usuarios/login"), map[string]string{
		"email":    b.email,
		"password": b.password,
	}, "")
	defer loginResp.Body.Close()
	if loginResp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected login status code: %d", loginResp.StatusCode)
	}

	var login struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(loginResp.Body).Decode(&login); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}

	userID, _ := uuid.Parse(registered.User.ID)
	user := &domain.User{
		ID:    userID,
		Name:  registered.User.Name,
		Email: registered.User.Email,
	}

	return user, login.Token
}

// PetBuilder creates test pets directly in the database
type PetBuilder struct {
	pet *domain.Pet
}

// NewPetBuilder creates a healthy, available pet. Give each pet in a test
// its own id with WithID.
func NewPetBuilder() *PetBuilder {
	return &PetBuilder{pet: domain.NewPet("Krypto", nil)}
}

func (b *PetBuilder) WithID(id int64) *PetBuilder {
	b.pet.ID = id
	return b
}

func (b *PetBuilder) WithName(name string) *PetBuilder {
	b.pet.Name = name
	return b
}

func (b *PetBuilder) WithHero(name string) *PetBuilder {
	b.pet.OwnerHeroName = &name
	return b
}

func (b *PetBuilder) WithStats(happiness, life int) *PetBuilder {
	b.pet.Happiness = happiness
	b.pet.Life = life
	return b
}

func (b *PetBuilder) WithIllnesses(names ...string) *PetBuilder {
	b.pet.Illnesses = datatypes.JSONSlice[string](names)
	return b
}

func (b *PetBuilder) Dead(cause string) *PetBuilder {
	b.pet.Life = 0
	b.pet.CauseOfDeath = &cause
	return b
}

func (b *PetBuilder) AdoptedBy(user *domain.User) *PetBuilder {
	id := user.ID
	b.pet.AdoptedByUserID = &id
	return b
}

// Build inserts the pet. Pets without an id get one far above anything the
// counter hands out during a test.
func (b *PetBuilder) Build(t *testing.T, db *gorm.DB) *domain.Pet {
	t.Helper()

	if b.pet.ID == 0 {
		b.pet.ID = 1_000_000 + time.Now().UnixNano()%1_000_000
	}
	if err := db.Omit("AdoptedBy").Create(b.pet).Error; err != nil {
		t.Fatalf("failed to create pet: %v", err)
	}
	return b.pet
}

// SeedItem inserts a catalog item directly.
func SeedItem(t *testing.T, db *gorm.DB, id int64, name string, kind domain.ItemKind) *domain.Item {
	t.Helper()

	item := &domain.Item{ID: id, Name: name, Kind: kind}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create item: %v", err)
	}
	return item
}

// SeedHero inserts a hero directly.
func SeedHero(t *testing.T, db *gorm.DB, id int64, name, alias string) *domain.Hero {
	t.Helper()

	hero := &domain.Hero{ID: id, Name: name, Alias: alias}
	if err := db.Create(hero).Error; err != nil {
		t.Fatalf("failed to create hero: %v", err)
	}
	return hero
}

// CreateAuthenticatedRequest creates an HTTP request with auth token
func CreateAuthenticatedRequest(t *testing.T, method, url string, body interface{}, token string) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}

// Do sends an authenticated request with http.DefaultClient.
func Do(t *testing.T, method, url string, body interface{}, token string) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(CreateAuthenticatedRequest(t, method, url, body, token))
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	return resp
}

// PostJSON is Do with POST.
func PostJSON(t *testing.T, url string, body interface{}, token string) *http.Response {
	t.Helper()
	return Do(t, http.MethodPost, url, body, token)
}
