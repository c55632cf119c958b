package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"

	"github.com/dom/superhero-pets/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Ranking(ctx context.Context) ([]domain.RankingEntry, error)
}

// PetFilter narrows a pet listing. The zero value lists every pet.
type PetFilter struct {
	// Adopted: nil = any, true = only adopted, false = only available.
	Adopted *bool
	// AdoptedBy restricts to pets adopted by this user.
	AdoptedBy *uuid.UUID
	// VisibleTo lists pets that are available or adopted by this user.
	VisibleTo *uuid.UUID
}

type PetRepository interface {
	Create(ctx context.Context, pet *domain.Pet) error
	CreateMany(ctx context.Context, pets []*domain.Pet) error
	GetByID(ctx context.Context, id int64) (*domain.Pet, error)
	List(ctx context.Context, filter PetFilter) ([]*domain.Pet, error)
	// Update writes pet only if the stored version still equals pet.Version,
	// then bumps pet.Version. Returns domain.ErrVersionConflict otherwise.
	Update(ctx context.Context, pet *domain.Pet) error
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context, filter PetFilter) (int64, error)
	// SetAdopter sets the adopter when the pet is still available.
	SetAdopter(ctx context.Context, petID int64, userID uuid.UUID) (bool, error)
	// ClearAdopter clears the adopter when it is still userID.
	ClearAdopter(ctx context.Context, petID int64, userID uuid.UUID) (bool, error)
}

type HeroRepository interface {
	Create(ctx context.Context, hero *domain.Hero) error
	CreateMany(ctx context.Context, heroes []*domain.Hero) error
	GetByID(ctx context.Context, id int64) (*domain.Hero, error)
	GetAll(ctx context.Context) ([]*domain.Hero, error)
	Update(ctx context.Context, hero *domain.Hero) error
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	CreateMany(ctx context.Context, items []*domain.Item) error
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	GetByName(ctx context.Context, name string) (*domain.Item, error)
	GetAll(ctx context.Context) ([]*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type CounterRepository interface {
	// Next atomically increments the named counter and returns the new value.
	Next(ctx context.Context, name string) (int64, error)
	// Reserve atomically advances the named counter by n and returns the
	// first value of the reserved block.
	Reserve(ctx context.Context, name string, n int) (int64, error)
}

type Repositories struct {
	User    UserRepository
	Pet     PetRepository
	Hero    HeroRepository
	Item    ItemRepository
	Counter CounterRepository
}
