package service

import (
	"github.com/dom/superhero-pets/internal/config"
	"github.com/dom/superhero-pets/internal/repository"
)

type Services struct {
	Auth     *AuthService
	User     *UserService
	Pet      *PetService
	Adoption *AdoptionService
	Hero     *HeroService
	Item     *ItemService
}

// NewServices wires every service. events may be nil when nobody listens
// for pet changes.
func NewServices(repos *repository.Repositories, cfg *config.Config, events PetEvents) *Services {
	if events == nil {
		events = noopEvents{}
	}
	return &Services{
		Auth:     NewAuthService(repos.User, cfg),
		User:     NewUserService(repos.User, repos.Pet),
		Pet:      NewPetService(repos.Pet, repos.Item, repos.Counter, events),
		Adoption: NewAdoptionService(repos.Pet, events),
		Hero:     NewHeroService(repos.Hero, repos.Pet, repos.Counter, events),
		Item:     NewItemService(repos.Item, repos.Counter),
	}
}
