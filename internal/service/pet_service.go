package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"

	"github.com/dom/superhero-pets/internal/domain"
	"github.com/dom/superhero-pets/internal/repository"
	"github.com/google/uuid"
)

var ErrPetNameRequired = errors.New("pet name is required")

type PetService struct {
	petRepo     repository.PetRepository
	itemRepo    repository.ItemRepository
	counterRepo repository.CounterRepository
	events      PetEvents
	pick        domain.Picker
}

func NewPetService(
	petRepo repository.PetRepository,
	itemRepo repository.ItemRepository,
	counterRepo repository.CounterRepository,
	events PetEvents,
) *PetService {
	if events == nil {
		events = noopEvents{}
	}
	return &PetService{
		petRepo:     petRepo,
		itemRepo:    itemRepo,
		counterRepo: counterRepo,
		events:      events,
		pick:        rand.IntN,
	}
}

// SetPicker replaces the random source used to choose illnesses.
func (s *PetService) SetPicker(pick domain.Picker) {
	s.pick = pick
}

type CreatePetInput struct {
	Name          string
	OwnerHeroName *string
}

// UpdatePetInput carries the fields a PUT may change. Nil fields are kept.
// Welfare stats only move through the actions.
type UpdatePetInput struct {
	Name          *string
	OwnerHeroName *string
}

// ActionOutcome is the result of one pet action together with the pet as
// it stands afterwards.
type ActionOutcome struct {
	Result domain.ActionResult
	Pet    *domain.Pet
}

func (s *PetService) Create(ctx context.Context, input CreatePetInput) (*domain.Pet, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrPetNameRequired
	}

	id, err := s.counterRepo.Next(ctx, domain.CounterPets)
	if err != nil {
		return nil, err
	}

	pet := domain.NewPet(name, blankToNil(input.OwnerHeroName))
	pet.ID = id
	if err := s.petRepo.Create(ctx, pet); err != nil {
		return nil, err
	}

	s.events.PetUpdated(pet)
	return pet, nil
}

func (s *PetService) Get(ctx context.Context, id int64) (*domain.Pet, error) {
	return s.petRepo.GetByID(ctx, id)
}

// ListVisible returns the pets that are available or adopted by viewer.
func (s *PetService) ListVisible(ctx context.Context, viewer uuid.UUID) ([]*domain.Pet, error) {
	return s.petRepo.List(ctx, repository.PetFilter{VisibleTo: &viewer})
}

func (s *PetService) Update(ctx context.Context, id int64, input UpdatePetInput) (*domain.Pet, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, ErrPetNameRequired
	}

	pet, changed, err := mutatePet(ctx, s.petRepo, id, func(p *domain.Pet) (bool, error) {
		if input.Name != nil {
			p.Name = strings.TrimSpace(*input.Name)
		}
		if input.OwnerHeroName != nil {
			p.OwnerHeroName = blankToNil(input.OwnerHeroName)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if changed {
		s.events.PetUpdated(pet)
	}
	return pet, nil
}

func (s *PetService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.petRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrPetNotFound
	}
	s.events.PetDeleted(id)
	return nil
}

func (s *PetService) Feed(ctx context.Context, id int64) (*ActionOutcome, error) {
	return s.apply(ctx, id, func(p *domain.Pet) domain.ActionResult {
		return domain.Feed(p, s.pick)
	})
}

func (s *PetService) Walk(ctx context.Context, id int64) (*ActionOutcome, error) {
	return s.apply(ctx, id, domain.Walk)
}

func (s *PetService) Customize(ctx context.Context, id int64, itemName string) (*ActionOutcome, error) {
	var item *domain.Item
	if strings.TrimSpace(itemName) != "" {
		found, err := s.itemRepo.GetByName(ctx, itemName)
		if err != nil && !errors.Is(err, domain.ErrItemNotFound) {
			return nil, err
		}
		item = found
	}

	return s.apply(ctx, id, func(p *domain.Pet) domain.ActionResult {
		return domain.Customize(p, itemName, item)
	})
}

func (s *PetService) Sicken(ctx context.Context, id int64, illnessName string) (*ActionOutcome, error) {
	return s.apply(ctx, id, func(p *domain.Pet) domain.ActionResult {
		return domain.Sicken(p, illnessName, s.pick)
	})
}

func (s *PetService) Cure(ctx context.Context, id int64, illnessName string) (*ActionOutcome, error) {
	return s.apply(ctx, id, func(p *domain.Pet) domain.ActionResult {
		return domain.Cure(p, illnessName)
	})
}

func (s *PetService) Revive(ctx context.Context, id int64) (*ActionOutcome, error) {
	return s.apply(ctx, id, domain.Revive)
}

func (s *PetService) Kill(ctx context.Context, id int64, cause string) (*ActionOutcome, error) {
	return s.apply(ctx, id, func(p *domain.Pet) domain.ActionResult {
		return domain.Kill(p, cause)
	})
}

func (s *PetService) LifePotion(ctx context.Context, id int64, amount float64) (*ActionOutcome, error) {
	return s.apply(ctx, id, func(p *domain.Pet) domain.ActionResult {
		return domain.LifePotion(p, amount)
	})
}

func (s *PetService) apply(ctx context.Context, id int64, action func(p *domain.Pet) domain.ActionResult) (*ActionOutcome, error) {
	var result domain.ActionResult
	pet, changed, err := mutatePet(ctx, s.petRepo, id, func(p *domain.Pet) (bool, error) {
		result = action(p)
		return result.Applied, nil
	})
	if err != nil {
		return nil, err
	}
	if changed {
		s.events.PetUpdated(pet)
	}
	return &ActionOutcome{Result: result, Pet: pet}, nil
}

// Seed inserts the starter pets while there are fewer pets than starters.
func (s *PetService) Seed(ctx context.Context) (*SeedResult, error) {
	count, err := s.petRepo.Count(ctx, repository.PetFilter{})
	if err != nil {
		return nil, err
	}
	if count >= int64(len(seedPets)) {
		return &SeedResult{Inserted: 0, Total: count}, nil
	}

	first, err := s.counterRepo.Reserve(ctx, domain.CounterPets, len(seedPets))
	if err != nil {
		return nil, err
	}

	pets := make([]*domain.Pet, 0, len(seedPets))
	for i, name := range seedPets {
		pet := domain.NewPet(name, nil)
		pet.ID = first + int64(i)
		pets = append(pets, pet)
	}
	if err := s.petRepo.CreateMany(ctx, pets); err != nil {
		return nil, err
	}

	for _, pet := range pets {
		s.events.PetUpdated(pet)
	}
	return &SeedResult{Inserted: len(pets), Total: count + int64(len(pets))}, nil
}

// SeedResult reports what a seed call did.
type SeedResult struct {
	Inserted int   `json:"inserted"`
	Total    int64 `json:"total"`
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
