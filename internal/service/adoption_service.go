package service

import (
	"context"

	"github.com/dom/superhero-pets/internal/domain"
	"github.com/dom/superhero-pets/internal/repository"
	"github.com/google/uuid"
)

type AdoptionService struct {
	petRepo repository.PetRepository
	events  PetEvents
}

func NewAdoptionService(petRepo repository.PetRepository, events PetEvents) *AdoptionService {
	if events == nil {
		events = noopEvents{}
	}
	return &AdoptionService{
		petRepo: petRepo,
		events:  events,
	}
}

func (s *AdoptionService) ListAvailable(ctx context.Context) ([]*domain.Pet, error) {
	adopted := false
	return s.petRepo.List(ctx, repository.PetFilter{Adopted: &adopted})
}

func (s *AdoptionService) ListAdopted(ctx context.Context) ([]*domain.Pet, error) {
	adopted := true
	return s.petRepo.List(ctx, repository.PetFilter{Adopted: &adopted})
}

func (s *AdoptionService) ListMine(ctx context.Context, userID uuid.UUID) ([]*domain.Pet, error) {
	return s.petRepo.List(ctx, repository.PetFilter{AdoptedBy: &userID})
}

// Adopt binds the pet to userID. The write only succeeds while the pet is
// still available, so two concurrent adopters cannot both win.
func (s *AdoptionService) Adopt(ctx context.Context, petID int64, userID uuid.UUID) (*domain.Pet, error) {
	ok, err := s.petRepo.SetAdopter(ctx, petID, userID)
	if err != nil {
		return nil, err
	}

	pet, err := s.petRepo.GetByID(ctx, petID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrPetAlreadyAdopted
	}

	s.events.PetUpdated(pet)
	return pet, nil
}

func (s *AdoptionService) Abandon(ctx context.Context, petID int64, userID uuid.UUID) (*domain.Pet, error) {
	ok, err := s.petRepo.ClearAdopter(ctx, petID, userID)
	if err != nil {
		return nil, err
	}

	pet, err := s.petRepo.GetByID(ctx, petID)
	if err != nil {
		return nil, err
	}
	if !ok {
		if !pet.IsAdopted() {
			return nil, domain.ErrPetNotAdopted
		}
		return nil, domain.ErrNotPetAdopter
	}

	s.events.PetUpdated(pet)
	return pet, nil
}

func (s *AdoptionService) Stats(ctx context.Context) (*domain.AdoptionStats, error) {
	total, err := s.petRepo.Count(ctx, repository.PetFilter{})
	if err != nil {
		return nil, err
	}
	adopted := true
	adoptedCount, err := s.petRepo.Count(ctx, repository.PetFilter{Adopted: &adopted})
	if err != nil {
		return nil, err
	}
	stats := domain.NewAdoptionStats(total, adoptedCount)
	return &stats, nil
}
