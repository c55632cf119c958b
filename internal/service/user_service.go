package service

import (
	"context"

	"github.com/dom/superhero-pets/internal/domain"
	"github.com/dom/superhero-pets/internal/repository"
	"github.com/google/uuid"
)

type UserService struct {
	userRepo repository.UserRepository
	petRepo  repository.PetRepository
}

func NewUserService(userRepo repository.UserRepository, petRepo repository.PetRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		petRepo:  petRepo,
	}
}

type Profile struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	AdoptedPetIDs []int64   `json:"adoptedPetIds"`
}

// Profile derives the adopted pet ids from the pets table.
func (s *UserService) Profile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	pets, err := s.petRepo.List(ctx, repository.PetFilter{AdoptedBy: &userID})
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(pets))
	for _, p := range pets {
		ids = append(ids, p.ID)
	}

	return &Profile{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		AdoptedPetIDs: ids,
	}, nil
}

func (s *UserService) Ranking(ctx context.Context) ([]domain.RankingEntry, error) {
	entries, err := s.userRepo.Ranking(ctx)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.RankingEntry{}
	}
	return entries, nil
}
