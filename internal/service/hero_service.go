package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dom/superhero-pets/internal/domain"
	"github.com/dom/superhero-pets/internal/repository"
)

var ErrHeroNameRequired = errors.New("hero name is required")

type HeroService struct {
	heroRepo    repository.HeroRepository
	petRepo     repository.PetRepository
	counterRepo repository.CounterRepository
	events      PetEvents
}

func NewHeroService(
	heroRepo repository.HeroRepository,
	petRepo repository.PetRepository,
	counterRepo repository.CounterRepository,
	events PetEvents,
) *HeroService {
	if events == nil {
		events = noopEvents{}
	}
	return &HeroService{
		heroRepo:    heroRepo,
		petRepo:     petRepo,
		counterRepo: counterRepo,
		events:      events,
	}
}

type HeroInput struct {
	Name  string
	Alias string
	City  string
	Team  string
}

func (in HeroInput) normalize() HeroInput {
	return HeroInput{
		Name:  strings.TrimSpace(in.Name),
		Alias: strings.TrimSpace(in.Alias),
		City:  strings.TrimSpace(in.City),
		Team:  strings.TrimSpace(in.Team),
	}
}

func (s *HeroService) List(ctx context.Context) ([]*domain.Hero, error) {
	return s.heroRepo.GetAll(ctx)
}

func (s *HeroService) Get(ctx context.Context, id int64) (*domain.Hero, error) {
	return s.heroRepo.GetByID(ctx, id)
}

func (s *HeroService) Create(ctx context.Context, input HeroInput) (*domain.Hero, error) {
	input = input.normalize()
	if input.Name == "" {
		return nil, ErrHeroNameRequired
	}

	id, err := s.counterRepo.Next(ctx, domain.CounterHeroes)
	if err != nil {
		return nil, err
	}

	hero := &domain.Hero{
		ID:    id,
		Name:  input.Name,
		Alias: input.Alias,
		City:  input.City,
		Team:  input.Team,
	}
	if err := s.heroRepo.Create(ctx, hero); err != nil {
		return nil, err
	}
	return hero, nil
}

func (s *HeroService) Update(ctx context.Context, id int64, input HeroInput) (*domain.Hero, error) {
	input = input.normalize()
	if input.Name == "" {
		return nil, ErrHeroNameRequired
	}

	hero, err := s.heroRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hero.Name = input.Name
	hero.Alias = input.Alias
	hero.City = input.City
	hero.Team = input.Team
	hero.UpdatedAt = time.Now()
	if err := s.heroRepo.Update(ctx, hero); err != nil {
		return nil, err
	}
	return hero, nil
}

func (s *HeroService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.heroRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrHeroNotFound
	}
	return nil
}

// AssignPet records the hero as the pet's in-story owner. A pet belongs to
// at most one hero.
func (s *HeroService) AssignPet(ctx context.Context, heroID, petID int64) (*domain.Hero, *domain.Pet, error) {
	hero, err := s.heroRepo.GetByID(ctx, heroID)
	if err != nil {
		return nil, nil, err
	}

	pet, _, err := mutatePet(ctx, s.petRepo, petID, func(p *domain.Pet) (bool, error) {
		if p.OwnerHeroName != nil && *p.OwnerHeroName != "" {
			return false, domain.ErrPetHasHero
		}
		name := hero.DisplayName()
		p.OwnerHeroName = &name
		return true, nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.events.PetUpdated(pet)
	return hero, pet, nil
}

func (s *HeroService) ReleasePet(ctx context.Context, heroID, petID int64) (*domain.Hero, *domain.Pet, error) {
	hero, err := s.heroRepo.GetByID(ctx, heroID)
	if err != nil {
		return nil, nil, err
	}

	pet, _, err := mutatePet(ctx, s.petRepo, petID, func(p *domain.Pet) (bool, error) {
		if p.OwnerHeroName == nil || *p.OwnerHeroName != hero.DisplayName() {
			return false, domain.ErrPetNotOfHero
		}
		p.OwnerHeroName = nil
		return true, nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.events.PetUpdated(pet)
	return hero, pet, nil
}

// Seed inserts the starter heroes while there are fewer heroes than starters.
func (s *HeroService) Seed(ctx context.Context) (*SeedResult, error) {
	count, err := s.heroRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count >= int64(len(seedHeroes)) {
		return &SeedResult{Inserted: 0, Total: count}, nil
	}

	first, err := s.counterRepo.Reserve(ctx, domain.CounterHeroes, len(seedHeroes))
	if err != nil {
		return nil, err
	}

	heroes := make([]*domain.Hero, 0, len(seedHeroes))
	for i, h := range seedHeroes {
		hero := h
		hero.ID = first + int64(i)
		heroes = append(heroes, &hero)
	}
	if err := s.heroRepo.CreateMany(ctx, heroes); err != nil {
		return nil, err
	}
	return &SeedResult{Inserted: len(heroes), Total: count + int64(len(heroes))}, nil
}
