package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dom/superhero-pets/internal/domain"
	"github.com/dom/superhero-pets/internal/repository"
)

var ErrItemFieldsRequired = errors.New("item name and kind are required")

type ItemService struct {
	itemRepo    repository.ItemRepository
	counterRepo repository.CounterRepository
}

func NewItemService(itemRepo repository.ItemRepository, counterRepo repository.CounterRepository) *ItemService {
	return &ItemService{
		itemRepo:    itemRepo,
		counterRepo: counterRepo,
	}
}

type ItemInput struct {
	Name string
	Kind domain.ItemKind
}

func (in ItemInput) validate() (ItemInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Kind = domain.ItemKind(strings.ToLower(strings.TrimSpace(string(in.Kind))))
	if in.Name == "" || in.Kind == "" {
		return in, ErrItemFieldsRequired
	}
	if !in.Kind.Valid() {
		return in, domain.ErrInvalidItemKind
	}
	return in, nil
}

func (s *ItemService) List(ctx context.Context) ([]*domain.Item, error) {
	return s.itemRepo.GetAll(ctx)
}

func (s *ItemService) Get(ctx context.Context, id int64) (*domain.Item, error) {
	return s.itemRepo.GetByID(ctx, id)
}

func (s *ItemService) Create(ctx context.Context, input ItemInput) (*domain.Item, error) {
	input, err := input.validate()
	if err != nil {
		return nil, err
	}

	if _, err := s.itemRepo.GetByName(ctx, input.Name); err == nil {
		return nil, domain.ErrItemNameExists
	} else if !errors.Is(err, domain.ErrItemNotFound) {
		return nil, err
	}

	id, err := s.counterRepo.Next(ctx, domain.CounterItems)
	if err != nil {
		return nil, err
	}

	item := &domain.Item{ID: id, Name: input.Name, Kind: input.Kind}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ItemService) Update(ctx context.Context, id int64, input ItemInput) (*domain.Item, error) {
	input, err := input.validate()
	if err != nil {
		return nil, err
	}

	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Name = input.Name
	item.Kind = input.Kind
	item.UpdatedAt = time.Now()
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ItemService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.itemRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrItemNotFound
	}
	return nil
}

// Seed fills the catalog with the starter items while it holds fewer than
// itemSeedThreshold entries. Names already present are skipped.
func (s *ItemService) Seed(ctx context.Context) (*SeedResult, error) {
	count, err := s.itemRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count >= itemSeedThreshold {
		return &SeedResult{Inserted: 0, Total: count}, nil
	}

	existing, err := s.itemRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	present := make(map[string]bool, len(existing))
	for _, item := range existing {
		present[strings.ToLower(item.Name)] = true
	}

	var missing []*domain.Item
	for _, seed := range seedItems {
		if !present[strings.ToLower(seed.Name)] {
			missing = append(missing, &domain.Item{Name: seed.Name, Kind: seed.Kind})
		}
	}
	if len(missing) == 0 {
		return &SeedResult{Inserted: 0, Total: count}, nil
	}

	first, err := s.counterRepo.Reserve(ctx, domain.CounterItems, len(missing))
	if err != nil {
		return nil, err
	}
	for i, item := range missing {
		item.ID = first + int64(i)
	}
	if err := s.itemRepo.CreateMany(ctx, missing); err != nil {
		return nil, err
	}
	return &SeedResult{Inserted: len(missing), Total: count + int64(len(missing))}, nil
}
