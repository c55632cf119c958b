package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/dom/superhero-pets/internal/domain"
	"github.com/dom/superhero-pets/internal/repository/mocks"
	"github.com/dom/superhero-pets/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestItemService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   service.ItemInput
		setup   func(items *mocks.MockItemRepository, counters *mocks.MockCounterRepository)
		wantErr error
	}{
		{
			name:  "new item",
			input: service.ItemInput{Name: " Jetpack ", Kind: "PAID"},
			setup: func(items *mocks.MockItemRepository, counters *mocks.MockCounterRepository) {
				items.EXPECT().GetByName(ctx, "Jetpack").Return(nil, domain.ErrItemNotFound)
				counters.EXPECT().Next(ctx, domain.CounterItems).Return(int64(31), nil)
				items.EXPECT().Create(ctx, &domain.Item{ID: 31, Name: "Jetpack", Kind: domain.ItemKindPaid}).Return(nil)
			},
		},
		{
			name:    "missing kind",
			input:   service.ItemInput{Name: "Jetpack"},
			wantErr: service.ErrItemFieldsRequired,
		},
		{
			name:    "unknown kind",
			input:   service.ItemInput{Name: "Jetpack", Kind: "rare"},
			wantErr: domain.ErrInvalidItemKind,
		},
		{
			name:  "name taken",
			input: service.ItemInput{Name: "cape", Kind: domain.ItemKindFree},
			setup: func(items *mocks.MockItemRepository, _ *mocks.MockCounterRepository) {
				items.EXPECT().GetByName(ctx, "cape").Return(&domain.Item{ID: 1, Name: "Cape"}, nil)
			},
			wantErr: domain.ErrItemNameExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			items := mocks.NewMockItemRepository(ctrl)
			counters := mocks.NewMockCounterRepository(ctrl)
			if tt.setup != nil {
				tt.setup(items, counters)
			}

			item, err := service.NewItemService(items, counters).Create(ctx, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(31), item.ID)
		})
	}
}

func TestItemService_Seed(t *testing.T) {
	ctx := context.Background()

	t.Run("tops up missing names", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		items := mocks.NewMockItemRepository(ctrl)
		counters := mocks.NewMockCounterRepository(ctrl)

		existing := []*domain.Item{{ID: 1, Name: "Cape", Kind: domain.ItemKindFree}}
		items.EXPECT().Count(ctx).Return(int64(1), nil)
		items.EXPECT().GetAll(ctx).Return(existing, nil)

		var reserved int
		counters.EXPECT().Reserve(ctx, domain.CounterItems, gomock.Any()).DoAndReturn(func(_ context.Context, _ string, n int) (int64, error) {
			reserved = n
			return int64(2), nil
		})
		items.EXPECT().CreateMany(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, created []*domain.Item) error {
			for _, item := range created {
				assert.False(t, strings.EqualFold(item.Name, "cape"), "existing names are skipped")
				assert.True(t, item.Kind.Valid())
			}
			assert.Len(t, created, reserved)
			return nil
		})

		res, err := service.NewItemService(items, counters).Seed(ctx)
		require.NoError(t, err)
		assert.Equal(t, reserved, res.Inserted)
		assert.Equal(t, int64(1+reserved), res.Total)
	})

	t.Run("full catalog is left alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		items := mocks.NewMockItemRepository(ctrl)
		items.EXPECT().Count(ctx).Return(int64(30), nil)

		res, err := service.NewItemService(items, mocks.NewMockCounterRepository(ctrl)).Seed(ctx)
		require.NoError(t, err)
		assert.Zero(t, res.Inserted)
	})
}

func TestHeroService_AssignPet(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		pet     func() *domain.Pet
		wantErr error
	}{
		{
			name: "pet without hero",
			pet:  func() *domain.Pet { return storedPet(1) },
		},
		{
			name: "pet already has a hero",
			pet: func() *domain.Pet {
				p := storedPet(1)
				owner := "Batman"
				p.OwnerHeroName = &owner
				return p
			},
			wantErr: domain.ErrPetHasHero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			heroes := mocks.NewMockHeroRepository(ctrl)
			pets := mocks.NewMockPetRepository(ctrl)
			events := &recordedEvents{}

			heroes.EXPECT().GetByID(ctx, int64(1)).Return(&domain.Hero{ID: 1, Name: "Clark Kent", Alias: "Superman"}, nil)
			pets.EXPECT().GetByID(ctx, int64(1)).Return(tt.pet(), nil)
			if tt.wantErr == nil {
				pets.EXPECT().Update(ctx, gomock.Any()).Return(nil)
			}

			svc := service.NewHeroService(heroes, pets, mocks.NewMockCounterRepository(ctrl), events)
			_, pet, err := svc.AssignPet(ctx, 1, 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, events.updated)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, pet.OwnerHeroName)
			assert.Equal(t, "Superman", *pet.OwnerHeroName)
			assert.Equal(t, []int64{1}, events.updated)
		})
	}
}
