package service_test

import (
	"context"
	"testing"

	"github.com/dom/superhero-pets/internal/domain"
	"github.com/dom/superhero-pets/internal/repository/mocks"
	"github.com/dom/superhero-pets/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAdoptionService_Adopt(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name    string
		setup   func(pets *mocks.MockPetRepository)
		wantErr error
	}{
		{
			name: "available pet",
			setup: func(pets *mocks.MockPetRepository) {
				adopted := storedPet(1)
				adopted.AdoptedByUserID = &userID
				pets.EXPECT().SetAdopter(ctx, int64(1), userID).Return(true, nil)
				pets.EXPECT().GetByID(ctx, int64(1)).Return(adopted, nil)
			},
		},
		{
			name: "already adopted",
			setup: func(pets *mocks.MockPetRepository) {
				other := uuid.New()
				adopted := storedPet(1)
				adopted.AdoptedByUserID = &other
				pets.EXPECT().SetAdopter(ctx, int64(1), userID).Return(false, nil)
				pets.EXPECT().GetByID(ctx, int64(1)).Return(adopted, nil)
			},
			wantErr: domain.ErrPetAlreadyAdopted,
		},
		{
			name: "missing pet",
			setup: func(pets *mocks.MockPetRepository) {
				pets.EXPECT().SetAdopter(ctx, int64(1), userID).Return(false, nil)
				pets.EXPECT().GetByID(ctx, int64(1)).Return(nil, domain.ErrPetNotFound)
			},
			wantErr: domain.ErrPetNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			pets := mocks.NewMockPetRepository(ctrl)
			events := &recordedEvents{}
			tt.setup(pets)

			svc := service.NewAdoptionService(pets, events)
			pet, err := svc.Adopt(ctx, 1, userID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, events.updated)
				return
			}

			require.NoError(t, err)
			assert.True(t, pet.IsAdoptedBy(userID))
			assert.Equal(t, []int64{1}, events.updated)
		})
	}
}

func TestAdoptionService_Abandon(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name    string
		stored  func() *domain.Pet
		cleared bool
		wantErr error
	}{
		{
			name:    "own pet",
			stored:  func() *domain.Pet { return storedPet(1) },
			cleared: true,
		},
		{
			name:    "pet is not adopted",
			stored:  func() *domain.Pet { return storedPet(1) },
			wantErr: domain.ErrPetNotAdopted,
		},
		{
			name: "someone else's pet",
			stored: func() *domain.Pet {
				other := uuid.New()
				p := storedPet(1)
				p.AdoptedByUserID = &other
				return p
			},
			wantErr: domain.ErrNotPetAdopter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			pets := mocks.NewMockPetRepository(ctrl)
			pets.EXPECT().ClearAdopter(ctx, int64(1), userID).Return(tt.cleared, nil)
			pets.EXPECT().GetByID(ctx, int64(1)).Return(tt.stored(), nil)

			svc := service.NewAdoptionService(pets, nil)
			pet, err := svc.Abandon(ctx, 1, userID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.False(t, pet.IsAdopted())
		})
	}
}

func TestAdoptionService_Stats(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	pets := mocks.NewMockPetRepository(ctrl)

	gomock.InOrder(
		pets.EXPECT().Count(ctx, gomock.Any()).Return(int64(3), nil),
		pets.EXPECT().Count(ctx, gomock.Any()).Return(int64(1), nil),
	)

	stats, err := service.NewAdoptionService(pets, nil).Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.AdoptionStats{
		TotalPets:          3,
		AdoptedPets:        1,
		AvailablePets:      2,
		AdoptionPercentage: 33.33,
	}, *stats)
}
