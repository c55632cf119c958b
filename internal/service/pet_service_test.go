package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dom/superhero-pets/internal/domain"
	"github.com/dom/superhero-pets/internal/repository"
	"github.com/dom/superhero-pets/internal/repository/mocks"
	"github.com/dom/superhero-pets/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordedEvents struct {
	updated []int64
	deleted []int64
}

func (r *recordedEvents) PetUpdated(p *domain.Pet) { r.updated = append(r.updated, p.ID) }
func (r *recordedEvents) PetDeleted(id int64)      { r.deleted = append(r.deleted, id) }

type petFixture struct {
	pets     *mocks.MockPetRepository
	items    *mocks.MockItemRepository
	counters *mocks.MockCounterRepository
	events   *recordedEvents
	svc      *service.PetService
}

func newPetFixture(t *testing.T) *petFixture {
	ctrl := gomock.NewController(t)
	f := &petFixture{
		pets:     mocks.NewMockPetRepository(ctrl),
		items:    mocks.NewMockItemRepository(ctrl),
		counters: mocks.NewMockCounterRepository(ctrl),
		events:   &recordedEvents{},
	}
	f.svc = service.NewPetService(f.pets, f.items, f.counters, f.events)
	f.svc.SetPicker(func(int) int { return 0 })
	return f
}

func storedPet(id int64) *domain.Pet {
	p := domain.NewPet("Krypto", nil)
	p.ID = id
	return p
}

func TestPetService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns the next id", func(t *testing.T) {
		f := newPetFixture(t)
		f.counters.EXPECT().Next(ctx, domain.CounterPets).Return(int64(7), nil)
		f.pets.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.Pet) error {
			assert.Equal(t, int64(7), p.ID)
			assert.Nil(t, p.OwnerHeroName, "blank hero names are stored as null")
			return nil
		})

		blank := "  "
		pet, err := f.svc.Create(ctx, service.CreatePetInput{Name: " Ace ", OwnerHeroName: &blank})
		require.NoError(t, err)
		assert.Equal(t, "Ace", pet.Name)
		assert.Equal(t, domain.DefaultHappiness, pet.Happiness)
		assert.Equal(t, []int64{7}, f.events.updated)
	})

	t.Run("name required", func(t *testing.T) {
		f := newPetFixture(t)
		_, err := f.svc.Create(ctx, service.CreatePetInput{Name: ""})
		assert.ErrorIs(t, err, service.ErrPetNameRequired)
	})
}

func TestPetService_Update_Validation(t *testing.T) {
	ctx := context.Background()
	f := newPetFixture(t)

	blank := ""
	_, err := f.svc.Update(ctx, 1, service.UpdatePetInput{Name: &blank})
	assert.ErrorIs(t, err, service.ErrPetNameRequired)
}

func TestPetService_Update_KeepsWelfareState(t *testing.T) {
	ctx := context.Background()

	dead := storedPet(1)
	domain.Kill(dead, "Poison")
	alive := storedPet(2)

	tests := []struct {
		name      string
		stored    *domain.Pet
		wantLife  int
		wantDead  bool
		wantCause *string
	}{
		{name: "dead pet stays dead", stored: dead, wantLife: 0, wantDead: true, wantCause: dead.CauseOfDeath},
		{name: "live pet stays alive", stored: alive, wantLife: domain.DefaultLife},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPetFixture(t)
			f.pets.EXPECT().GetByID(ctx, tt.stored.ID).Return(tt.stored.Clone(), nil)
			f.pets.EXPECT().Update(ctx, gomock.Any()).Return(nil)

			name := "Renamed"
			pet, err := f.svc.Update(ctx, tt.stored.ID, service.UpdatePetInput{Name: &name})
			require.NoError(t, err)

			assert.Equal(t, "Renamed", pet.Name)
			assert.Equal(t, tt.wantLife, pet.Life)
			assert.Equal(t, tt.wantDead, pet.IsDead())
			assert.Equal(t, tt.wantCause, pet.CauseOfDeath)
		})
	}
}

func TestPetService_Feed(t *testing.T) {
	ctx := context.Background()
	f := newPetFixture(t)

	f.pets.EXPECT().GetByID(ctx, int64(1)).Return(storedPet(1), nil)
	f.pets.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	out, err := f.svc.Feed(ctx, 1)
	require.NoError(t, err)
	assert.True(t, out.Result.Applied)
	assert.Equal(t, domain.ReasonFed, out.Result.Reason)
	assert.Equal(t, 60, out.Pet.Happiness)
	assert.Equal(t, []int64{1}, f.events.updated)
}

func TestPetService_RejectedActionDoesNotWrite(t *testing.T) {
	ctx := context.Background()
	f := newPetFixture(t)

	// no Update expectation: a rejected action must not write
	f.pets.EXPECT().GetByID(ctx, int64(1)).Return(storedPet(1), nil)

	out, err := f.svc.Revive(ctx, 1)
	require.NoError(t, err)
	assert.False(t, out.Result.Applied)
	assert.Equal(t, domain.ReasonNotDead, out.Result.Reason)
	assert.Empty(t, f.events.updated)
}

func TestPetService_RetriesOnVersionConflict(t *testing.T) {
	ctx := context.Background()
	f := newPetFixture(t)

	first := storedPet(1)
	second := storedPet(1)
	second.Happiness = 90
	second.Version = 1

	gomock.InOrder(
		f.pets.EXPECT().GetByID(ctx, int64(1)).Return(first, nil),
		f.pets.EXPECT().Update(ctx, gomock.Any()).Return(domain.ErrVersionConflict),
		f.pets.EXPECT().GetByID(ctx, int64(1)).Return(second, nil),
		f.pets.EXPECT().Update(ctx, gomock.Any()).Return(nil),
	)

	out, err := f.svc.Walk(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 100, out.Pet.Happiness, "the retry applies the action to the fresh read")
}

func TestPetService_GivesUpAfterRepeatedConflicts(t *testing.T) {
	ctx := context.Background()
	f := newPetFixture(t)

	f.pets.EXPECT().GetByID(ctx, int64(1)).DoAndReturn(func(context.Context, int64) (*domain.Pet, error) {
		return storedPet(1), nil
	}).Times(3)
	f.pets.EXPECT().Update(ctx, gomock.Any()).Return(domain.ErrVersionConflict).Times(3)

	_, err := f.svc.Walk(ctx, 1)
	assert.ErrorIs(t, err, service.ErrConcurrentModification)
	assert.Empty(t, f.events.updated)
}

func TestPetService_Customize(t *testing.T) {
	ctx := context.Background()

	t.Run("known item", func(t *testing.T) {
		f := newPetFixture(t)
		f.items.EXPECT().GetByName(ctx, "cape").Return(&domain.Item{ID: 3, Name: "Cape", Kind: domain.ItemKindFree}, nil)
		f.pets.EXPECT().GetByID(ctx, int64(1)).Return(storedPet(1), nil)
		f.pets.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		out, err := f.svc.Customize(ctx, 1, "cape")
		require.NoError(t, err)
		assert.True(t, out.Result.Applied)
		assert.Equal(t, "Cape", out.Pet.CustomItems[0].Name)
	})

	t.Run("unknown item", func(t *testing.T) {
		f := newPetFixture(t)
		f.items.EXPECT().GetByName(ctx, "jetpack").Return(nil, domain.ErrItemNotFound)
		f.pets.EXPECT().GetByID(ctx, int64(1)).Return(storedPet(1), nil)

		out, err := f.svc.Customize(ctx, 1, "jetpack")
		require.NoError(t, err)
		assert.Equal(t, domain.ReasonInvalidItem, out.Result.Reason)
	})

	t.Run("catalog failure", func(t *testing.T) {
		f := newPetFixture(t)
		boom := errors.New("boom")
		f.items.EXPECT().GetByName(ctx, "cape").Return(nil, boom)

		_, err := f.svc.Customize(ctx, 1, "cape")
		assert.ErrorIs(t, err, boom)
	})
}

func TestPetService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newPetFixture(t)

	f.pets.EXPECT().Delete(ctx, int64(1)).Return(true, nil)
	f.pets.EXPECT().Delete(ctx, int64(2)).Return(false, nil)

	require.NoError(t, f.svc.Delete(ctx, 1))
	assert.ErrorIs(t, f.svc.Delete(ctx, 2), domain.ErrPetNotFound)
	assert.Equal(t, []int64{1}, f.events.deleted)
}

func TestPetService_Seed(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		f := newPetFixture(t)
		f.pets.EXPECT().Count(ctx, repository.PetFilter{}).Return(int64(0), nil)
		f.counters.EXPECT().Reserve(ctx, domain.CounterPets, gomock.Any()).Return(int64(1), nil)
		f.pets.EXPECT().CreateMany(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, pets []*domain.Pet) error {
			for i, p := range pets {
				assert.Equal(t, int64(i+1), p.ID)
			}
			return nil
		})

		res, err := f.svc.Seed(ctx)
		require.NoError(t, err)
		assert.Positive(t, res.Inserted)
		assert.Equal(t, int64(res.Inserted), res.Total)
	})

	t.Run("already populated", func(t *testing.T) {
		f := newPetFixture(t)
		f.pets.EXPECT().Count(ctx, repository.PetFilter{}).Return(int64(50), nil)

		res, err := f.svc.Seed(ctx)
		require.NoError(t, err)
		assert.Zero(t, res.Inserted)
		assert.Equal(t, int64(50), res.Total)
	})
}
