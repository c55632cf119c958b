package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/dom/superhero-pets/internal/domain"
	"github.com/dom/superhero-pets/internal/repository/postgres"
	"github.com/dom/superhero-pets/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	tests := []struct {
		name    string
		user    *domain.User
		wantErr error
	}{
		{
			name: "successful creation",
			user: &domain.User{
				ID:           uuid.New(),
				Name:         "Bruce",
				Email:        "bruce@wayne.com",
				PasswordHash: "hashedpassword",
				CreatedAt:    time.Now(),
				UpdatedAt:    time.Now(),
			},
		},
		{
			name: "duplicate email differing in case",
			user: &domain.User{
				ID:           uuid.New(),
				Name:         "Not Bruce",
				Email:        "Bruce@Wayne.com",
				PasswordHash: "hashedpassword2",
				CreatedAt:    time.Now(),
				UpdatedAt:    time.Now(),
			},
			wantErr: domain.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Create(ctx, tt.user)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().
		WithName("getbyid_user").
		Build(t, testDB.DB)

	tests := []struct {
		name    string
		id      uuid.UUID
		want    *domain.User
		wantErr bool
	}{
		{
			name: "existing user",
			id:   user.ID,
			want: user,
		},
		{
			name:    "non-existent user",
			id:      uuid.New(),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrUserNotFound)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want.ID, got.ID)
			assert.Equal(t, tt.want.Name, got.Name)
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().
		WithEmail("diana@themyscira.org").
		Build(t, testDB.DB)

	got, err := repo.GetByEmail(ctx, "  Diana@Themyscira.org ")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_Ranking(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewUserRepository(testDB.DB)
	ctx := context.Background()

	first, _ := testutil.NewUserBuilder().WithName("first").Build(t, testDB.DB)
	time.Sleep(10 * time.Millisecond)
	second, _ := testutil.NewUserBuilder().WithName("second").Build(t, testDB.DB)
	time.Sleep(10 * time.Millisecond)
	testutil.NewUserBuilder().WithName("nobody").Build(t, testDB.DB)

	testutil.NewPetBuilder().WithID(1).AdoptedBy(second).Build(t, testDB.DB)
	testutil.NewPetBuilder().WithID(2).AdoptedBy(second).Build(t, testDB.DB)
	testutil.NewPetBuilder().WithID(3).AdoptedBy(first).Build(t, testDB.DB)
	testutil.NewPetBuilder().WithID(4).Build(t, testDB.DB)

	ranking, err := repo.Ranking(ctx)
	require.NoError(t, err)

	assert.Equal(t, []domain.RankingEntry{
		{Name: "second", Count: 2},
		{Name: "first", Count: 1},
		{Name: "nobody", Count: 0},
	}, ranking)
}
