package domain_test

import (
	"testing"

	"github.com/dom/superhero-pets/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewAdoptionStats(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		adopted int64
		want    domain.AdoptionStats
	}{
		{
			name: "no pets",
			want: domain.AdoptionStats{},
		},
		{
			name:    "rounds to two decimals",
			total:   3,
			adopted: 1,
			want: domain.AdoptionStats{
				TotalPets:          3,
				AdoptedPets:        1,
				AvailablePets:      2,
				AdoptionPercentage: 33.33,
			},
		},
		{
			name:    "two thirds",
			total:   3,
			adopted: 2,
			want: domain.AdoptionStats{
				TotalPets:          3,
				AdoptedPets:        2,
				AvailablePets:      1,
				AdoptionPercentage: 66.67,
			},
		},
		{
			name:    "all adopted",
			total:   4,
			adopted: 4,
			want: domain.AdoptionStats{
				TotalPets:          4,
				AdoptedPets:        4,
				AvailablePets:      0,
				AdoptionPercentage: 100,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NewAdoptionStats(tt.total, tt.adopted))
		})
	}
}

func TestPet_Ownership(t *testing.T) {
	owner := uuid.New()
	p := domain.NewPet("Ace", nil)

	assert.False(t, p.IsAdopted())
	assert.False(t, p.IsAdoptedBy(owner))

	p.AdoptedByUserID = &owner

	assert.True(t, p.IsAdopted())
	assert.True(t, p.IsAdoptedBy(owner))
	assert.False(t, p.IsAdoptedBy(uuid.New()))
}

func TestHero_DisplayName(t *testing.T) {
	assert.Equal(t, "Superman", (&domain.Hero{Name: "Clark Kent", Alias: "Superman"}).DisplayName())
	assert.Equal(t, "Clark Kent", (&domain.Hero{Name: "Clark Kent"}).DisplayName())
}
