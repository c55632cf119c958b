package service

import "github.com/dom/superhero-pets/internal/domain"

// PetEvents receives every committed pet change.
type PetEvents interface {
	PetUpdated(pet *domain.Pet)
	PetDeleted(id int64)
}

type noopEvents struct{}

func (noopEvents) PetUpdated(*domain.Pet) {}
func (noopEvents) PetDeleted(int64)       {}
