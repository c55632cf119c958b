package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dom/superhero-pets/internal/domain"
	"github.com/dom/superhero-pets/internal/repository"
)

var ErrConcurrentModification = errors.New("pet was modified concurrently, try again")

const maxWriteAttempts = 3

// mutatePet applies fn to a fresh copy of the pet and writes it back only if
// nobody changed the pet since it was read. fn reports whether it changed
// anything; unchanged pets are returned as read without a write. On a
// version conflict the pet is re-read and fn runs again.
func mutatePet(ctx context.Context, repo repository.PetRepository, id int64, fn func(p *domain.Pet) (bool, error)) (*domain.Pet, bool, error) {
	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		current, err := repo.GetByID(ctx, id)
		if err != nil {
			return nil, false, err
		}

		next := current.Clone()
		changed, err := fn(next)
		if err != nil {
			return nil, false, err
		}
		if !changed {
			return current, false, nil
		}

		err = repo.Update(ctx, next)
		if err == nil {
			return next, true, nil
		}
		if !errors.Is(err, domain.ErrVersionConflict) {
			return nil, false, fmt.Errorf("update pet %d: %w", id, err)
		}
	}
	return nil, false, ErrConcurrentModification
}
