package domain

import "errors"

// Lookup errors
var (
	ErrPetNotFound  = errors.New("pet not found")
	ErrHeroNotFound = errors.New("hero not found")
	ErrItemNotFound = errors.New("item not found")
	ErrUserNotFound = errors.New("user not found")
)

var ErrEmailTaken = errors.New("email already registered")

// Adoption errors
var (
	ErrPetAlreadyAdopted = errors.New("pet is already adopted")
	ErrPetNotAdopted     = errors.New("pet is not adopted")
	ErrNotPetAdopter     = errors.New("pet was adopted by another user")
)

// Hero association errors
var (
	ErrPetHasHero   = errors.New("pet already belongs to a hero")
	ErrPetNotOfHero = errors.New("pet does not belong to this hero")
)

var (
	ErrInvalidItemKind = errors.New("item kind must be free or paid")
	ErrItemNameExists  = errors.New("item name already exists")

	// ErrVersionConflict is returned by conditional writes when the stored
	// version moved since the read.
	ErrVersionConflict = errors.New("version conflict")
)
