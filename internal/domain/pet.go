package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	MinStat = 0
	MaxStat = 100

	DefaultHappiness = 50
	DefaultLife      = 100

	ReviveLife      = 50
	ReviveHappiness = 50

	UnknownCauseOfDeath = "Unknown"
)

type ItemKind string

const (
	ItemKindFree ItemKind = "free"
	ItemKindPaid ItemKind = "paid"
)

func (k ItemKind) Valid() bool {
	return k == ItemKindFree || k == ItemKindPaid
}

// CustomItem is a snapshot of a catalog item applied to a pet.
type CustomItem struct {
	Name string   `json:"name"`
	Kind ItemKind `json:"kind"`
}

type Pet struct {
	ID              int64                           `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name            string                          `json:"name" gorm:"not null"`
	OwnerHeroName   *string                         `json:"ownerHeroName"`
	Happiness       int                             `json:"happiness" gorm:"not null"`
	Life            int                             `json:"life" gorm:"not null"`
	Illnesses       datatypes.JSONSlice[string]     `json:"illnesses" gorm:"type:jsonb;not null;default:'[]'"`
	CustomItems     datatypes.JSONSlice[CustomItem] `json:"customItems" gorm:"type:jsonb;not null;default:'[]'"`
	CauseOfDeath    *string                         `json:"causeOfDeath"`
	AdoptedByUserID *uuid.UUID                      `json:"adoptedByUserId" gorm:"type:uuid;index"`
	Version         int64                           `json:"version" gorm:"not null;default:0"`
	CreatedAt       time.Time                       `json:"createdAt"`
	UpdatedAt       time.Time                       `json:"updatedAt"`

	// Relations
	AdoptedBy *User `json:"-" gorm:"foreignKey:AdoptedByUserID"`
}

// NewPet returns a pet with the default welfare attributes. The id is
// assigned by the caller.
func NewPet(name string, ownerHeroName *string) *Pet {
	return &Pet{
		Name:          name,
		OwnerHeroName: ownerHeroName,
		Happiness:     DefaultHappiness,
		Life:          DefaultLife,
		Illnesses:     datatypes.JSONSlice[string]{},
		CustomItems:   datatypes.JSONSlice[CustomItem]{},
	}
}

func (p *Pet) IsDead() bool {
	return p.Life <= MinStat
}

func (p *Pet) IsAdopted() bool {
	return p.AdoptedByUserID != nil
}

func (p *Pet) IsAdoptedBy(userID uuid.UUID) bool {
	return p.AdoptedByUserID != nil && *p.AdoptedByUserID == userID
}

func (p *Pet) HasIllness(name string) bool {
	return p.illnessIndex(name) >= 0
}

func (p *Pet) illnessIndex(name string) int {
	for i, existing := range p.Illnesses {
		if equalFold(existing, name) {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy so an action can be retried from a fresh read
// without aliasing slices.
func (p *Pet) Clone() *Pet {
	c := *p
	c.Illnesses = append(datatypes.JSONSlice[string]{}, p.Illnesses...)
	c.CustomItems = append(datatypes.JSONSlice[CustomItem]{}, p.CustomItems...)
	if p.OwnerHeroName != nil {
		v := *p.OwnerHeroName
		c.OwnerHeroName = &v
	}
	if p.CauseOfDeath != nil {
		v := *p.CauseOfDeath
		c.CauseOfDeath = &v
	}
	if p.AdoptedByUserID != nil {
		v := *p.AdoptedByUserID
		c.AdoptedByUserID = &v
	}
	return &c
}

func clamp(v int) int {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}
