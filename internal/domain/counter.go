package domain

// Counter hands out sequential ids per entity. Values only grow, so ids are
// never reused after a delete.
type Counter struct {
	Name  string `gorm:"primaryKey"`
	Value int64  `gorm:"not null;default:0"`
}

const (
	CounterPets   = "pets"
	CounterHeroes = "heroes"
	CounterItems  = "items"
)
