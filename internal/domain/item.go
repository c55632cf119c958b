package domain

import "time"

// Item is an entry of the customization catalog.
type Item struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Kind      ItemKind  `json:"kind" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
