package domain

import "time"

type Hero struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name      string    `json:"name" gorm:"not null"`
	Alias     string    `json:"alias"`
	City      string    `json:"city"`
	Team      string    `json:"team"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DisplayName is the name a pet records as its hero: the alias when set,
// the civilian name otherwise.
func (h *Hero) DisplayName() string {
	if h.Alias != "" {
		return h.Alias
	}
	return h.Name
}
