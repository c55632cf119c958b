package domain

import "math"

type AdoptionStats struct {
	TotalPets          int64   `json:"totalPets"`
	AdoptedPets        int64   `json:"adoptedPets"`
	AvailablePets      int64   `json:"availablePets"`
	AdoptionPercentage float64 `json:"adoptionPercentage"`
}

// NewAdoptionStats derives the stats from the two counts. The percentage is
// rounded to two decimals, 0 when there are no pets.
func NewAdoptionStats(total, adopted int64) AdoptionStats {
	stats := AdoptionStats{
		TotalPets:     total,
		AdoptedPets:   adopted,
		AvailablePets: total - adopted,
	}
	if total > 0 {
		stats.AdoptionPercentage = math.Round(float64(adopted)/float64(total)*10000) / 100
	}
	return stats
}
