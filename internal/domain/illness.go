package domain

import "strings"

type Illness struct {
	Name   string `json:"name"`
	Effect int    `json:"effect"` // applied to life, always negative
}

var illnessCatalog = []Illness{
	{Name: "Mange", Effect: -5},
	{Name: "Flu", Effect: -10},
	{Name: "Stomach bloat", Effect: -15},
	{Name: "Broken paw", Effect: -8},
	{Name: "Fleas", Effect: -4},
	{Name: "Cold", Effect: -6},
}

// Illnesses returns a copy of the closed illness catalog in declaration order.
func Illnesses() []Illness {
	out := make([]Illness, len(illnessCatalog))
	copy(out, illnessCatalog)
	return out
}

// LookupIllness matches a catalog entry by name, ignoring case and
// surrounding whitespace.
func LookupIllness(name string) (Illness, bool) {
	for _, ill := range illnessCatalog {
		if equalFold(ill.Name, name) {
			return ill, true
		}
	}
	return Illness{}, false
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
