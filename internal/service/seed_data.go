package service

import "github.com/dom/superhero-pets/internal/domain"

// Seed thresholds: a collection is only seeded while it holds fewer records.
const (
	itemSeedThreshold = 30
)

var seedItems = []struct {
	Name string
	Kind domain.ItemKind
}{
	{"Collar", domain.ItemKindFree},
	{"Cape", domain.ItemKindPaid},
	{"Goggles", domain.ItemKindFree},
	{"Boots", domain.ItemKindPaid},
	{"Hat", domain.ItemKindFree},
	{"Vest", domain.ItemKindPaid},
	{"Leash", domain.ItemKindFree},
	{"Harness", domain.ItemKindPaid},
	{"Bandana", domain.ItemKindFree},
	{"Medal", domain.ItemKindPaid},
	{"Gloves", domain.ItemKindFree},
	{"Shield", domain.ItemKindPaid},
	{"Belt", domain.ItemKindFree},
	{"Backpack", domain.ItemKindPaid},
	{"Watch", domain.ItemKindFree},
	{"T-shirt", domain.ItemKindPaid},
	{"Scarf", domain.ItemKindFree},
	{"Chest plate", domain.ItemKindPaid},
	{"Ear muffs", domain.ItemKindFree},
	{"Magic cape", domain.ItemKindPaid},
	{"Shoes", domain.ItemKindFree},
	{"Reflective vest", domain.ItemKindPaid},
	{"Cap", domain.ItemKindFree},
	{"Headband", domain.ItemKindPaid},
	{"Tail cover", domain.ItemKindFree},
	{"Invisibility cloak", domain.ItemKindPaid},
	{"Sunglasses", domain.ItemKindFree},
	{"Bulletproof vest", domain.ItemKindPaid},
	{"Flight cape", domain.ItemKindPaid},
	{"Super speed cape", domain.ItemKindPaid},
}

var seedHeroes = []domain.Hero{
	{Name: "Clark Kent", Alias: "Superman", City: "Metropolis", Team: "Justice League"},
	{Name: "Tony Stark", Alias: "Iron Man", City: "New York", Team: "Avengers"},
	{Name: "Bruce Wayne", Alias: "Batman", City: "Gotham City", Team: "Justice League"},
	{Name: "Diana Prince", Alias: "Wonder Woman", City: "Themyscira", Team: "Justice League"},
	{Name: "Peter Parker", Alias: "Spider-Man", City: "New York", Team: "Avengers"},
	{Name: "Barry Allen", Alias: "Flash", City: "Central City", Team: "Justice League"},
}

var seedPets = []string{
	"Krypto",
	"Ace",
	"Streaky",
	"Comet",
	"Beppo",
	"Lockjaw",
}
