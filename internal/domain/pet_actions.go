package domain

import (
	"fmt"
	"math"
	"strings"

	"gorm.io/datatypes"
)

type ActionReason string

const (
	ReasonFed                ActionReason = "fed"
	ReasonOverfed            ActionReason = "overfed"
	ReasonWalked             ActionReason = "walked"
	ReasonWalkedCured        ActionReason = "walked_cured"
	ReasonCustomized         ActionReason = "customized"
	ReasonSickened           ActionReason = "sickened"
	ReasonCured              ActionReason = "cured"
	ReasonRevived            ActionReason = "revived"
	ReasonKilled             ActionReason = "killed"
	ReasonHealed             ActionReason = "healed"
	ReasonInvalidItem        ActionReason = "invalid_item"
	ReasonUnknownIllness     ActionReason = "unknown_illness"
	ReasonAlreadySick        ActionReason = "already_sick"
	ReasonNoIllnessAvailable ActionReason = "no_illness_available"
	ReasonNotSick            ActionReason = "not_sick"
	ReasonNotDead            ActionReason = "not_dead"
	ReasonInvalidAmount      ActionReason = "invalid_amount"
	ReasonPetDead            ActionReason = "pet_dead"
)

// ActionResult is the outcome of applying one action to a pet. A rejected
// result never comes with a mutated pet.
type ActionResult struct {
	Applied bool
	Reason  ActionReason
	Message string
}

func applied(reason ActionReason, format string, args ...any) ActionResult {
	return ActionResult{Applied: true, Reason: reason, Message: fmt.Sprintf(format, args...)}
}

func rejected(reason ActionReason, format string, args ...any) ActionResult {
	return ActionResult{Applied: false, Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// Picker returns a number in [0, n). Injected so random illness selection
// can be made deterministic.
type Picker func(n int) int

func Feed(p *Pet, pick Picker) ActionResult {
	if p.IsDead() {
		return rejected(ReasonPetDead, "The pet is dead and cannot be fed.")
	}

	if p.Happiness >= MaxStat {
		res := Sicken(p, "", pick)
		if !res.Applied {
			return rejected(ReasonNoIllnessAvailable, "The pet is already very happy and has every possible illness.")
		}
		return applied(ReasonOverfed, "The pet was already very happy, but got sick from overfeeding: %s.", p.Illnesses[len(p.Illnesses)-1])
	}

	p.Happiness = clamp(p.Happiness + 10)
	p.Life = clamp(p.Life + 5)
	return applied(ReasonFed, "Pet fed and happier.")
}

func Walk(p *Pet) ActionResult {
	p.Happiness = clamp(p.Happiness + 15)
	if len(p.Illnesses) > 0 {
		cured := p.Illnesses[0]
		p.Illnesses = p.Illnesses[1:]
		return applied(ReasonWalkedCured, "Great walk! The pet recovered from %s.", cured)
	}
	return applied(ReasonWalked, "Great walk! The pet is happier.")
}

// Customize appends item to the pet's custom items. item is nil when
// itemName did not match the catalog.
func Customize(p *Pet, itemName string, item *Item) ActionResult {
	if item == nil {
		return rejected(ReasonInvalidItem, "Invalid item: %q.", strings.TrimSpace(itemName))
	}
	p.CustomItems = append(p.CustomItems, CustomItem{Name: item.Name, Kind: item.Kind})
	return applied(ReasonCustomized, "Custom item %s added.", item.Name)
}

// Sicken adds the named illness, or a random one the pet does not have yet
// when illnessName is blank.
func Sicken(p *Pet, illnessName string, pick Picker) ActionResult {
	var illness Illness

	if strings.TrimSpace(illnessName) != "" {
		found, ok := LookupIllness(illnessName)
		if !ok {
			return rejected(ReasonUnknownIllness, "Illness %q does not exist.", strings.TrimSpace(illnessName))
		}
		if p.HasIllness(found.Name) {
			return rejected(ReasonAlreadySick, "The pet already has %s.", found.Name)
		}
		illness = found
	} else {
		candidates := make([]Illness, 0, len(illnessCatalog))
		for _, ill := range illnessCatalog {
			if !p.HasIllness(ill.Name) {
				candidates = append(candidates, ill)
			}
		}
		if len(candidates) == 0 {
			return rejected(ReasonNoIllnessAvailable, "The pet already has every possible illness.")
		}
		illness = candidates[pick(len(candidates))]
	}

	p.Illnesses = append(p.Illnesses, illness.Name)
	p.Life = clamp(p.Life + illness.Effect)
	return applied(ReasonSickened, "The pet got sick with %s.", illness.Name)
}

func Cure(p *Pet, illnessName string) ActionResult {
	idx := p.illnessIndex(illnessName)
	if idx < 0 {
		return rejected(ReasonNotSick, "The pet does not have %q.", strings.TrimSpace(illnessName))
	}
	cured := p.Illnesses[idx]
	p.Illnesses = append(p.Illnesses[:idx:idx], p.Illnesses[idx+1:]...)
	return applied(ReasonCured, "The pet was cured of %s.", cured)
}

func Revive(p *Pet) ActionResult {
	if !p.IsDead() {
		return rejected(ReasonNotDead, "The pet is not dead.")
	}
	p.Life = ReviveLife
	p.Happiness = ReviveHappiness
	p.Illnesses = datatypes.JSONSlice[string]{}
	p.CauseOfDeath = nil
	return applied(ReasonRevived, "Pet revived successfully!")
}

func Kill(p *Pet, cause string) ActionResult {
	cause = strings.TrimSpace(cause)
	if cause == "" {
		cause = UnknownCauseOfDeath
	}
	p.Life = MinStat
	p.CauseOfDeath = &cause
	return applied(ReasonKilled, "The pet died. Cause: %s.", cause)
}

// LifePotion raises life by amount. Fractional amounts round up so any
// positive amount heals at least one point.
func LifePotion(p *Pet, amount float64) ActionResult {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return rejected(ReasonInvalidAmount, "Invalid life amount.")
	}
	if p.IsDead() {
		return rejected(ReasonPetDead, "The pet is dead, revive it first.")
	}

	delta := MaxStat
	if amount < MaxStat {
		delta = int(math.Ceil(amount))
	}

	before := p.Life
	p.Life = clamp(p.Life + delta)
	return applied(ReasonHealed, "Potion applied. Life: %d -> %d", before, p.Life)
}
