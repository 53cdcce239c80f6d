package game

import "github.com/az1406/MonsterCardTradingGame/models"

// Outcome of a single round.
type Outcome int

const (
	Draw Outcome = iota
	FirstWins
	SecondWins
)

// Resolve fights one card against another and returns the round outcome.
// It is pure: all damage adjustments are per-round values, the cards are
// never mutated.
//
// Rule precedence, first match wins:
//  1. Kraken nullifies any spell card.
//  2. Wizard nullifies an Ork.
//  3. A Goblin fighting a Dragon only deals 70% damage.
//  4. A Knight is nullified by a water spell.
//  5. With a spell involved, elemental affinity doubles damage:
//     water beats fire, fire beats normal, normal beats water.
//
// Whatever damage values survive the chain are compared; equal damage is a
// draw.
func Resolve(a, b models.Card) Outcome {
	damageA := a.Damage
	damageB := b.Damage

	switch {
	case a.Name == "Kraken" && b.IsSpell:
		damageB = 0
	case b.Name == "Kraken" && a.IsSpell:
		damageA = 0
	case a.Name == "Wizard" && b.Name == "Ork":
		damageB = 0
	case b.Name == "Wizard" && a.Name == "Ork":
		damageA = 0
	case a.Name == "Goblin" && b.Name == "Dragon":
		damageA *= 0.7
	case b.Name == "Goblin" && a.Name == "Dragon":
		damageB *= 0.7
	case a.Name == "Knight" && b.IsSpell && b.ElementType == models.ElementWater:
		damageA = 0
	case b.Name == "Knight" && a.IsSpell && a.ElementType == models.ElementWater:
		damageB = 0
	case a.IsSpell || b.IsSpell:
		switch {
		case a.ElementType == models.ElementWater && b.ElementType == models.ElementFire:
			damageA *= 2
		case a.ElementType == models.ElementFire && b.ElementType == models.ElementNormal:
			damageA *= 2
		case a.ElementType == models.ElementNormal && b.ElementType == models.ElementWater:
			damageA *= 2
		case b.ElementType == models.ElementWater && a.ElementType == models.ElementFire:
			damageB *= 2
		case b.ElementType == models.ElementFire && a.ElementType == models.ElementNormal:
			damageB *= 2
		case b.ElementType == models.ElementNormal && a.ElementType == models.ElementWater:
			damageB *= 2
		}
	}

	switch {
	case damageA > damageB:
		return FirstWins
	case damageA < damageB:
		return SecondWins
	default:
		return Draw
	}
}
