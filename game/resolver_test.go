package game

import (
	"testing"

	"github.com/az1406/MonsterCardTradingGame/models"
)

func monster(name string, element string, damage float64) models.Card {
	return models.Card{ID: name, Name: name, ElementType: element, Damage: damage}
}

func spell(name string, element string, damage float64) models.Card {
	return models.Card{ID: name, Name: name, ElementType: element, IsSpell: true, Damage: damage}
}

func TestResolveSpecialRules(t *testing.T) {
	cases := []struct {
		name string
		a, b models.Card
		want Outcome
	}{
		{
			name: "kraken beats any spell regardless of damage",
			a:    monster("Kraken", models.ElementWater, 10),
			b:    spell("WaterSpell", models.ElementWater, 90),
			want: FirstWins,
		},
		{
			name: "wizard nullifies ork",
			a:    monster("Wizard", models.ElementNormal, 1),
			b:    monster("Ork", models.ElementNormal, 99),
			want: FirstWins,
		},
		{
			name: "goblin deals 70 percent against dragon",
			a:    monster("Goblin", models.ElementNormal, 50),
			b:    monster("Dragon", models.ElementFire, 34),
			want: FirstWins, // 35 vs 34
		},
		{
			name: "goblin loses when 70 percent is not enough",
			a:    monster("Goblin", models.ElementNormal, 50),
			b:    monster("Dragon", models.ElementFire, 36),
			want: SecondWins, // 35 vs 36
		},
		{
			name: "knight drowns against water spell",
			a:    monster("Knight", models.ElementNormal, 80),
			b:    spell("WaterSpell", models.ElementWater, 5),
			want: SecondWins,
		},
		{
			name: "water spell doubled against fire monster",
			a:    spell("WaterSpell", models.ElementWater, 10),
			b:    monster("FireElf", models.ElementFire, 15),
			want: FirstWins, // 20 vs 15
		},
		{
			name: "affinity needs a spell on either side",
			a:    monster("WaterGoblin", models.ElementWater, 10),
			b:    monster("FireElf", models.ElementFire, 15),
			want: SecondWins, // raw damage only
		},
		{
			name: "equal damage is a draw",
			a:    monster("Orc", models.ElementNormal, 25),
			b:    monster("Troll", models.ElementNormal, 25),
			want: Draw,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Resolve(tc.a, tc.b); got != tc.want {
				t.Errorf("Resolve(a, b) = %v, want %v", got, tc.want)
			}
		})
	}
}

// Swapping the two cards must swap the outcome; draws stay draws.
func TestResolveAntisymmetric(t *testing.T) {
	cards := []models.Card{
		monster("Kraken", models.ElementWater, 10),
		monster("Wizard", models.ElementNormal, 12),
		monster("Ork", models.ElementNormal, 40),
		monster("Goblin", models.ElementNormal, 50),
		monster("Dragon", models.ElementFire, 34),
		monster("Knight", models.ElementNormal, 80),
		spell("WaterSpell", models.ElementWater, 20),
		spell("FireSpell", models.ElementFire, 20),
		spell("RegularSpell", models.ElementNormal, 20),
	}

	for _, a := range cards {
		for _, b := range cards {
			forward := Resolve(a, b)
			backward := Resolve(b, a)
			switch forward {
			case Draw:
				if backward != Draw {
					t.Errorf("Resolve(%s, %s) = Draw but reverse = %v", a.Name, b.Name, backward)
				}
			case FirstWins:
				if backward != SecondWins {
					t.Errorf("Resolve(%s, %s) = FirstWins but reverse = %v", a.Name, b.Name, backward)
				}
			case SecondWins:
				if backward != FirstWins {
					t.Errorf("Resolve(%s, %s) = SecondWins but reverse = %v", a.Name, b.Name, backward)
				}
			}
		}
	}
}

func TestResolveDoesNotMutateCards(t *testing.T) {
	a := monster("Goblin", models.ElementNormal, 50)
	b := monster("Dragon", models.ElementFire, 34)
	Resolve(a, b)
	if a.Damage != 50 || b.Damage != 34 {
		t.Errorf("cards mutated: %v vs %v", a.Damage, b.Damage)
	}
}
