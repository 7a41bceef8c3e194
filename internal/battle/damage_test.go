package battle

import (
	"math/rand/v2"
	"testing"
)

func TestEffectiveness(t *testing.T) {
	cases := []struct {
		name             string
		attacker, target Element
		want             float64
	}{
		{"fire beats wood", ElementFire, ElementWood, 2.0},
		{"wood beats elec", ElementWood, ElementElec, 2.0},
		{"elec beats aqua", ElementElec, ElementAqua, 2.0},
		{"aqua beats fire", ElementAqua, ElementFire, 2.0},
		{"fire weak to aqua", ElementFire, ElementAqua, 0.5},
		{"wood weak to fire", ElementWood, ElementFire, 0.5},
		{"neutral attacker", ElementNone, ElementWood, 1.0},
		{"neutral target", ElementFire, ElementNone, 1.0},
		{"same element", ElementFire, ElementFire, 1.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Effectiveness(tc.attacker, tc.target); got != tc.want {
				t.Fatalf("Effectiveness(%s,%s) = %v, want %v", tc.attacker, tc.target, got, tc.want)
			}
		})
	}
}

func TestChipDamageFloors(t *testing.T) {
	chip := Chip{ID: "t", Element: ElementFire, Damage: 25}
	// 25 * 0.5 = 12.5, floored
	if got := ChipDamage(chip, ElementAqua); got != 12 {
		t.Fatalf("damage = %d, want 12", got)
	}
	if got := ChipDamage(chip, ElementWood); got != 50 {
		t.Fatalf("damage = %d, want 50", got)
	}
}

func TestAccuracyRoll(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	sure := Chip{ID: "sure", Accuracy: 100}
	never := Chip{ID: "never", Accuracy: 0}
	for i := 0; i < 50; i++ {
		if !AccuracyRoll(sure, rng) {
			t.Fatal("100 accuracy missed")
		}
		if AccuracyRoll(never, rng) {
			t.Fatal("0 accuracy hit")
		}
	}
}
