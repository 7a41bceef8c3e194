package battle

import (
	"math"
	"math/rand/v2"
)

// Elemental advantage cycle: fire beats wood, wood beats elec, elec beats
// aqua, aqua beats fire. The neutral element is flat against everything.
var advantages = map[Element]Element{
	ElementFire: ElementWood,
	ElementWood: ElementElec,
	ElementElec: ElementAqua,
	ElementAqua: ElementFire,
}

func Effectiveness(attacker, target Element) float64 {
	if attacker == ElementNone || target == ElementNone {
		return 1.0
	}
	if advantages[attacker] == target {
		return 2.0
	}
	if advantages[target] == attacker {
		return 0.5
	}
	return 1.0
}

// ChipDamage scales the chip's base damage by elemental effectiveness,
// floored to an integer.
func ChipDamage(c Chip, target Element) int {
	return int(math.Floor(float64(c.Damage) * Effectiveness(c.Element, target)))
}

// AccuracyRoll reports whether a chip with a sub-100 accuracy connects.
// This is the only random check in the damage model and callers opt into
// it; the reducer never rolls.
func AccuracyRoll(c Chip, rng *rand.Rand) bool {
	if c.Accuracy >= 100 {
		return true
	}
	if rng == nil {
		return rand.IntN(100) < c.Accuracy
	}
	return rng.IntN(100) < c.Accuracy
}
