package battle

import "math/rand/v2"

// DrawHand draws count chips from folder, with replacement, as independent
// copies. This is the single entry point for randomness around the engine:
// Tick and Apply never draw, so callers that pre-draw hands get fully
// reproducible battles. A nil rng falls back to the shared source.
func DrawHand(folder []Chip, count int, rng *rand.Rand) []Chip {
	if len(folder) == 0 {
		return []Chip{}
	}
	hand := make([]Chip, 0, count)
	for i := 0; i < count; i++ {
		var idx int
		if rng == nil {
			idx = rand.IntN(len(folder))
		} else {
			idx = rng.IntN(len(folder))
		}
		hand = append(hand, folder[idx])
	}
	return hand
}
