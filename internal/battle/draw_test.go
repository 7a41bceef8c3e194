package battle

import (
	"math/rand/v2"
	"testing"
)

func TestDrawHandCopiesChips(t *testing.T) {
	folder := DefaultFolder()
	hand := DrawHand(folder, HandSize, rand.New(rand.NewPCG(7, 7)))

	if len(hand) != HandSize {
		t.Fatalf("hand size = %d, want %d", len(hand), HandSize)
	}

	hand[0].Damage = 9999
	for _, c := range folder {
		if c.Damage == 9999 {
			t.Fatal("mutating a drawn chip reached the folder")
		}
	}
}

func TestDrawHandEmptyFolder(t *testing.T) {
	if hand := DrawHand(nil, HandSize, nil); len(hand) != 0 {
		t.Fatalf("hand = %v, want empty", hand)
	}
}

func TestDrawHandSeededIsReproducible(t *testing.T) {
	folder := DefaultFolder()
	a := DrawHand(folder, HandSize, rand.New(rand.NewPCG(3, 9)))
	b := DrawHand(folder, HandSize, rand.New(rand.NewPCG(3, 9)))
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("draw %d differs: %s vs %s", i, a[i].ID, b[i].ID)
		}
	}
}
