package battle

import "testing"

func TestNewGridPartition(t *testing.T) {
	g := NewGrid()

	for y := 0; y < GridHeight; y++ {
		for x := 0; x < GridWidth; x++ {
			p := g[y][x]
			want := OwnerPlayer1
			if x >= GridWidth/2 {
				want = OwnerPlayer2
			}
			if p.Owner != want {
				t.Fatalf("panel (%d,%d) owner = %s, want %s", x, y, p.Owner, want)
			}
			if p.State != PanelNormal {
				t.Fatalf("panel (%d,%d) state = %s, want normal", x, y, p.State)
			}
			if p.X != x || p.Y != y {
				t.Fatalf("panel identity mismatch at (%d,%d)", x, y)
			}
		}
	}
}

func TestDamagePanelProgression(t *testing.T) {
	g := NewGrid()

	if broke := g.DamagePanel(2, 1); broke {
		t.Fatal("normal panel broke on first damage")
	}
	if g[1][2].State != PanelCracked || g[1][2].Counter != 3 {
		t.Fatalf("panel = %+v, want cracked with counter 3", g[1][2])
	}

	if broke := g.DamagePanel(2, 1); !broke {
		t.Fatal("cracked panel did not break")
	}
	if g[1][2].State != PanelBroken {
		t.Fatalf("state = %s, want broken", g[1][2].State)
	}

	// Broken panels ignore further damage.
	g.DamagePanel(2, 1)
	if g[1][2].State != PanelBroken {
		t.Fatal("broken panel changed state")
	}
}

func TestGridMutatorsBoundsChecked(t *testing.T) {
	g := NewGrid()
	before := g

	g.DamagePanel(-1, 0)
	g.BreakPanel(6, 0)
	g.RestorePanel(0, 3)
	g.SetOwner(0, -1, OwnerNeutral)

	if g != before {
		t.Fatal("out-of-bounds mutation changed the grid")
	}
}

func TestRestoreAndSetOwner(t *testing.T) {
	g := NewGrid()
	g.BreakPanel(5, 2)
	g.RestorePanel(5, 2)
	if g[2][5].State != PanelNormal {
		t.Fatalf("state = %s, want normal", g[2][5].State)
	}

	g.SetOwner(5, 2, OwnerPlayer1)
	if g[2][5].Owner != OwnerPlayer1 {
		t.Fatalf("owner = %s, want player1", g[2][5].Owner)
	}
}

func TestPanelsByOwner(t *testing.T) {
	g := NewGrid()
	if n := len(g.PanelsByOwner(OwnerPlayer1)); n != 9 {
		t.Fatalf("player1 panels = %d, want 9", n)
	}
	g.SetOwner(3, 0, OwnerPlayer1)
	if n := len(g.PanelsByOwner(OwnerPlayer2)); n != 8 {
		t.Fatalf("player2 panels = %d after grab, want 8", n)
	}
}

func TestValidPosition(t *testing.T) {
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{5, 2, true},
		{-1, 0, false},
		{6, 0, false},
		{0, -1, false},
		{0, 3, false},
	}
	for _, tc := range cases {
		if got := ValidPosition(tc.x, tc.y); got != tc.want {
			t.Fatalf("ValidPosition(%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}
