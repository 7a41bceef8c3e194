package battle

const (
	GridWidth  = 6
	GridHeight = 3
)

// Ticks a cracked panel survives before breaking.
const crackCounter = 3

type PanelOwner string

const (
	OwnerPlayer1 PanelOwner = "player1"
	OwnerPlayer2 PanelOwner = "player2"
	OwnerNeutral PanelOwner = "neutral"
)

type PanelState string

const (
	PanelNormal  PanelState = "normal"
	PanelCracked PanelState = "cracked"
	PanelBroken  PanelState = "broken"
	PanelLocked  PanelState = "locked"
)

type Panel struct {
	X       int        `json:"x"`
	Y       int        `json:"y"`
	Owner   PanelOwner `json:"owner"`
	State   PanelState `json:"state"`
	Counter int        `json:"counter"` // ticks until the state changes
}

// Grid is a fixed-size value type; assignment copies the whole field,
// which is what keeps reducer outputs free of aliasing with their inputs.
type Grid [GridHeight][GridWidth]Panel

// NewGrid returns the starting grid: all panels normal, left half of the
// columns owned by player1 and the right half by player2.
func NewGrid() Grid {
	var g Grid
	for y := 0; y < GridHeight; y++ {
		for x := 0; x < GridWidth; x++ {
			owner := OwnerPlayer1
			if x >= GridWidth/2 {
				owner = OwnerPlayer2
			}
			g[y][x] = Panel{X: x, Y: y, Owner: owner, State: PanelNormal}
		}
	}
	return g
}

// ValidPosition is the single bounds check every grid consumer goes through.
func ValidPosition(x, y int) bool {
	return x >= 0 && x < GridWidth && y >= 0 && y < GridHeight
}

// DamagePanel cracks a normal panel and breaks a cracked one. Out-of-bounds
// coordinates and already-broken panels are ignored. Reports whether the
// panel broke on this call.
func (g *Grid) DamagePanel(x, y int) bool {
	if !ValidPosition(x, y) {
		return false
	}
	p := &g[y][x]
	switch p.State {
	case PanelNormal:
		p.State = PanelCracked
		p.Counter = crackCounter
	case PanelCracked:
		g.BreakPanel(x, y)
		return true
	}
	return false
}

func (g *Grid) BreakPanel(x, y int) {
	if !ValidPosition(x, y) {
		return
	}
	g[y][x].State = PanelBroken
	g[y][x].Counter = 0
}

func (g *Grid) RestorePanel(x, y int) {
	if !ValidPosition(x, y) {
		return
	}
	g[y][x].State = PanelNormal
	g[y][x].Counter = 0
}

func (g *Grid) SetOwner(x, y int, owner PanelOwner) {
	if !ValidPosition(x, y) {
		return
	}
	g[y][x].Owner = owner
}

// PanelsByOwner returns copies of every panel held by owner.
func (g *Grid) PanelsByOwner(owner PanelOwner) []Panel {
	var out []Panel
	for y := 0; y < GridHeight; y++ {
		for x := 0; x < GridWidth; x++ {
			if g[y][x].Owner == owner {
				out = append(out, g[y][x])
			}
		}
	}
	return out
}
