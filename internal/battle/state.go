package battle

type Side string

const (
	SidePlayer1 Side = "player1"
	SidePlayer2 Side = "player2"
	SideNone    Side = ""
)

func (s Side) Opponent() Side {
	switch s {
	case SidePlayer1:
		return SidePlayer2
	case SidePlayer2:
		return SidePlayer1
	default:
		return SideNone
	}
}

type BusterPhase string

const (
	BusterIdle     BusterPhase = "idle"
	BusterFiring   BusterPhase = "firing"
	BusterLanding  BusterPhase = "landing"
	BusterCooldown BusterPhase = "cooldown"
)

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type PlayerState struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Element       Element     `json:"element"`
	HP            int         `json:"hp"`
	MaxHP         int         `json:"maxHp"`
	Gauge         int         `json:"customGauge"`
	MaxGauge      int         `json:"maxCustomGauge"`
	Hand          []Chip      `json:"hand"`
	Folder        []Chip      `json:"folder"`
	Selected      []Chip      `json:"selectedChips"`
	SelectedIndex int         `json:"selectedChipIndex"`
	Pos           Position    `json:"position"`
	Stunned       bool        `json:"isStunned"`
	BusterPhase   BusterPhase `json:"busterPhase"`
	BusterFrames  int         `json:"busterFrames"` // ticks left in the current phase
}

func (p PlayerState) clone() PlayerState {
	c := p
	c.Hand = cloneChips(p.Hand)
	c.Folder = cloneChips(p.Folder)
	c.Selected = cloneChips(p.Selected)
	return c
}

// cloneChips keeps empty distinct from nil so cloning is exact and the
// JSON surface stays "[]" rather than "null".
func cloneChips(in []Chip) []Chip {
	if in == nil {
		return nil
	}
	out := make([]Chip, len(in))
	copy(out, in)
	return out
}

type ActionType string

const (
	ActionMove       ActionType = "move"
	ActionChipSelect ActionType = "chip_select"
	ActionChipUse    ActionType = "chip_use"
	ActionBuster     ActionType = "buster"
	ActionConfirm    ActionType = "confirm"
)

// Action is consumed exactly once by Apply. Move actions carry both
// coordinates; chip_select carries the chip id; the rest have no payload.
type Action struct {
	Type   ActionType `json:"type"`
	ChipID string     `json:"chipId,omitempty"`
	X      int        `json:"gridX"`
	Y      int        `json:"gridY"`
}

type EventType string

const (
	EventMoved        EventType = "navi_moved"
	EventChipSelected EventType = "chip_selected"
	EventChipUsed     EventType = "chip_used"
	EventBusterFired  EventType = "buster_fired"
	EventPanelBroken  EventType = "panel_broken"
	EventBattleEnd    EventType = "battle_end"
)

// EventData is flat on purpose: events are value-copied along with the
// state they are logged in, so they must not carry reference types.
type EventData struct {
	X          int    `json:"x,omitempty"`
	Y          int    `json:"y,omitempty"`
	ChipID     string `json:"chipId,omitempty"`
	Damage     int    `json:"damage,omitempty"`
	OpponentHP int    `json:"opponentHp,omitempty"`
	Winner     Side   `json:"winner,omitempty"`
}

// Event is a side-effect log entry for observers. The reducer never reads
// events back.
type Event struct {
	Frame int       `json:"frame"`
	Type  EventType `json:"type"`
	Side  Side      `json:"playerId"`
	Data  EventData `json:"data"`
}

type State struct {
	ID         string      `json:"id"`
	Frame      int         `json:"frame"`
	Player1    PlayerState `json:"player1"`
	Player2    PlayerState `json:"player2"`
	Grid       Grid        `json:"grid"`
	Winner     Side        `json:"winner,omitempty"`
	IsGameOver bool        `json:"isGameOver"`
	Log        []Event     `json:"battleLog"`
}

// Clone returns a state sharing no mutable substructure with the receiver.
// Grid and Event are value types; only the chip slices and the log need
// copying.
func (s State) Clone() State {
	c := s
	c.Player1 = s.Player1.clone()
	c.Player2 = s.Player2.clone()
	if s.Log != nil {
		c.Log = make([]Event, len(s.Log))
		copy(c.Log, s.Log)
	}
	return c
}

func (s *State) player(side Side) *PlayerState {
	if side == SidePlayer1 {
		return &s.Player1
	}
	return &s.Player2
}
