package battle

import "fmt"

const (
	StartingHP       = 500
	GaugeMax         = 100
	HandSize         = 5
	SelectedChipsMax = 3

	BusterDamage        = 10
	BusterFiringTicks   = 8
	BusterLandingTicks  = 4
	BusterCooldownTicks = 20
)

// Config describes one new battle. Hand1/Hand2 are optional pre-drawn
// hands; when omitted, NewState draws from Folder with DrawHand, which is
// the only randomness in this package. Callers that need reproducible
// battles pass both hands explicitly.
type Config struct {
	MatchID     string
	Player1ID   string
	Player2ID   string
	Player1Name string
	Player2Name string
	Folder      []Chip
	Hand1       []Chip
	Hand2       []Chip
}

func NewState(cfg Config) State {
	id := cfg.MatchID
	if id == "" {
		id = fmt.Sprintf("battle_%s_%s", cfg.Player1ID, cfg.Player2ID)
	}
	return State{
		ID:      id,
		Player1: newPlayer(cfg.Player1ID, cfg.Player1Name, SidePlayer1, cfg.Folder, cfg.Hand1),
		Player2: newPlayer(cfg.Player2ID, cfg.Player2Name, SidePlayer2, cfg.Folder, cfg.Hand2),
		Grid:    NewGrid(),
	}
}

func newPlayer(id, name string, side Side, folder, hand []Chip) PlayerState {
	if hand == nil {
		hand = DrawHand(folder, HandSize, nil)
	}
	pos := Position{X: 1, Y: 1}
	if side == SidePlayer2 {
		pos.X = GridWidth - 2
	}
	return PlayerState{
		ID:          id,
		Name:        name,
		Element:     ElementNone,
		HP:          StartingHP,
		MaxHP:       StartingHP,
		MaxGauge:    GaugeMax,
		Hand:        append([]Chip(nil), hand...),
		Folder:      append([]Chip(nil), folder...),
		Selected:    []Chip{},
		Pos:         pos,
		BusterPhase: BusterIdle,
	}
}

// Tick advances the simulation one frame: gauge charge, buster phase
// progression, game-over detection. Ticking a finished battle is a no-op.
func Tick(s State) (State, []Event) {
	if s.IsGameOver {
		return s.Clone(), nil
	}

	ns := s.Clone()
	ns.Frame++
	var events []Event

	for _, side := range []Side{SidePlayer1, SidePlayer2} {
		p := ns.player(side)
		if p.Gauge < p.MaxGauge {
			p.Gauge++
		}
	}

	events = append(events, advanceBuster(&ns, SidePlayer1)...)
	events = append(events, advanceBuster(&ns, SidePlayer2)...)

	if ns.Player1.HP <= 0 || ns.Player2.HP <= 0 {
		ns.IsGameOver = true
		ns.Winner = SidePlayer1
		if ns.Player1.HP <= 0 {
			ns.Winner = SidePlayer2
		}
		events = append(events, Event{
			Frame: ns.Frame,
			Type:  EventBattleEnd,
			Side:  ns.Winner,
			Data:  EventData{Winner: ns.Winner},
		})
	}

	ns.Log = append(ns.Log, events...)
	return ns, events
}

// advanceBuster steps one side's buster through firing -> landing ->
// cooldown -> idle. Damage resolves at the end of the landing phase using
// the opponent's position at that moment, not where they stood when the
// shot was fired.
func advanceBuster(s *State, side Side) []Event {
	p := s.player(side)
	opp := s.player(side.Opponent())

	switch p.BusterPhase {
	case BusterFiring:
		p.BusterFrames--
		if p.BusterFrames <= 0 {
			p.BusterPhase = BusterLanding
			p.BusterFrames = BusterLandingTicks
		}
	case BusterLanding:
		p.BusterFrames--
		if p.BusterFrames <= 0 {
			var events []Event
			if p.Pos.Y == opp.Pos.Y {
				opp.HP = max(0, opp.HP-BusterDamage)
				events = append(events, Event{
					Frame: s.Frame,
					Type:  EventBusterFired,
					Side:  side,
					Data:  EventData{Damage: BusterDamage, OpponentHP: opp.HP},
				})
			}
			p.BusterPhase = BusterCooldown
			p.BusterFrames = BusterCooldownTicks
			return events
		}
	case BusterCooldown:
		p.BusterFrames--
		if p.BusterFrames <= 0 {
			p.BusterPhase = BusterIdle
			p.BusterFrames = 0
		}
	}
	return nil
}

// Apply dispatches one player action. Semantically invalid actions leave
// the state untouched and emit nothing; there is no error path here.
func Apply(s State, side Side, a Action) (State, []Event) {
	if s.IsGameOver || (side != SidePlayer1 && side != SidePlayer2) {
		return s.Clone(), nil
	}

	ns := s.Clone()
	p := ns.player(side)
	opp := ns.player(side.Opponent())
	var events []Event

	switch a.Type {
	case ActionChipSelect:
		for i := range p.Hand {
			if p.Hand[i].ID != a.ChipID {
				continue
			}
			if len(p.Selected) < SelectedChipsMax {
				p.Selected = append(p.Selected, p.Hand[i])
				events = append(events, Event{
					Frame: ns.Frame,
					Type:  EventChipSelected,
					Side:  side,
					Data:  EventData{ChipID: a.ChipID},
				})
			}
			break
		}

	case ActionMove:
		dist := abs(a.X-p.Pos.X) + abs(a.Y-p.Pos.Y)
		if dist == 1 && ValidPosition(a.X, a.Y) && ns.Grid[a.Y][a.X].Owner == PanelOwner(side) {
			p.Pos = Position{X: a.X, Y: a.Y}
			events = append(events, Event{
				Frame: ns.Frame,
				Type:  EventMoved,
				Side:  side,
				Data:  EventData{X: a.X, Y: a.Y},
			})
		}

	case ActionBuster:
		// Only starts the timing sequence; the hit resolves in Tick.
		if p.BusterPhase == BusterIdle {
			p.BusterPhase = BusterFiring
			p.BusterFrames = BusterFiringTicks
		}

	case ActionChipUse:
		if len(p.Selected) == 0 {
			break
		}
		i := min(max(p.SelectedIndex, 0), len(p.Selected)-1)
		chip := p.Selected[i]
		if p.Pos.Y == opp.Pos.Y {
			dmg := ChipDamage(chip, opp.Element)
			opp.HP = max(0, opp.HP-dmg)
			events = append(events, Event{
				Frame: ns.Frame,
				Type:  EventChipUsed,
				Side:  side,
				Data:  EventData{ChipID: chip.ID, Damage: dmg, OpponentHP: opp.HP},
			})
			if chip.Breaks {
				if ns.Grid.DamagePanel(opp.Pos.X, opp.Pos.Y) {
					events = append(events, Event{
						Frame: ns.Frame,
						Type:  EventPanelBroken,
						Side:  side,
						Data:  EventData{X: opp.Pos.X, Y: opp.Pos.Y},
					})
				}
			}
		}
		// Consumed on miss too.
		p.Selected = append(p.Selected[:i], p.Selected[i+1:]...)
		if p.SelectedIndex >= len(p.Selected) {
			p.SelectedIndex = max(0, len(p.Selected)-1)
		}

	case ActionConfirm:
		// Screen advance only; no authoritative state to change.
	}

	ns.Log = append(ns.Log, events...)
	return ns, events
}

func IsGameOver(s State) bool {
	return s.Player1.HP <= 0 || s.Player2.HP <= 0
}

func WinnerOf(s State) Side {
	switch {
	case s.Player1.HP <= 0:
		return SidePlayer2
	case s.Player2.HP <= 0:
		return SidePlayer1
	default:
		return SideNone
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
