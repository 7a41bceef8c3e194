// Package ai implements the scripted opponent used for practice matches.
// It produces the same battle.Action values a human client would, so the
// session feeds its output through the ordinary Apply path.
package ai

import (
	"math/rand/v2"

	"github.com/netbattle/arena-backend/internal/battle"
)

const (
	moveInterval   = 20 // ~0.33s at 60 ticks/s
	attackInterval = 40 // ~0.67s
	maxChipSelects = 3
	rowBiasChance  = 0.7
)

// Policy is stateful per match: two independent cooldowns plus a bounded
// chip-select counter that resets each gauge cycle.
type Policy struct {
	moveCooldown   int
	attackCooldown int
	chipSelects    int
	rng            *rand.Rand
}

// NewPolicy builds a policy. A nil rng uses the shared source; tests pass
// a seeded one.
func NewPolicy(rng *rand.Rand) *Policy {
	return &Policy{rng: rng}
}

// Next proposes the policy's action for this tick, or nil when cooldowns
// leave nothing to do. Priority: select chips while the gauge is full,
// then use a queued chip, then fire the buster when row-aligned, then
// move.
func (p *Policy) Next(side battle.Side, s battle.State) *battle.Action {
	if p.moveCooldown > 0 {
		p.moveCooldown--
	}
	if p.attackCooldown > 0 {
		p.attackCooldown--
	}

	me := s.Player1
	opp := s.Player2
	if side == battle.SidePlayer2 {
		me, opp = opp, me
	}

	if me.Gauge >= me.MaxGauge && len(me.Hand) > 0 && p.chipSelects < maxChipSelects {
		p.chipSelects++
		return &battle.Action{Type: battle.ActionChipSelect, ChipID: me.Hand[0].ID}
	}
	if me.Gauge < me.MaxGauge {
		// Gauge drained: a new charge cycle has started.
		p.chipSelects = 0
	}

	if p.attackCooldown == 0 && len(me.Selected) > 0 {
		p.attackCooldown = attackInterval
		return &battle.Action{Type: battle.ActionChipUse}
	}

	if p.attackCooldown == 0 && me.Pos.Y == opp.Pos.Y && me.BusterPhase == battle.BusterIdle {
		p.attackCooldown = attackInterval
		return &battle.Action{Type: battle.ActionBuster}
	}

	if p.moveCooldown == 0 {
		if move := p.pickMove(side, me, opp, s.Grid); move != nil {
			p.moveCooldown = moveInterval
			return move
		}
	}

	return nil
}

// pickMove chooses among the orthogonal in-bounds moves onto panels the
// side owns. Off the opponent's row it biases toward closing the row gap;
// otherwise it moves uniformly at random, which reads as dodging.
func (p *Policy) pickMove(side battle.Side, me, opp battle.PlayerState, grid battle.Grid) *battle.Action {
	x, y := me.Pos.X, me.Pos.Y
	candidates := []battle.Position{
		{X: x, Y: y - 1},
		{X: x, Y: y + 1},
		{X: x - 1, Y: y},
		{X: x + 1, Y: y},
	}

	var valid []battle.Position
	for _, c := range candidates {
		if battle.ValidPosition(c.X, c.Y) && grid[c.Y][c.X].Owner == battle.PanelOwner(side) {
			valid = append(valid, c)
		}
	}
	if len(valid) == 0 {
		return nil
	}

	if y != opp.Pos.Y && p.randFloat() < rowBiasChance {
		var toward []battle.Position
		for _, c := range valid {
			if abs(c.Y-opp.Pos.Y) < abs(y-opp.Pos.Y) {
				toward = append(toward, c)
			}
		}
		if len(toward) > 0 {
			c := toward[p.randIntN(len(toward))]
			return &battle.Action{Type: battle.ActionMove, X: c.X, Y: c.Y}
		}
	}

	c := valid[p.randIntN(len(valid))]
	return &battle.Action{Type: battle.ActionMove, X: c.X, Y: c.Y}
}

func (p *Policy) randFloat() float64 {
	if p.rng == nil {
		return rand.Float64()
	}
	return p.rng.Float64()
}

func (p *Policy) randIntN(n int) int {
	if p.rng == nil {
		return rand.IntN(n)
	}
	return p.rng.IntN(n)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
