// Package session owns one active match: side bindings, the fixed-rate
// tick loop, input forwarding into the battle reducer, and replication of
// every tick's state to both peers.
package session

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/netbattle/arena-backend/internal/ai"
	"github.com/netbattle/arena-backend/internal/battle"
	"github.com/netbattle/arena-backend/internal/types"
)

// Peer is one replicated endpoint. The ws layer owns the Outbox and its
// writer goroutine; a bot peer has a nil Outbox and is skipped on send.
type Peer struct {
	ConnID     string
	PlayerID   string
	PlayerName string
	Outbox     chan<- types.ServerMessage
}

// Session is the single writer of its battle state. The tick loop and the
// input/disconnect handlers all take mu, so Tick and Apply never
// interleave on the same state value.
type Session struct {
	id        string
	peers     [2]Peer // index 0 is player1
	sides     map[string]battle.Side
	interval  time.Duration
	log       *zap.Logger
	onDestroy func(id string)

	bot     *ai.Policy
	botSide battle.Side

	mu    sync.Mutex
	state battle.State

	done     chan struct{}
	stopOnce sync.Once
}

func New(id string, p1, p2 Peer, interval time.Duration, log *zap.Logger, onDestroy func(id string)) *Session {
	s := &Session{
		id:        id,
		peers:     [2]Peer{p1, p2},
		sides:     make(map[string]battle.Side, 2),
		interval:  interval,
		log:       log.With(zap.String("room", id)),
		onDestroy: onDestroy,
		done:      make(chan struct{}),
	}
	s.sides[p1.ConnID] = battle.SidePlayer1
	s.sides[p2.ConnID] = battle.SidePlayer2
	s.state = battle.NewState(battle.Config{
		MatchID:     id,
		Player1ID:   p1.PlayerID,
		Player2ID:   p2.PlayerID,
		Player1Name: p1.PlayerName,
		Player2Name: p2.PlayerName,
		Folder:      battle.DefaultFolder(),
	})
	return s
}

// NewPractice builds a session against the scripted opponent. The bot side
// is driven inside the tick loop through the same Apply path as human
// input.
func NewPractice(id string, human Peer, interval time.Duration, log *zap.Logger, onDestroy func(id string)) *Session {
	bot := Peer{PlayerID: "bot", PlayerName: "Practice Bot"}
	s := New(id, human, bot, interval, log, onDestroy)
	delete(s.sides, "") // the bot has no connection
	s.bot = ai.NewPolicy(nil)
	s.botSide = battle.SidePlayer2
	return s
}

func (s *Session) ID() string { return s.id }

// Start replicates the initial state to each side with its role, then
// launches the tick loop.
func (s *Session) Start() {
	s.mu.Lock()
	initial := s.state
	s.mu.Unlock()

	for i, peer := range s.peers {
		role := battle.SidePlayer1
		if i == 1 {
			role = battle.SidePlayer2
		}
		s.send(peer, types.ServerMessage{Type: "battle:start", Role: role, State: &initial})
	}

	s.log.Info("match started",
		zap.String("player1", s.peers[0].PlayerName),
		zap.String("player2", s.peers[1].PlayerName))

	go s.run()
}

func (s *Session) run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			if !s.step() {
				return
			}
		}
	}
}

// step advances one tick and replicates the result. Broadcasting happens
// under mu so no update can trail a battle:end; sends are non-blocking so
// holding the lock is fine. Returns false once the loop should exit.
func (s *Session) step() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.IsGameOver {
		s.Stop()
		return false
	}

	if s.bot != nil {
		if act := s.bot.Next(s.botSide, s.state); act != nil {
			s.state, _ = battle.Apply(s.state, s.botSide, *act)
		}
	}

	next, events := battle.Tick(s.state)
	s.state = next

	// next is never mutated again: every reducer call clones. Safe to hand
	// to the writer goroutines as-is.
	s.broadcast(types.ServerMessage{Type: "battle:update", Frame: next.Frame, State: &next, Events: events})

	if next.IsGameOver {
		s.finish(next)
		return false
	}
	return true
}

// HandleInput applies a validated action for the side bound to connID.
// Input from unknown connections is dropped. The action lands between
// ticks; the next tick's broadcast reflects it.
func (s *Session) HandleInput(connID string, action battle.Action) {
	side, ok := s.sides[connID]
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.IsGameOver {
		return
	}
	s.state, _ = battle.Apply(s.state, side, action)
}

// HandleDisconnect force-ends the match: the leaver's hp drops to 0 and
// the other side wins. Applied at most once.
func (s *Session) HandleDisconnect(connID string) {
	side, ok := s.sides[connID]
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.IsGameOver {
		return
	}
	final := s.state.Clone()
	if side == battle.SidePlayer1 {
		final.Player1.HP = 0
	} else {
		final.Player2.HP = 0
	}
	final.IsGameOver = true
	final.Winner = side.Opponent()
	s.state = final

	s.log.Info("forfeit on disconnect", zap.String("conn", connID), zap.String("winner", string(final.Winner)))
	s.finish(final)
}

func (s *Session) finish(final battle.State) {
	s.broadcast(types.ServerMessage{Type: "battle:end", Winner: final.Winner, State: &final})
	s.log.Info("match ended", zap.String("winner", string(final.Winner)), zap.Int("frame", final.Frame))
	s.Stop()
}

// Stop halts the tick loop and releases the session from the registry.
// Safe to call more than once.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
		if s.onDestroy != nil {
			s.onDestroy(s.id)
		}
	})
}

// State returns a snapshot sharing nothing with the live state.
func (s *Session) State() battle.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *Session) broadcast(msg types.ServerMessage) {
	for _, peer := range s.peers {
		s.send(peer, msg)
	}
}

func (s *Session) send(peer Peer, msg types.ServerMessage) {
	if peer.Outbox == nil {
		return
	}
	select {
	case peer.Outbox <- msg:
	default:
		// Slow client: drop this update, the next tick carries full state.
		s.log.Warn("dropped update for slow client", zap.String("conn", peer.ConnID))
	}
}
