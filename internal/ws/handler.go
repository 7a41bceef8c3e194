// Package ws is the connection boundary: it accepts websocket clients,
// validates every inbound message, and routes it to the matchmaking queue
// or the owning session.
package ws

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"github.com/netbattle/arena-backend/internal/battle"
	"github.com/netbattle/arena-backend/internal/matchmaking"
	"github.com/netbattle/arena-backend/internal/session"
	"github.com/netbattle/arena-backend/internal/types"
)

const outboxSize = 16

// Dispatcher owns the queue, the session registry, and the per-connection
// outboxes. Sessions get at the registry only through their onDestroy
// callback.
type Dispatcher struct {
	log      *zap.Logger
	interval time.Duration
	registry *session.Registry
	queue    *matchmaking.Queue

	mu       sync.Mutex
	outboxes map[string]chan types.ServerMessage
}

func NewDispatcher(tickInterval time.Duration, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		log:      log,
		interval: tickInterval,
		registry: session.NewRegistry(),
		outboxes: make(map[string]chan types.ServerMessage),
	}
	d.queue = matchmaking.NewQueue(d.handleMatch, log)
	return d
}

func (d *Dispatcher) Queue() *matchmaking.Queue { return d.queue }

func (d *Dispatcher) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		connID := randID(8)
		out := make(chan types.ServerMessage, outboxSize)

		d.mu.Lock()
		d.outboxes[connID] = out
		d.mu.Unlock()

		d.log.Info("client connected", zap.String("conn", connID))

		defer func() {
			d.mu.Lock()
			delete(d.outboxes, connID)
			d.mu.Unlock()

			d.queue.Remove(connID)
			if sess := d.registry.Lookup(connID); sess != nil {
				sess.HandleDisconnect(connID)
			}
			d.log.Info("client disconnected", zap.String("conn", connID))
		}()

		// Writer goroutine
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for {
				select {
				case <-writeCtx.Done():
					return
				case msg := <-out:
					payload, _ := json.Marshal(msg)
					ctx, cancel := context.WithTimeout(writeCtx, 3*time.Second)
					_ = conn.Write(ctx, websocket.MessageText, payload)
					cancel()
				}
			}
		}()

		// Reader loop. No read deadline: an idle player just accrues gauge.
		for {
			_, data, err := conn.Read(r.Context())
			if err != nil {
				return
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				d.reply(out, types.ServerMessage{Type: "error", Error: "bad json"})
				continue
			}

			d.dispatch(connID, out, cm)
		}
	}
}

func (d *Dispatcher) dispatch(connID string, out chan types.ServerMessage, cm types.ClientMessage) {
	switch cm.Type {
	case "queue:join":
		if cm.PlayerID == "" || cm.PlayerName == "" {
			d.reply(out, types.ServerMessage{Type: "error", Error: "invalid queue:join data"})
			return
		}
		if d.registry.Lookup(connID) != nil {
			d.reply(out, types.ServerMessage{Type: "error", Error: "already in a match"})
			return
		}
		d.queue.Add(matchmaking.QueuedPlayer{ConnID: connID, PlayerID: cm.PlayerID, PlayerName: cm.PlayerName})
		d.reply(out, types.ServerMessage{Type: "queue:joined", QueueSize: d.queue.Size()})

	case "queue:leave":
		d.queue.Remove(connID)
		d.reply(out, types.ServerMessage{Type: "queue:left", QueueSize: d.queue.Size()})

	case "queue:practice":
		if cm.PlayerID == "" || cm.PlayerName == "" {
			d.reply(out, types.ServerMessage{Type: "error", Error: "invalid queue:practice data"})
			return
		}
		if d.registry.Lookup(connID) != nil {
			d.reply(out, types.ServerMessage{Type: "error", Error: "already in a match"})
			return
		}
		d.startPractice(connID, out, cm)

	case "battle:input":
		sess := d.registry.Lookup(connID)
		if sess == nil {
			// No bound match: dropped without a reply.
			return
		}
		action, ok := toBattleAction(cm.Action)
		if !ok {
			d.reply(out, types.ServerMessage{Type: "error", Error: "invalid battle:input data"})
			return
		}
		sess.HandleInput(connID, action)

	default:
		d.reply(out, types.ServerMessage{Type: "error", Error: "unknown type"})
	}
}

func (d *Dispatcher) handleMatch(p1, p2 matchmaking.QueuedPlayer) {
	peer1 := session.Peer{ConnID: p1.ConnID, PlayerID: p1.PlayerID, PlayerName: p1.PlayerName, Outbox: d.outbox(p1.ConnID)}
	peer2 := session.Peer{ConnID: p2.ConnID, PlayerID: p2.PlayerID, PlayerName: p2.PlayerName, Outbox: d.outbox(p2.ConnID)}

	d.send(peer1.Outbox, types.ServerMessage{Type: "match:found", Opponent: p2.PlayerName})
	d.send(peer2.Outbox, types.ServerMessage{Type: "match:found", Opponent: p1.PlayerName})

	id := d.registry.NextID()
	sess := session.New(id, peer1, peer2, d.interval, d.log, d.registry.Remove)
	d.registry.Register(sess)

	d.log.Info("match found",
		zap.String("room", id),
		zap.String("player1", p1.PlayerName),
		zap.String("player2", p2.PlayerName))

	sess.Start()

	// A peer can drop between the queue pop and Register; its cleanup then
	// ran before Lookup could see the session, so the forfeit was lost.
	// Settle it here: once we hold mu, any later disconnect is guaranteed
	// to find the session through Lookup, and HandleDisconnect is
	// idempotent if both paths fire.
	d.mu.Lock()
	for _, connID := range []string{p1.ConnID, p2.ConnID} {
		if _, ok := d.outboxes[connID]; !ok {
			sess.HandleDisconnect(connID)
		}
	}
	d.mu.Unlock()
}

func (d *Dispatcher) startPractice(connID string, out chan types.ServerMessage, cm types.ClientMessage) {
	human := session.Peer{ConnID: connID, PlayerID: cm.PlayerID, PlayerName: cm.PlayerName, Outbox: out}
	id := d.registry.NextID()
	sess := session.NewPractice(id, human, d.interval, d.log, d.registry.Remove)
	d.registry.Register(sess)

	d.send(out, types.ServerMessage{Type: "match:found", Opponent: "Practice Bot"})
	d.log.Info("practice match", zap.String("room", id), zap.String("player", cm.PlayerName))

	sess.Start()
}

// toBattleAction validates the wire action. A move must carry both
// coordinates; chip_select must carry a chip id.
func toBattleAction(in *types.InputAction) (battle.Action, bool) {
	if in == nil {
		return battle.Action{}, false
	}
	switch battle.ActionType(in.Type) {
	case battle.ActionMove:
		if in.GridX == nil || in.GridY == nil {
			return battle.Action{}, false
		}
		return battle.Action{Type: battle.ActionMove, X: *in.GridX, Y: *in.GridY}, true
	case battle.ActionChipSelect:
		if in.ChipID == "" {
			return battle.Action{}, false
		}
		return battle.Action{Type: battle.ActionChipSelect, ChipID: in.ChipID}, true
	case battle.ActionChipUse, battle.ActionBuster, battle.ActionConfirm:
		return battle.Action{Type: battle.ActionType(in.Type)}, true
	default:
		return battle.Action{}, false
	}
}

func (d *Dispatcher) outbox(connID string) chan types.ServerMessage {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.outboxes[connID]
}

func (d *Dispatcher) reply(out chan<- types.ServerMessage, msg types.ServerMessage) {
	d.send(out, msg)
}

func (d *Dispatcher) send(out chan<- types.ServerMessage, msg types.ServerMessage) {
	if out == nil {
		return
	}
	select {
	case out <- msg:
	default:
		d.log.Warn("dropped message for slow client")
	}
}

func randID(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.IntN(len(charset))]
	}
	return string(b)
}
