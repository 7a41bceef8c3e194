package types

import "github.com/netbattle/arena-backend/internal/battle"

// ClientMessage is the single inbound envelope. Type selects which of the
// optional fields must be present; the ws handler validates before routing.
type ClientMessage struct {
	Type       string       `json:"type"` // "queue:join" | "queue:leave" | "queue:practice" | "battle:input"
	PlayerID   string       `json:"playerId,omitempty"`
	PlayerName string       `json:"playerName,omitempty"`
	Frame      int          `json:"frame,omitempty"`
	Action     *InputAction `json:"action,omitempty"`
}

// InputAction mirrors battle.Action but keeps the coordinates as pointers
// so a move with a missing coordinate is distinguishable from (0,0).
type InputAction struct {
	Type   string `json:"type"`
	ChipID string `json:"chipId,omitempty"`
	GridX  *int   `json:"gridX,omitempty"`
	GridY  *int   `json:"gridY,omitempty"`
}

type ServerMessage struct {
	Type      string         `json:"type"` // see pkg/types for the full surface
	QueueSize int            `json:"queueSize,omitempty"`
	Opponent  string         `json:"opponent,omitempty"`
	Role      battle.Side    `json:"role,omitempty"`
	Frame     int            `json:"frame,omitempty"`
	State     *battle.State  `json:"state,omitempty"`
	Events    []battle.Event `json:"events,omitempty"`
	Winner    battle.Side    `json:"winner,omitempty"`
	Error     string         `json:"error,omitempty"`
}
