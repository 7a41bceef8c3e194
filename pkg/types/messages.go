package types

// Client -> Server
// queue:join:
//   playerId: string
//   playerName: string
//
// queue:leave: {}
//
// queue:practice:
//   playerId: string
//   playerName: string
//
// battle:input:
//   frame: number
//   action:
//     type: "move" | "chip_select" | "chip_use" | "buster" | "confirm"
//     chipId?: string
//     gridX?: number // required with gridY for "move"
//     gridY?: number

// Server -> Client
// queue:joined:
//   queueSize: number
//
// queue:left:
//   queueSize: number
//
// match:found:
//   opponent: string
//
// battle:start:
//   role: "player1" | "player2"
//   state: BattleState // authoritative initial state
//
// battle:update:
//   frame: number
//   state: BattleState
//   events: BattleEvent[]
//
// battle:end:
//   winner: "player1" | "player2"
//   state: BattleState // final; the session is torn down right after
//
// error:
//   error: string // malformed or invalid input; unknown routing is dropped silently
