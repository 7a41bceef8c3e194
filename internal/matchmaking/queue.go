// Package matchmaking pairs waiting connections strictly FIFO, two at a
// time.
package matchmaking

import (
	"sync"

	"go.uber.org/zap"
)

// QueuedPlayer binds a live connection to a declared identity. It exists
// only while waiting.
type QueuedPlayer struct {
	ConnID     string
	PlayerID   string
	PlayerName string
}

// Queue invokes onMatch with the two oldest waiters the moment the queue
// holds two. Add and Remove are safe under concurrent connection churn;
// the pop-two decision happens under the same lock as the append so two
// racing joins cannot both pair with the same waiter.
type Queue struct {
	mu      sync.Mutex
	waiting []QueuedPlayer
	onMatch func(p1, p2 QueuedPlayer)
	log     *zap.Logger
}

func NewQueue(onMatch func(p1, p2 QueuedPlayer), log *zap.Logger) *Queue {
	return &Queue{onMatch: onMatch, log: log}
}

// Add appends the player and pairs if possible. Duplicate joins from the
// same connection are ignored.
func (q *Queue) Add(p QueuedPlayer) {
	q.mu.Lock()
	for _, w := range q.waiting {
		if w.ConnID == p.ConnID {
			q.mu.Unlock()
			return
		}
	}
	q.waiting = append(q.waiting, p)

	var p1, p2 QueuedPlayer
	paired := false
	if len(q.waiting) >= 2 {
		p1, p2 = q.waiting[0], q.waiting[1]
		q.waiting = q.waiting[2:]
		paired = true
	}
	size := len(q.waiting)
	q.mu.Unlock()

	q.log.Info("player joined queue", zap.String("player", p.PlayerName), zap.Int("size", size))
	if paired {
		// Callback runs outside the lock; it creates a session.
		q.onMatch(p1, p2)
	}
}

// Remove drops a waiter by connection id. No-op when absent, which covers
// leave-before-match and disconnect-while-waiting alike.
func (q *Queue) Remove(connID string) {
	q.mu.Lock()
	kept := q.waiting[:0]
	for _, w := range q.waiting {
		if w.ConnID != connID {
			kept = append(kept, w)
		}
	}
	q.waiting = kept
	size := len(q.waiting)
	q.mu.Unlock()

	q.log.Info("player left queue", zap.String("conn", connID), zap.Int("size", size))
}

func (q *Queue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.waiting)
}
