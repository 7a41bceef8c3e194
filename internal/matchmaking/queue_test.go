package matchmaking

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type pair struct{ p1, p2 QueuedPlayer }

type recorder struct {
	mu    sync.Mutex
	pairs []pair
}

func (r *recorder) onMatch(p1, p2 QueuedPlayer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pairs = append(r.pairs, pair{p1, p2})
}

func (r *recorder) matched() []pair {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]pair(nil), r.pairs...)
}

func waiter(n int) QueuedPlayer {
	return QueuedPlayer{
		ConnID:     fmt.Sprintf("conn-%d", n),
		PlayerID:   fmt.Sprintf("player-%d", n),
		PlayerName: fmt.Sprintf("Player %d", n),
	}
}

func TestQueuePairsFIFO(t *testing.T) {
	rec := &recorder{}
	q := NewQueue(rec.onMatch, zap.NewNop())

	q.Add(waiter(1))
	q.Add(waiter(2))
	q.Add(waiter(3))

	pairs := rec.matched()
	require.Len(t, pairs, 1)
	assert.Equal(t, "conn-1", pairs[0].p1.ConnID)
	assert.Equal(t, "conn-2", pairs[0].p2.ConnID)
	assert.Equal(t, 1, q.Size(), "third waiter stays queued")

	q.Add(waiter(4))
	pairs = rec.matched()
	require.Len(t, pairs, 2)
	assert.Equal(t, "conn-3", pairs[1].p1.ConnID)
	assert.Equal(t, "conn-4", pairs[1].p2.ConnID)
	assert.Equal(t, 0, q.Size())
}

func TestQueueSuppressesDuplicateJoins(t *testing.T) {
	rec := &recorder{}
	q := NewQueue(rec.onMatch, zap.NewNop())

	q.Add(waiter(1))
	q.Add(waiter(1))

	assert.Empty(t, rec.matched())
	assert.Equal(t, 1, q.Size())
}

func TestQueueRemove(t *testing.T) {
	rec := &recorder{}
	q := NewQueue(rec.onMatch, zap.NewNop())

	q.Add(waiter(1))
	q.Remove("conn-1")
	assert.Equal(t, 0, q.Size())

	// Absent connection is a no-op.
	q.Remove("conn-99")
	assert.Equal(t, 0, q.Size())

	// The removed waiter does not pair.
	q.Add(waiter(2))
	assert.Empty(t, rec.matched())
}

func TestQueueConcurrentChurn(t *testing.T) {
	rec := &recorder{}
	q := NewQueue(rec.onMatch, zap.NewNop())

	const n = 40
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			q.Add(waiter(i))
		}(i)
	}
	wg.Wait()

	pairs := rec.matched()
	assert.Len(t, pairs, n/2)
	assert.Equal(t, 0, q.Size())

	// Every waiter paired exactly once.
	seen := map[string]bool{}
	for _, p := range pairs {
		require.False(t, seen[p.p1.ConnID], "double-paired %s", p.p1.ConnID)
		require.False(t, seen[p.p2.ConnID], "double-paired %s", p.p2.ConnID)
		seen[p.p1.ConnID] = true
		seen[p.p2.ConnID] = true
	}
}
