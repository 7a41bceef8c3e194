package session

import (
	"fmt"
	"sync"
)

// Registry maps live connections to their owning session. It is owned by
// the ws dispatcher and handed to sessions only through the onDestroy
// callback, so there is no ambient global map.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	byConn   map[string]string
	counter  int
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		byConn:   make(map[string]string),
	}
}

func (r *Registry) NextID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counter++
	return fmt.Sprintf("room_%d", r.counter)
}

func (r *Registry) Register(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID()] = s
	for connID := range s.sides {
		r.byConn[connID] = s.ID()
	}
}

// Lookup resolves a connection to its in-flight session, or nil.
func (r *Registry) Lookup(connID string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byConn[connID]
	if !ok {
		return nil
	}
	return r.sessions[id]
}

func (r *Registry) Remove(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for connID, id := range r.byConn {
		if id == sessionID {
			delete(r.byConn, connID)
		}
	}
	delete(r.sessions, sessionID)
}
