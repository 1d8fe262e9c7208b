package feed

import (
	"sync"

	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/kernel"
)

// Registry tracks the connected subscriber sessions and their scopes.
// Registration happens on connect, removal on disconnect or eviction; no
// session state is persisted beyond that, so a reconnect is a fresh join.
type Registry struct {
	mu       sync.RWMutex
	sessions map[kernel.UUID]*Session
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[kernel.UUID]*Session),
	}
}

func (r *Registry) add(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.id] = s
}

// remove deletes and returns the session, or nil if it is already gone.
func (r *Registry) remove(id kernel.UUID) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil
	}
	delete(r.sessions, id)
	return s
}

// each invokes fn for every registered session.
func (r *Registry) each(fn func(*Session)) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.sessions {
		fn(s)
	}
}

// drain removes all sessions and returns them, used at hub shutdown.
func (r *Registry) drain() []*Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Session, 0, len(r.sessions))
	for id, s := range r.sessions {
		out = append(out, s)
		delete(r.sessions, id)
	}
	return out
}

// Count returns the number of connected sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Scopes returns the scope description of every connected session,
// useful for operational logging.
func (r *Registry) Scopes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s.scope.String())
	}
	return out
}
