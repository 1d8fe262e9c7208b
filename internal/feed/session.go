package feed

import (
	"time"

	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/kernel"
)

// sessionBufferSize is the per-session delivery buffer. A session whose
// buffer overflows is evicted; its client reconnects for a fresh snapshot.
const sessionBufferSize = 64

// Session is one subscriber connection to the change feed. Sessions are
// created by Hub.Subscribe and live until the client disconnects or the hub
// evicts them as too slow.
type Session struct {
	id       kernel.UUID
	scope    Scope
	joinedAt time.Time
	ch       chan Message
}

func newSession(scope Scope, joinedAt time.Time) *Session {
	return &Session{
		id:       kernel.NewUUID(),
		scope:    scope,
		joinedAt: joinedAt,
		ch:       make(chan Message, sessionBufferSize),
	}
}

// ID returns the session's identifier, assigned at join time.
func (s *Session) ID() kernel.UUID {
	return s.id
}

// Scope returns the filter the session subscribed with.
func (s *Session) Scope() Scope {
	return s.scope
}

// JoinedAt returns when the session was registered.
func (s *Session) JoinedAt() time.Time {
	return s.joinedAt
}

// Messages returns the session's delivery channel. The first message carries
// the initial snapshot, every later one a single change event. The channel is
// closed when the session ends, for whatever reason; a closed channel is the
// signal to reconnect.
func (s *Session) Messages() <-chan Message {
	return s.ch
}

// deliver performs a fire-and-forget send. Reports false when the session's
// buffer is full, in which case the hub evicts it: a slow kitchen display
// must never stall order submission for other tables.
func (s *Session) deliver(msg Message) bool {
	select {
	case s.ch <- msg:
		return true
	default:
		return false
	}
}
