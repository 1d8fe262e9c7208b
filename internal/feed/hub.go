package feed

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/kernel"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/order"
)

// hubQueueSize bounds the hub's inbound message queue. The run loop never
// blocks on a subscriber, so the queue drains quickly.
const hubQueueSize = 256

// ErrHubClosed is returned by Subscribe and Publish after Close.
var ErrHubClosed = errors.New("change feed hub is closed")

// SnapshotSource provides the current active orders for new subscribers'
// initial snapshots. Implemented by the order flow on top of the repository.
type SnapshotSource interface {
	ActiveSnapshots(ctx context.Context) ([]order.Snapshot, error)
}

// Hub is the fan-out point of the change feed. Everything flows through one
// run-loop goroutine processing a single queue: subscriptions take their
// initial snapshot and join the registry in the same step that orders live
// events, so no event between "snapshot taken" and "session registered" can
// be missed or duplicated. Published events reach each matching session in
// publish order, which the order flow guarantees equals commit order.
type Hub struct {
	source   SnapshotSource
	registry *Registry
	logger   *slog.Logger

	msgs      chan hubMsg
	done      chan struct{}
	closeOnce sync.Once
}

type hubMsg struct {
	event *Event
	sub   *subscribeReq
	unsub *kernel.UUID
}

type subscribeReq struct {
	scope Scope
	reply chan subscribeReply
}

type subscribeReply struct {
	session *Session
	err     error
}

// NewHub creates a hub reading initial snapshots from source.
// Call Run in a goroutine before subscribing or publishing.
func NewHub(source SnapshotSource, registry *Registry, logger *slog.Logger) *Hub {
	return &Hub{
		source:   source,
		registry: registry,
		logger:   logger.With("component", "change_feed_hub"),
		msgs:     make(chan hubMsg, hubQueueSize),
		done:     make(chan struct{}),
	}
}

// Registry exposes the session registry for operational introspection.
func (h *Hub) Registry() *Registry {
	return h.registry
}

// Run processes the hub queue until Close is called. It is usually run in a
// goroutine from the composition root.
func (h *Hub) Run() {
	for {
		select {
		case m := <-h.msgs:
			switch {
			case m.event != nil:
				h.handleEvent(*m.event)
			case m.sub != nil:
				h.handleSubscribe(m.sub)
			case m.unsub != nil:
				h.handleUnsubscribe(*m.unsub)
			}
		case <-h.done:
			for _, s := range h.registry.drain() {
				close(s.ch)
			}
			return
		}
	}
}

// Close stops the run loop and ends every session.
func (h *Hub) Close() {
	h.closeOnce.Do(func() {
		close(h.done)
	})
}

// Subscribe registers a new session with the given scope. The session's first
// message is a full snapshot of active orders matching the scope, followed by
// the live event tail. The caller owns the session until it disconnects, at
// which point it must call Unsubscribe.
func (h *Hub) Subscribe(ctx context.Context, scope Scope) (*Session, error) {
	req := &subscribeReq{
		scope: scope,
		reply: make(chan subscribeReply, 1),
	}

	select {
	case h.msgs <- hubMsg{sub: req}:
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-h.done:
		return nil, ErrHubClosed
	}

	select {
	case rep := <-req.reply:
		return rep.session, rep.err
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-h.done:
		return nil, ErrHubClosed
	}
}

// Unsubscribe drops a session from the registry and closes its channel.
// Safe to call for sessions the hub already evicted.
func (h *Hub) Unsubscribe(id kernel.UUID) {
	select {
	case h.msgs <- hubMsg{unsub: &id}:
	case <-h.done:
	}
}

// Publish hands a committed change event to the hub for fan-out. Events are
// delivered to matching sessions in the order Publish is called. Publishing
// after Close is a logged no-op; the mutation is already committed and
// clients resync via snapshots.
func (h *Hub) Publish(evt Event) {
	select {
	case h.msgs <- hubMsg{event: &evt}:
	case <-h.done:
		h.logger.Warn("event dropped, hub closed",
			"type", string(evt.Type), "order_id", evt.Order.ID)
	}
}

func (h *Hub) handleSubscribe(req *subscribeReq) {
	snaps, err := h.source.ActiveSnapshots(context.Background())
	if err != nil {
		req.reply <- subscribeReply{err: err}
		return
	}

	matched := make([]order.Snapshot, 0, len(snaps))
	for _, snap := range snaps {
		if req.scope.Matches(snap) {
			matched = append(matched, snap)
		}
	}

	session := newSession(req.scope, time.Now().UTC())
	session.deliver(Message{Snapshot: matched})
	h.registry.add(session)

	h.logger.Info("session joined",
		"session_id", session.id.String(),
		"scope", req.scope.String(),
		"snapshot_size", len(matched),
		"sessions", h.registry.Count())

	req.reply <- subscribeReply{session: session}
}

func (h *Hub) handleUnsubscribe(id kernel.UUID) {
	if s := h.registry.remove(id); s != nil {
		close(s.ch)
		h.logger.Info("session left",
			"session_id", id.String(), "sessions", h.registry.Count())
	}
}

func (h *Hub) handleEvent(evt Event) {
	var evicted []*Session
	h.registry.each(func(s *Session) {
		if !s.scope.Matches(evt.Order) {
			return
		}
		if !s.deliver(Message{Event: &evt}) {
			evicted = append(evicted, s)
		}
	})

	// Delivery failures never roll back the committed mutation; the slow
	// consumer is dropped and must resync with a fresh subscription.
	for _, s := range evicted {
		if removed := h.registry.remove(s.id); removed != nil {
			close(removed.ch)
			h.logger.Warn("session evicted, delivery buffer full",
				"session_id", s.id.String(), "scope", s.scope.String())
		}
	}
}
