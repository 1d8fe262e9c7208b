package feed

import (
	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/order"
)

// EventType classifies a change event.
type EventType string

const (
	// EventCreated announces a newly stored order.
	EventCreated EventType = "created"
	// EventUpdated announces a committed mutation of an existing order.
	EventUpdated EventType = "updated"
	// EventDeleted announces the removal of an order record.
	EventDeleted EventType = "deleted"
)

// Event is one committed change to the order store. The Order field is always
// the canonical record as committed, never a client-supplied payload, so
// subscribers cannot diverge on server-computed fields.
type Event struct {
	Type  EventType      `json:"type"`
	Order order.Snapshot `json:"order"`
}

// Message is one frame delivered to a session. The first frame of every
// session carries the full Snapshot of active orders matching its scope;
// every later frame carries exactly one Event. A client that replays the
// snapshot and then applies events in delivery order reconstructs the store's
// state for its scope.
type Message struct {
	Snapshot []order.Snapshot `json:"snapshot,omitempty"`
	Event    *Event           `json:"event,omitempty"`
}
