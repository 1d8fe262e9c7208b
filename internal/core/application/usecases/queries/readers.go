// Package queries contains read-only operations over the order store.
// Implements the Query side of the CQRS architecture: query value objects
// plus handlers that return serialized snapshots, never live aggregates.
//
// Queries read committed state only and bypass the write path entirely, so
// they are safe to serve while mutations are in flight.
package queries

import (
	"context"

	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/kernel"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/order"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/ports"
)

// OrderReader is the read surface query handlers need. Both storage backends
// satisfy it through ports.OrderRepository; the narrower interface keeps the
// query side from reaching write operations.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	GetActive(ctx context.Context, filter ports.ActiveFilter) ([]*order.Order, error)
}
