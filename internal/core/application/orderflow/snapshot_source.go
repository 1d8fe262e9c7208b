package orderflow

import (
	"context"

	"github.com/biruk-abayneh/Restaurant-app/internal/core/application/usecases/queries"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/order"
)

// SnapshotQuery adapts the active orders query to the feed hub's snapshot
// source contract, so a new subscriber's initial frame comes from the same
// committed read path as every other query.
type SnapshotQuery struct {
	handler queries.GetActiveOrdersQueryHandler
}

// NewSnapshotQuery creates a snapshot source over the active orders query.
func NewSnapshotQuery(handler queries.GetActiveOrdersQueryHandler) SnapshotQuery {
	return SnapshotQuery{handler: handler}
}

// ActiveSnapshots returns the full committed active order set.
func (s SnapshotQuery) ActiveSnapshots(ctx context.Context) ([]order.Snapshot, error) {
	query, err := queries.NewGetActiveOrdersQuery(nil, nil)
	if err != nil {
		return nil, err
	}
	return s.handler.Handle(ctx, query)
}
