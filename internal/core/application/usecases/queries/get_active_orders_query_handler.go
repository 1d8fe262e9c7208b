package queries

import (
	"context"

	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/order"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/ports"
)

// GetActiveOrdersQueryHandler serves the active order set from the store.
// Results come back oldest-first by creation time, matching the queue order
// the kitchen works in.
type GetActiveOrdersQueryHandler struct {
	reader OrderReader
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
func NewGetActiveOrdersQueryHandler(reader OrderReader) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{reader: reader}
}

// Handle executes the query and returns serialized snapshots.
func (h GetActiveOrdersQueryHandler) Handle(ctx context.Context, query GetActiveOrdersQuery) ([]order.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregates, err := h.reader.GetActive(ctx, ports.ActiveFilter{
		Status: query.Status(),
		Table:  query.Table(),
	})
	if err != nil {
		return nil, err
	}

	snapshots := make([]order.Snapshot, len(aggregates))
	for i, aggregate := range aggregates {
		snapshots[i] = aggregate.Snapshot()
	}

	return snapshots, nil
}
