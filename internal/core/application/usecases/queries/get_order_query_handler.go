package queries

import (
	"context"

	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/order"
)

// GetOrderQueryHandler serves a single order lookup.
type GetOrderQueryHandler struct {
	reader OrderReader
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
func NewGetOrderQueryHandler(reader OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: reader}
}

// Handle executes the lookup. Unknown ids surface as an ObjectNotFoundError
// from the store.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (order.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	aggregate, err := h.reader.Get(ctx, query.OrderID())
	if err != nil {
		return order.Snapshot{}, err
	}

	return aggregate.Snapshot(), nil
}
