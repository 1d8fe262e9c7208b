package ports

import (
	"context"
	"time"

	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/kernel"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/order"
)

// ActiveFilter narrows GetActive results. Nil fields mean "any".
type ActiveFilter struct {
	Status *order.Status
	Table  *kernel.TableNumber
}

// OrderRepository defines the persistence contract for order aggregates.
// Implementations must provide atomic writes with optimistic concurrency:
// a patch either fully applies or is rejected, never partially.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a mutated order aggregate. The aggregate's version was
	// already incremented by the mutation, so the row is matched on
	// version-1; if the row exists at a different version the caller lost a
	// race and a ConcurrencyConflictError is returned. An unknown id returns
	// an ObjectNotFoundError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetActive retrieves active orders (status new or preparing) matching
	// the filter, ordered by creation time ascending. The stable FIFO order
	// keeps the kitchen queue fair.
	GetActive(ctx context.Context, filter ActiveFilter) ([]*order.Order, error)

	// GetActiveByTable retrieves the single active order for a table.
	// Returns an ObjectNotFoundError when the table has no active order;
	// at most one can exist at a time.
	GetActiveByTable(ctx context.Context, table kernel.TableNumber) (*order.Order, error)

	// GetReadyBefore retrieves ready orders whose last update is strictly
	// before the cutoff. Feeds the retention cleanup.
	GetReadyBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)

	// Remove deletes an order record. Administrative cleanup only; removal
	// is not part of the normal lifecycle.
	Remove(ctx context.Context, id kernel.UUID) error
}
