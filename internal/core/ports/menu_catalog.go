package ports

import (
	"context"

	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/kernel"
)

// MenuItem is the point-in-time view of a catalog entry used to snapshot
// name and price into an order line at submission time. The core never
// re-queries the catalog for an existing order, so later menu edits cannot
// retroactively change what a table ordered.
type MenuItem struct {
	ID        kernel.UUID
	Name      string
	UnitPrice float64
}

// MenuCatalog is the boundary to the external menu collaborator.
// Resolve returns an ObjectNotFoundError for unknown item ids.
type MenuCatalog interface {
	Resolve(ctx context.Context, itemID kernel.UUID) (MenuItem, error)
}
