package commands

import (
	"context"

	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/kernel"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/order"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/ports"
	"github.com/biruk-abayneh/Restaurant-app/internal/pkg/errs"
)

// ItemInput is the raw item selection carried by submit and amend commands.
// It references a menu item by id; name and price are resolved from the menu
// catalog when the command is handled, never taken from the client.
type ItemInput struct {
	ItemID    kernel.UUID
	Qty       int
	Modifiers []string
	Note      string
}

func validateItemInputs(items []ItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.ItemID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("items.itemId", err)
		}
		if item.Qty < order.LineQtyMin || item.Qty > order.LineQtyMax {
			return errs.NewValueIsOutOfRangeError("items.qty", item.Qty, order.LineQtyMin, order.LineQtyMax)
		}
	}

	return nil
}

// resolveLines turns item inputs into order lines, snapshotting the current
// catalog name and unit price into each line.
func resolveLines(ctx context.Context, catalog ports.MenuCatalog, items []ItemInput) ([]order.Line, error) {
	lines := make([]order.Line, 0, len(items))
	for _, item := range items {
		menuItem, err := catalog.Resolve(ctx, item.ItemID)
		if err != nil {
			return nil, err
		}

		line, err := order.NewLine(menuItem.ID, menuItem.Name, menuItem.UnitPrice, item.Qty, item.Modifiers, item.Note)
		if err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	return lines, nil
}

// ensureVersion rejects a mutation when the caller's expected version no
// longer matches the stored aggregate. Expected 0 means "latest wins".
func ensureVersion(aggregate *order.Order, expected int) error {
	if expected > 0 && aggregate.Version() != expected {
		return errs.NewConcurrencyConflictError("order", aggregate.ID().String(), expected)
	}
	return nil
}
