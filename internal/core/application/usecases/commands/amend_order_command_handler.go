package commands

import (
	"context"
	"time"

	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/order"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/ports"
)

// AmendOrderCommandHandler applies a server-side change to a stored order.
// The domain decides the consequences: an amendment to an order the kitchen
// already started reopens it to "new" and flags it as modified; one the
// kitchen never touched is silent. Amending a ready order is rejected.
type AmendOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.MenuCatalog
}

// NewAmendOrderCommandHandler creates a handler for order amendments.
func NewAmendOrderCommandHandler(uowFactory OrderUoWFactory, catalog ports.MenuCatalog) AmendOrderCommandHandler {
	return AmendOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the amendment. Rejected amendments leave the stored order
// untouched: the version check and the transition check both run before any
// write, and a failed write rolls back.
func (h AmendOrderCommandHandler) Handle(ctx context.Context, cmd AmendOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	lines, err := resolveLines(ctx, h.catalog, cmd.Items())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = ensureVersion(aggregate, cmd.ExpectedVersion()); err != nil {
		return nil, err
	}

	if err = aggregate.Amend(lines, cmd.Note(), cmd.Actor(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
