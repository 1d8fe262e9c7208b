package commands

import (
	"context"
	"errors"
	"time"

	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/kernel"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/order"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/ports"
	"github.com/biruk-abayneh/Restaurant-app/internal/pkg/errs"
)

// SubmitOutcome is the result of a submission. Amended reports whether the
// ticket folded into an order the table already had instead of creating one.
type SubmitOutcome struct {
	Order   *order.Order
	Amended bool
}

// SubmitOrderCommandHandler handles ticket submission for a table.
// Resolves item names and prices from the menu catalog at submission time and
// enforces the one-active-order-per-table rule: a submission against an
// occupied table amends the existing active order rather than inserting a
// duplicate.
type SubmitOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.MenuCatalog
}

// NewSubmitOrderCommandHandler creates a handler for ticket submission.
// Requires an OrderUoWFactory for transactional persistence and a MenuCatalog
// to resolve item snapshots.
func NewSubmitOrderCommandHandler(uowFactory OrderUoWFactory, catalog ports.MenuCatalog) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the submission command. Returns the canonical stored
// order; server-computed fields (timestamps, status, version, line pricing)
// come from the store, never from the request.
func (h SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (SubmitOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return SubmitOutcome{}, err
	}

	lines, err := resolveLines(ctx, h.catalog, cmd.Items())
	if err != nil {
		return SubmitOutcome{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return SubmitOutcome{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	now := time.Now().UTC()

	existing, err := orderRepo.GetActiveByTable(ctx, cmd.Table())
	switch {
	case err == nil:
		// The table already has an active order: fold the ticket into it.
		if amendErr := existing.Amend(lines, cmd.Note(), cmd.ServerName(), now); amendErr != nil {
			return SubmitOutcome{}, amendErr
		}
		if updateErr := orderRepo.Update(ctx, existing); updateErr != nil {
			return SubmitOutcome{}, updateErr
		}
		if commitErr := uow.Commit(ctx); commitErr != nil {
			return SubmitOutcome{}, commitErr
		}
		return SubmitOutcome{Order: existing, Amended: true}, nil

	case errors.Is(err, errs.ErrObjectNotFound):
		newOrder, newErr := order.NewOrder(kernel.NewUUID(), cmd.Table(), lines, cmd.Note(), cmd.ServerName(), now)
		if newErr != nil {
			return SubmitOutcome{}, newErr
		}
		if addErr := orderRepo.Add(ctx, newOrder); addErr != nil {
			return SubmitOutcome{}, addErr
		}
		if commitErr := uow.Commit(ctx); commitErr != nil {
			return SubmitOutcome{}, commitErr
		}
		return SubmitOutcome{Order: newOrder, Amended: false}, nil

	default:
		return SubmitOutcome{}, err
	}
}
