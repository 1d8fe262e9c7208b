package commands

import (
	"context"
	"time"

	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/order"
	"github.com/biruk-abayneh/Restaurant-app/internal/pkg/errs"
)

// AdvanceOrderStatusCommandHandler moves an order along the kitchen's path.
// "preparing" marks the order as started (and acknowledged for amendment
// accounting); "ready" completes preparation. Any other target is rejected as
// an invalid transition without touching the stored record.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceOrderStatusCommandHandler creates a handler for status advancement.
func NewAdvanceOrderStatusCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the advancement command.
func (h AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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

	now := time.Now().UTC()
	switch cmd.Target() {
	case order.Preparing:
		err = aggregate.Start(now)
	case order.Ready:
		err = aggregate.Finish(now)
	default:
		err = errs.NewInvalidTransitionError(aggregate.Status().String(), "advance to "+cmd.Target().String())
	}
	if err != nil {
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
