// Package orderflow owns the write path of the order subsystem. Every
// mutation passes through a single Flow, which serializes writes and hands
// each committed record to the change feed before releasing the write slot.
// Broadcast order therefore equals commit order, and a rejected mutation is
// never broadcast at all.
package orderflow

import (
	"context"
	"log/slog"

	"github.com/biruk-abayneh/Restaurant-app/internal/core/application/usecases/commands"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/order"
	"github.com/biruk-abayneh/Restaurant-app/internal/feed"
	"github.com/biruk-abayneh/Restaurant-app/internal/pkg/errs"
)

// EventPublisher receives committed change events for fan-out.
type EventPublisher interface {
	Publish(evt feed.Event)
}

// SubmitResult is the outcome of a submission through the flow. Amended
// reports that the ticket folded into the table's existing active order.
type SubmitResult struct {
	Order   order.Snapshot
	Amended bool
}

// Flow is the sole writer to the order store. A capacity-one slot serializes
// Submit, Amend, Advance and Remove; contested callers wait until the slot
// frees or their context expires, whichever comes first.
type Flow struct {
	slot      chan struct{}
	publisher EventPublisher
	logger    *slog.Logger

	submit  commands.SubmitOrderCommandHandler
	amend   commands.AmendOrderCommandHandler
	advance commands.AdvanceOrderStatusCommandHandler
	remove  commands.RemoveOrderCommandHandler
}

// NewFlow creates the dispatch path over the given command handlers.
func NewFlow(
	publisher EventPublisher,
	submit commands.SubmitOrderCommandHandler,
	amend commands.AmendOrderCommandHandler,
	advance commands.AdvanceOrderStatusCommandHandler,
	remove commands.RemoveOrderCommandHandler,
	logger *slog.Logger,
) *Flow {
	return &Flow{
		slot:      make(chan struct{}, 1),
		publisher: publisher,
		logger:    logger.With("component", "order_flow"),
		submit:    submit,
		amend:     amend,
		advance:   advance,
		remove:    remove,
	}
}

// acquire claims the write slot, giving up when ctx expires. The returned
// release must be called exactly once.
func (f *Flow) acquire(ctx context.Context, op string) (func(), error) {
	select {
	case f.slot <- struct{}{}:
		return func() { <-f.slot }, nil
	case <-ctx.Done():
		return nil, errs.NewTimeoutErrorWithCause(op, ctx.Err())
	}
}

// Submit stores a new ticket, or folds it into the table's existing active
// order, and broadcasts the committed record.
func (f *Flow) Submit(ctx context.Context, cmd commands.SubmitOrderCommand) (SubmitResult, error) {
	release, err := f.acquire(ctx, "submit order")
	if err != nil {
		return SubmitResult{}, err
	}
	defer release()

	outcome, err := f.submit.Handle(ctx, cmd)
	if err != nil {
		return SubmitResult{}, err
	}

	snapshot := outcome.Order.Snapshot()
	eventType := feed.EventCreated
	if outcome.Amended {
		eventType = feed.EventUpdated
	}
	f.publisher.Publish(feed.Event{Type: eventType, Order: snapshot})

	f.logger.Info("order submitted",
		"order_id", snapshot.ID,
		"table", snapshot.TableNumber,
		"amended", outcome.Amended,
		"version", snapshot.Version)
	return SubmitResult{Order: snapshot, Amended: outcome.Amended}, nil
}

// Amend applies a server-side change and broadcasts the committed record.
func (f *Flow) Amend(ctx context.Context, cmd commands.AmendOrderCommand) (order.Snapshot, error) {
	release, err := f.acquire(ctx, "amend order")
	if err != nil {
		return order.Snapshot{}, err
	}
	defer release()

	aggregate, err := f.amend.Handle(ctx, cmd)
	if err != nil {
		return order.Snapshot{}, err
	}

	snapshot := aggregate.Snapshot()
	f.publisher.Publish(feed.Event{Type: feed.EventUpdated, Order: snapshot})

	f.logger.Info("order amended",
		"order_id", snapshot.ID,
		"actor", snapshot.ModifiedBy,
		"status", snapshot.Status,
		"version", snapshot.Version)
	return snapshot, nil
}

// Advance moves an order along the kitchen path and broadcasts the committed
// record.
func (f *Flow) Advance(ctx context.Context, cmd commands.AdvanceOrderStatusCommand) (order.Snapshot, error) {
	release, err := f.acquire(ctx, "advance order status")
	if err != nil {
		return order.Snapshot{}, err
	}
	defer release()

	aggregate, err := f.advance.Handle(ctx, cmd)
	if err != nil {
		return order.Snapshot{}, err
	}

	snapshot := aggregate.Snapshot()
	f.publisher.Publish(feed.Event{Type: feed.EventUpdated, Order: snapshot})

	f.logger.Info("order status advanced",
		"order_id", snapshot.ID,
		"status", snapshot.Status,
		"version", snapshot.Version)
	return snapshot, nil
}

// Remove deletes an order record and broadcasts the deletion.
func (f *Flow) Remove(ctx context.Context, cmd commands.RemoveOrderCommand) (order.Snapshot, error) {
	release, err := f.acquire(ctx, "remove order")
	if err != nil {
		return order.Snapshot{}, err
	}
	defer release()

	aggregate, err := f.remove.Handle(ctx, cmd)
	if err != nil {
		return order.Snapshot{}, err
	}

	snapshot := aggregate.Snapshot()
	f.publisher.Publish(feed.Event{Type: feed.EventDeleted, Order: snapshot})

	f.logger.Info("order removed", "order_id", snapshot.ID)
	return snapshot, nil
}
