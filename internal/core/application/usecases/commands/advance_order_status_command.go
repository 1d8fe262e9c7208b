package commands

import (
	"errors"

	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/kernel"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/order"
	"github.com/biruk-abayneh/Restaurant-app/internal/pkg/errs"
	"github.com/biruk-abayneh/Restaurant-app/internal/pkg/guard"
)

var ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
	"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
)

// AdvanceOrderStatusCommand represents the kitchen moving an order forward:
// "preparing" when work starts, "ready" when the food is up. Those are the
// only targets the kitchen controls; an order returns to "new" exclusively
// through an amendment.
type AdvanceOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	target          order.Status
	expectedVersion int

	guard guard.ConstructorGuard
}

// NewAdvanceOrderStatusCommand creates a command to advance an order's status.
func NewAdvanceOrderStatusCommand(
	orderID kernel.UUID,
	target order.Status,
	expectedVersion int,
) (AdvanceOrderStatusCommand, error) {
	command := AdvanceOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTarget(target),
		command.setExpectedVersion(expectedVersion),
	); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to advance.
func (c AdvanceOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested destination status.
func (c AdvanceOrderStatusCommand) Target() order.Status {
	return c.target
}

// ExpectedVersion returns the version the caller last saw, or 0 for latest.
func (c AdvanceOrderStatusCommand) ExpectedVersion() int {
	return c.expectedVersion
}

func (c *AdvanceOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *AdvanceOrderStatusCommand) setExpectedVersion(expectedVersion int) error {
	if expectedVersion < 0 {
		return errs.NewValueIsInvalidError("expectedVersion")
	}

	c.expectedVersion = expectedVersion
	return nil
}
