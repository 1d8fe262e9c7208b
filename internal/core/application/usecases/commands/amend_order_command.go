package commands

import (
	"errors"

	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/kernel"
	"github.com/biruk-abayneh/Restaurant-app/internal/pkg/errs"
	"github.com/biruk-abayneh/Restaurant-app/internal/pkg/guard"
)

var ErrAmendOrderCommandIsNotConstructed = errors.New(
	"AmendOrderCommand must be created via NewAmendOrderCommand constructor",
)

// AmendOrderCommand represents a server station changing an existing order.
// The item list replaces the order's lines wholesale. ExpectedVersion carries
// the version the caller last saw; zero means "apply against latest".
type AmendOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	items           []ItemInput
	note            string
	actor           string
	expectedVersion int

	guard guard.ConstructorGuard
}

// NewAmendOrderCommand creates a command to amend an existing order.
// Validates the order id, the item list, the acting server's name, and that
// expectedVersion is not negative.
func NewAmendOrderCommand(
	orderID kernel.UUID,
	items []ItemInput,
	note string,
	actor string,
	expectedVersion int,
) (AmendOrderCommand, error) {
	command := AmendOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setItems(items),
		command.setActor(actor),
		command.setExpectedVersion(expectedVersion),
	); err != nil {
		return AmendOrderCommand{}, err
	}

	command.note = note
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AmendOrderCommand) Validate() error {
	return c.guard.Validate(ErrAmendOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to amend.
func (c AmendOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns the replacement item selections.
func (c AmendOrderCommand) Items() []ItemInput {
	items := make([]ItemInput, len(c.items))
	copy(items, c.items)
	return items
}

// Note returns the replacement order-level note.
func (c AmendOrderCommand) Note() string {
	return c.note
}

// Actor returns the name of the server station making the change.
func (c AmendOrderCommand) Actor() string {
	return c.actor
}

// ExpectedVersion returns the version the caller last saw, or 0 for latest.
func (c AmendOrderCommand) ExpectedVersion() int {
	return c.expectedVersion
}

func (c *AmendOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AmendOrderCommand) setItems(items []ItemInput) error {
	if err := validateItemInputs(items); err != nil {
		return err
	}

	c.items = make([]ItemInput, len(items))
	copy(c.items, items)
	return nil
}

func (c *AmendOrderCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	c.actor = actor
	return nil
}

func (c *AmendOrderCommand) setExpectedVersion(expectedVersion int) error {
	if expectedVersion < 0 {
		return errs.NewValueIsInvalidError("expectedVersion")
	}

	c.expectedVersion = expectedVersion
	return nil
}
