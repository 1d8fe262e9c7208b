package commands

import (
	"errors"

	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/kernel"
	"github.com/biruk-abayneh/Restaurant-app/internal/pkg/errs"
	"github.com/biruk-abayneh/Restaurant-app/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand represents a server station submitting a ticket for a
// table. If the table already has an active order the submission is applied
// as an amendment to it, keeping the one-active-order-per-table rule intact.
//
// Example:
//
//	cmd, err := NewSubmitOrderCommand(table, items, "no onions", "alice")
//	if err != nil {
//	    return fmt.Errorf("invalid ticket: %w", err)
//	}
//
//	outcome, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to submit order: %w", err)
//	}
//	fmt.Printf("Order %s stored at version %d", outcome.Order.ID(), outcome.Order.Version())
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	table      kernel.TableNumber
	items      []ItemInput
	note       string
	serverName string

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to submit a new ticket.
// Validates that the table number is constructed, at least one item is
// present with a sane quantity, and the submitting server is named.
func NewSubmitOrderCommand(
	table kernel.TableNumber,
	items []ItemInput,
	note string,
	serverName string,
) (SubmitOrderCommand, error) {
	command := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTable(table),
		command.setItems(items),
		command.setServerName(serverName),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	command.note = note
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// Table returns the destination table number.
func (c SubmitOrderCommand) Table() kernel.TableNumber {
	return c.table
}

// Items returns the requested item selections.
func (c SubmitOrderCommand) Items() []ItemInput {
	items := make([]ItemInput, len(c.items))
	copy(items, c.items)
	return items
}

// Note returns the order-level note.
func (c SubmitOrderCommand) Note() string {
	return c.note
}

// ServerName returns the name of the submitting server station.
func (c SubmitOrderCommand) ServerName() string {
	return c.serverName
}

func (c *SubmitOrderCommand) setTable(table kernel.TableNumber) error {
	if err := table.Validate(); err != nil {
		return err
	}

	c.table = table
	return nil
}

func (c *SubmitOrderCommand) setItems(items []ItemInput) error {
	if err := validateItemInputs(items); err != nil {
		return err
	}

	c.items = make([]ItemInput, len(items))
	copy(c.items, items)
	return nil
}

func (c *SubmitOrderCommand) setServerName(serverName string) error {
	if serverName == "" {
		return errs.NewValueIsRequiredError("serverName")
	}

	c.serverName = serverName
	return nil
}
