package order

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/kernel"
	"github.com/biruk-abayneh/Restaurant-app/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order represents a table's order in the system. It is the aggregate root
// that manages the order lifecycle from submission through preparation to
// ready-for-pickup.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and table number
//   - Must always have at least one line while active
//   - Status transitions follow the New -> Preparing -> Ready machine,
//     with post-acknowledgement amendments re-opening the order to New
//   - updatedAt never precedes createdAt
//   - Every committed mutation increments the version
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods. All derived flags (modified, status)
// are computed here and nowhere else; clients only ever display what the
// aggregate decided.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// tableNumber is the dining table the order belongs to
	tableNumber kernel.TableNumber

	// lines are the ordered item positions; insertion order is the kitchen
	// prep order hint
	lines []Line

	// note is the optional order-level instruction
	note string

	// status is the current state in the order lifecycle
	status Status

	// serverName identifies the submitting actor
	serverName string

	// createdAt is the immutable submission timestamp
	createdAt time.Time

	// updatedAt is the timestamp of the last mutation
	updatedAt time.Time

	// modified is true once the order was edited after the kitchen
	// acknowledged it
	modified bool

	// modifiedBy is the actor of the post-acknowledgement edit, set only
	// when modified is true
	modifiedBy string

	// acknowledged is true once the kitchen has started the order at least
	// once; it distinguishes "never seen" from "seen and now changed"
	acknowledged bool

	// version counts committed mutations for optimistic concurrency
	version int

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a newly submitted Order with validation. This is the only
// way (besides RestoreOrder for persistence) to create a valid Order.
//
// The order starts in New status with modified=false, version 1, and
// createdAt equal to updatedAt. An order with no lines is rejected with a
// ValueIsRequiredError; carts emptied before submission are discarded by the
// caller, never stored.
func NewOrder(
	id kernel.UUID,
	tableNumber kernel.TableNumber,
	lines []Line,
	note string,
	serverName string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        New,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTableNumber(tableNumber),
		o.setLines(lines),
		o.setServerName(serverName),
	); err != nil {
		return nil, err
	}

	o.note = note
	o.createdAt = now
	o.updatedAt = now
	o.version = 1
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running
// creation side effects. All invariants are still validated so corrupt rows
// cannot produce invalid aggregates.
func RestoreOrder(
	id kernel.UUID,
	tableNumber kernel.TableNumber,
	lines []Line,
	note string,
	status Status,
	serverName string,
	createdAt time.Time,
	updatedAt time.Time,
	modified bool,
	modifiedBy string,
	acknowledged bool,
	version int,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTableNumber(tableNumber),
		o.setLines(lines),
		o.setServerName(serverName),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if updatedAt.Before(createdAt) {
		return nil, errs.NewValueIsInvalidError("updatedAt")
	}
	if version < 1 {
		return nil, errs.NewValueIsInvalidError("version")
	}

	o.note = note
	o.status = status
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	o.modified = modified
	o.modifiedBy = modifiedBy
	o.acknowledged = acknowledged
	o.version = version
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TableNumber returns the dining table the order belongs to.
func (o *Order) TableNumber() kernel.TableNumber {
	return o.tableNumber
}

// Lines returns a copy of the order lines in kitchen prep order.
func (o *Order) Lines() []Line {
	return slices.Clone(o.lines)
}

// Note returns the optional order-level instruction.
func (o *Order) Note() string {
	return o.note
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// ServerName returns the identifier of the submitting actor.
func (o *Order) ServerName() string {
	return o.serverName
}

// CreatedAt returns the immutable submission timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Modified reports whether the order was edited after the kitchen
// acknowledged it.
func (o *Order) Modified() bool {
	return o.modified
}

// ModifiedBy returns the actor of the post-acknowledgement edit, or the
// empty string when Modified is false.
func (o *Order) ModifiedBy() string {
	return o.modifiedBy
}

// Acknowledged reports whether the kitchen has ever started this order.
func (o *Order) Acknowledged() bool {
	return o.acknowledged
}

// Version returns the optimistic concurrency version, starting at 1 and
// incremented by every committed mutation.
func (o *Order) Version() int {
	return o.version
}

// IsActive reports whether the order is part of the active set (New or Preparing).
func (o *Order) IsActive() bool {
	return o.status.IsActive()
}

// Total returns the sum of all line totals.
func (o *Order) Total() float64 {
	var total float64
	for _, l := range o.lines {
		total += l.Total()
	}
	return total
}

// Start marks the order as being cooked (New -> Preparing) and records the
// kitchen's acknowledgement. A second Start fails with an
// InvalidTransitionError and leaves the order unchanged.
func (o *Order) Start(now time.Time) error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.acknowledged = true
	o.touch(now)
	return nil
}

// Finish marks the order as ready for pickup (Preparing -> Ready).
func (o *Order) Finish(now time.Time) error {
	newStatus, err := o.status.Finish()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch(now)
	return nil
}

// Amend replaces the order's lines and note while it is active.
//
// If the kitchen has acknowledged the order, the amendment flags it as
// modified by the acting server and resets the status to New so the kitchen
// must re-acknowledge — it never cooks a stale version. An amendment to an
// order the kitchen has not started yet is silent: nobody has committed to
// any version, so neither the modified flag nor the status changes.
//
// Amending an order that is no longer active fails with an
// InvalidTransitionError; an amendment that would leave the order without
// lines is rejected before any state change.
func (o *Order) Amend(lines []Line, note string, actor string, now time.Time) error {
	newStatus, err := o.status.Reopen()
	if err != nil {
		return err
	}
	if strings.TrimSpace(actor) == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	if err = validateLines(lines); err != nil {
		return err
	}

	o.lines = slices.Clone(lines)
	o.note = note
	if o.acknowledged {
		o.status = newStatus
		o.modified = true
		o.modifiedBy = actor
	}
	o.touch(now)
	return nil
}

// touch registers a committed mutation: bumps updatedAt (never below its
// current value, so updatedAt >= createdAt holds even with skewed clocks)
// and increments the version.
func (o *Order) touch(now time.Time) {
	if now.After(o.updatedAt) {
		o.updatedAt = now
	}
	o.version++
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTableNumber(tableNumber kernel.TableNumber) error {
	if err := tableNumber.Validate(); err != nil {
		return err
	}
	o.tableNumber = tableNumber
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if err := validateLines(lines); err != nil {
		return err
	}
	o.lines = slices.Clone(lines)
	return nil
}

func (o *Order) setServerName(serverName string) error {
	if strings.TrimSpace(serverName) == "" {
		return errs.NewValueIsRequiredError("serverName")
	}
	o.serverName = serverName
	return nil
}

func validateLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	return nil
}
