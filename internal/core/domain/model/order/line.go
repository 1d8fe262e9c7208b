package order

import (
	"slices"
	"strings"

	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/kernel"
	"github.com/biruk-abayneh/Restaurant-app/internal/pkg/errs"
	"github.com/biruk-abayneh/Restaurant-app/internal/pkg/guard"
)

const (
	// LineQtyMin is the minimum quantity of a single order line.
	// A line reduced to zero is removed by the caller, never stored.
	LineQtyMin = 1
	// LineQtyMax is the maximum quantity of a single order line.
	LineQtyMax = 99
)

// ErrLineIsNotConstructed is returned when attempting to use an improperly
// initialized Line. Lines must be created via NewLine to ensure validity.
var ErrLineIsNotConstructed = errs.NewValueIsRequiredError(
	"order line must be created via NewLine constructor")

// Line is one item position of an order. Name and unit price are a
// denormalized snapshot of the menu item taken at order time, so later menu
// changes never retroactively alter historical orders.
//
// Line is an immutable value object. Modifiers are an order-insensitive set:
// they are deduplicated and canonically sorted on construction, so two lines
// with the same modifiers in different order compare equal.
type Line struct { //nolint:recvcheck //using for validation
	itemID    kernel.UUID
	name      string
	unitPrice float64
	qty       int
	modifiers []string
	note      string

	guard guard.ConstructorGuard
}

// NewLine creates an order line from a menu snapshot and the requested
// quantity. Validates that the item id is constructed, the name is present,
// the unit price is not negative, and the quantity lies within
// [LineQtyMin, LineQtyMax].
func NewLine(itemID kernel.UUID, name string, unitPrice float64, qty int, modifiers []string, note string) (Line, error) {
	if err := itemID.Validate(); err != nil {
		return Line{}, err
	}
	if strings.TrimSpace(name) == "" {
		return Line{}, errs.NewValueIsRequiredError("name")
	}
	if unitPrice < 0 {
		return Line{}, errs.NewValueIsInvalidError("unitPrice")
	}
	if qty < LineQtyMin || qty > LineQtyMax {
		return Line{}, errs.NewValueIsOutOfRangeError("qty", qty, LineQtyMin, LineQtyMax)
	}

	return Line{
		itemID:    itemID,
		name:      name,
		unitPrice: unitPrice,
		qty:       qty,
		modifiers: normalizeModifiers(modifiers),
		note:      note,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// normalizeModifiers returns a deduplicated, sorted copy with blanks dropped.
func normalizeModifiers(modifiers []string) []string {
	out := make([]string, 0, len(modifiers))
	for _, m := range modifiers {
		m = strings.TrimSpace(m)
		if m == "" || slices.Contains(out, m) {
			continue
		}
		out = append(out, m)
	}
	slices.Sort(out)
	return out
}

// ItemID returns the menu item identifier the line was snapshotted from.
func (l Line) ItemID() kernel.UUID {
	return l.itemID
}

// Name returns the menu item name at order time.
func (l Line) Name() string {
	return l.name
}

// UnitPrice returns the menu item price at order time.
func (l Line) UnitPrice() float64 {
	return l.unitPrice
}

// Qty returns the ordered quantity, always at least LineQtyMin.
func (l Line) Qty() int {
	return l.qty
}

// Modifiers returns a copy of the canonicalized modifier set.
func (l Line) Modifiers() []string {
	return slices.Clone(l.modifiers)
}

// Note returns the optional per-line instruction.
func (l Line) Note() string {
	return l.note
}

// Total returns the line total (unit price times quantity).
func (l Line) Total() float64 {
	return l.unitPrice * float64(l.qty)
}

// IsEqual compares two lines field by field. Modifier order is irrelevant
// because modifiers are canonicalized on construction.
func (l Line) IsEqual(other Line) bool {
	return l.itemID.IsEqual(other.itemID) &&
		l.name == other.name &&
		l.unitPrice == other.unitPrice &&
		l.qty == other.qty &&
		l.note == other.note &&
		slices.Equal(l.modifiers, other.modifiers)
}

// Validate ensures the line was built through NewLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}
