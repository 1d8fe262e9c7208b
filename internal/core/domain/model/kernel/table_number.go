package kernel

import (
	"fmt"

	"github.com/biruk-abayneh/Restaurant-app/internal/pkg/errs"
	"github.com/biruk-abayneh/Restaurant-app/internal/pkg/guard"
)

const (
	// TableNumberMin is the lowest valid dining table number.
	TableNumberMin = 1
	// TableNumberMax is the highest valid dining table number.
	TableNumberMax = 999
)

// ErrTableNumberIsNotConstructed is returned when attempting to use an
// improperly initialized TableNumber. Table numbers must be created via
// NewTableNumber to ensure validity.
var ErrTableNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"table number must be created via NewTableNumber constructor")

// TableNumber identifies the dining table an order belongs to.
// It is an immutable value object; the zero value is invalid and fails
// validation, so instances must be created through NewTableNumber.
//
// At most one active order may exist per table at any time; that invariant is
// enforced by the order flow, keyed on this value.
type TableNumber struct { //nolint:recvcheck //using for validation
	number int
	guard  guard.ConstructorGuard
}

// NewTableNumber creates a TableNumber within [TableNumberMin, TableNumberMax].
// Returns a ValueIsOutOfRangeError for anything outside that range.
func NewTableNumber(number int) (TableNumber, error) {
	if number < TableNumberMin || number > TableNumberMax {
		return TableNumber{}, errs.NewValueIsOutOfRangeError("tableNumber", number, TableNumberMin, TableNumberMax)
	}

	return TableNumber{
		number: number,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Int returns the numeric table number.
func (t TableNumber) Int() int {
	return t.number
}

// String returns the display label for the table, e.g. "Table 5".
func (t TableNumber) String() string {
	return fmt.Sprintf("Table %d", t.number)
}

// IsEqual compares two table numbers by value.
func (t TableNumber) IsEqual(other TableNumber) bool {
	return t.number == other.number
}

// Validate checks that the TableNumber was built through its constructor.
func (t TableNumber) Validate() error {
	return t.guard.Validate(ErrTableNumberIsNotConstructed)
}
