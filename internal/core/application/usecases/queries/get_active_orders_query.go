package queries

import (
	"errors"

	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/kernel"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/order"
	"github.com/biruk-abayneh/Restaurant-app/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves the current active order set: everything a
// kitchen display renders on startup. Optional filters narrow by status or
// table; nil means "any".
//
// Example:
//
//	status := order.Preparing
//	query, _ := NewGetActiveOrdersQuery(&status, nil)
//	inFlight, err := handler.Handle(ctx, query)
type GetActiveOrdersQuery struct { //nolint:recvcheck //using for validation
	status *order.Status
	table  *kernel.TableNumber

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for the active order set.
// Filters are optional; when present they must be valid values.
func NewGetActiveOrdersQuery(status *order.Status, table *kernel.TableNumber) (GetActiveOrdersQuery, error) {
	query := GetActiveOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return GetActiveOrdersQuery{}, err
		}
		s := *status
		query.status = &s
	}

	if table != nil {
		if err := table.Validate(); err != nil {
			return GetActiveOrdersQuery{}, err
		}
		tbl := *table
		query.table = &tbl
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or nil for any status.
func (q GetActiveOrdersQuery) Status() *order.Status {
	return q.status
}

// Table returns the table filter, or nil for any table.
func (q GetActiveOrdersQuery) Table() *kernel.TableNumber {
	return q.table
}
