// Package memrepo provides an in-memory implementation of the order store.
// It is the authoritative default backend: a restaurant floor restarts with
// an empty board, and clients resync through the change feed anyway.
//
// The store hands out deep copies on every read and write, so callers can
// never mutate committed state without going back through Update. Writes use
// the same optimistic version check as the durable backend.
package memrepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/kernel"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/order"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/ports"
	"github.com/biruk-abayneh/Restaurant-app/internal/pkg/errs"
)

// Store is a mutex-guarded map of committed order records keyed by id.
// A single Store is shared by every unit of work created from its factory.
type Store struct {
	mu      sync.RWMutex
	records map[string]*order.Order
}

// NewStore creates an empty in-memory order store.
func NewStore() *Store {
	return &Store{
		records: make(map[string]*order.Order),
	}
}

// clone deep-copies an aggregate through its restore path so stored state
// and returned state never alias.
func clone(aggregate *order.Order) (*order.Order, error) {
	return order.RestoreOrder(
		aggregate.ID(),
		aggregate.TableNumber(),
		aggregate.Lines(),
		aggregate.Note(),
		aggregate.Status(),
		aggregate.ServerName(),
		aggregate.CreatedAt(),
		aggregate.UpdatedAt(),
		aggregate.Modified(),
		aggregate.ModifiedBy(),
		aggregate.Acknowledged(),
		aggregate.Version(),
	)
}

// Repository implements ports.OrderRepository over a Store.
type Repository struct {
	store *Store
}

// NewRepository creates a repository view over the shared store.
func NewRepository(store *Store) *Repository {
	return &Repository{store: store}
}

// Add persists a new order. Fails if the id is taken or the order's table
// already has an active order.
func (r *Repository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	id := aggregate.ID().String()
	if _, exists := r.store.records[id]; exists {
		return errs.NewValueIsInvalidError("order.id")
	}

	if aggregate.IsActive() {
		for _, existing := range r.store.records {
			if existing.IsActive() && existing.TableNumber().IsEqual(aggregate.TableNumber()) {
				return errs.NewValueIsInvalidError("order.tableNumber")
			}
		}
	}

	record, err := clone(aggregate)
	if err != nil {
		return err
	}

	r.store.records[id] = record
	return nil
}

// Update persists a mutated order, matching the stored row on version-1.
func (r *Repository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	id := aggregate.ID().String()
	existing, ok := r.store.records[id]
	if !ok {
		return errs.NewObjectNotFoundError("order", id)
	}

	if existing.Version() != aggregate.Version()-1 {
		return errs.NewConcurrencyConflictError("order", id, aggregate.Version()-1)
	}

	record, err := clone(aggregate)
	if err != nil {
		return err
	}

	r.store.records[id] = record
	return nil
}

// Get retrieves an order by id.
func (r *Repository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	record, ok := r.store.records[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return clone(record)
}

// GetActive retrieves active orders matching the filter, oldest first.
func (r *Repository) GetActive(_ context.Context, filter ports.ActiveFilter) ([]*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := make([]*order.Order, 0)
	for _, record := range r.store.records {
		if !record.IsActive() {
			continue
		}
		if filter.Status != nil && record.Status() != *filter.Status {
			continue
		}
		if filter.Table != nil && !record.TableNumber().IsEqual(*filter.Table) {
			continue
		}

		copied, err := clone(record)
		if err != nil {
			return nil, err
		}
		matched = append(matched, copied)
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt().Equal(matched[j].CreatedAt()) {
			return matched[i].ID().String() < matched[j].ID().String()
		}
		return matched[i].CreatedAt().Before(matched[j].CreatedAt())
	})

	return matched, nil
}

// GetActiveByTable retrieves the single active order for a table.
func (r *Repository) GetActiveByTable(_ context.Context, table kernel.TableNumber) (*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, record := range r.store.records {
		if record.IsActive() && record.TableNumber().IsEqual(table) {
			return clone(record)
		}
	}

	return nil, errs.NewObjectNotFoundError("table", table.String())
}

// GetReadyBefore retrieves ready orders last touched before the cutoff,
// oldest first.
func (r *Repository) GetReadyBefore(_ context.Context, cutoff time.Time) ([]*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := make([]*order.Order, 0)
	for _, record := range r.store.records {
		if record.Status() != order.Ready || !record.UpdatedAt().Before(cutoff) {
			continue
		}

		copied, err := clone(record)
		if err != nil {
			return nil, err
		}
		matched = append(matched, copied)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].UpdatedAt().Before(matched[j].UpdatedAt())
	})

	return matched, nil
}

// Remove deletes an order record.
func (r *Repository) Remove(_ context.Context, id kernel.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := id.String()
	if _, ok := r.store.records[key]; !ok {
		return errs.NewObjectNotFoundError("order", key)
	}

	delete(r.store.records, key)
	return nil
}
