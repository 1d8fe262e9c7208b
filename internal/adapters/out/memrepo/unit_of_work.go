package memrepo

import (
	"context"

	"github.com/biruk-abayneh/Restaurant-app/internal/core/ports"
)

// UnitOfWorkFactory creates in-memory unit of work instances sharing one store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory bound to the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork instance.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork satisfies the transactional contract over the in-memory store.
// Begin, Commit and Rollback are pass-throughs: every command performs
// exactly one repository write as its final step, and the repository applies
// that write atomically under the store lock, so there is never a partial
// state to roll back.
type UnitOfWork struct {
	store *Store
}

// Begin starts the logical transaction.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	return nil
}

// Commit finalizes the logical transaction.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	return nil
}

// Rollback abandons the logical transaction.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	return nil
}

// OrderRepository returns a repository view over the shared store.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return NewRepository(uow.store)
}
