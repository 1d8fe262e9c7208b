package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/biruk-abayneh/Restaurant-app/internal/core/application/usecases/commands"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/kernel"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/order"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetActive(ctx context.Context, filter ports.ActiveFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetActiveByTable(ctx context.Context, table kernel.TableNumber) (*order.Order, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetReadyBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockMenuCatalog struct{ mock.Mock }

func (m *MockMenuCatalog) Resolve(ctx context.Context, itemID kernel.UUID) (ports.MenuItem, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(ports.MenuItem), args.Error(1)
}

func mustTable(t *testing.T, n int) kernel.TableNumber {
	t.Helper()
	table, err := kernel.NewTableNumber(n)
	require.NoError(t, err)
	return table
}

func storedOrder(t *testing.T, table kernel.TableNumber, serverName string) *order.Order {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), "Margherita", 90, 1, nil, "")
	require.NoError(t, err)
	aggregate, err := order.NewOrder(kernel.NewUUID(), table, []order.Line{line}, "", serverName, time.Now().UTC())
	require.NoError(t, err)
	return aggregate
}

// menuEntry returns a catalog item plus the input referencing it.
func menuEntry(name string, price float64, qty int) (ports.MenuItem, commands.ItemInput) {
	id := kernel.NewUUID()
	return ports.MenuItem{ID: id, Name: name, UnitPrice: price},
		commands.ItemInput{ItemID: id, Qty: qty}
}
