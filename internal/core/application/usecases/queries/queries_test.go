package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/biruk-abayneh/Restaurant-app/internal/core/application/usecases/queries"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/kernel"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/order"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/ports"
	"github.com/biruk-abayneh/Restaurant-app/internal/pkg/errs"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderReader) GetActive(ctx context.Context, filter ports.ActiveFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func newOrderForTest(t *testing.T, tableNum int) *order.Order {
	t.Helper()
	table, err := kernel.NewTableNumber(tableNum)
	require.NoError(t, err)
	line, err := order.NewLine(kernel.NewUUID(), "Lemonade", 30, 1, nil, "")
	require.NoError(t, err)
	aggregate, err := order.NewOrder(kernel.NewUUID(), table, []order.Line{line}, "", "alice", time.Now().UTC())
	require.NoError(t, err)
	return aggregate
}

func TestGetActiveOrdersQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	first := newOrderForTest(t, 1)
	second := newOrderForTest(t, 2)

	query, err := queries.NewGetActiveOrdersQuery(nil, nil)
	require.NoError(t, err)

	reader := new(MockOrderReader)
	reader.On("GetActive", ctx, ports.ActiveFilter{}).
		Return([]*order.Order{first, second}, nil).Once()

	h := queries.NewGetActiveOrdersQueryHandler(reader)
	snapshots, err := h.Handle(ctx, query)
	require.NoError(t, err)

	require.Len(t, snapshots, 2)
	assert.Equal(t, first.ID().String(), snapshots[0].ID)
	assert.Equal(t, second.ID().String(), snapshots[1].ID)
	reader.AssertExpectations(t)
}

func TestGetActiveOrdersQueryHandler_Handle_WithFilters(t *testing.T) {
	ctx := t.Context()
	status := order.Preparing
	table, err := kernel.NewTableNumber(4)
	require.NoError(t, err)

	query, err := queries.NewGetActiveOrdersQuery(&status, &table)
	require.NoError(t, err)

	reader := new(MockOrderReader)
	reader.On("GetActive", ctx, mock.MatchedBy(func(filter ports.ActiveFilter) bool {
		return filter.Status != nil && *filter.Status == order.Preparing &&
			filter.Table != nil && filter.Table.IsEqual(table)
	})).Return([]*order.Order{}, nil).Once()

	h := queries.NewGetActiveOrdersQueryHandler(reader)
	snapshots, err := h.Handle(ctx, query)
	require.NoError(t, err)
	assert.Empty(t, snapshots)
	reader.AssertExpectations(t)
}

func TestGetActiveOrdersQuery_Invalid(t *testing.T) {
	bad := order.Unknown
	_, err := queries.NewGetActiveOrdersQuery(&bad, nil)
	require.Error(t, err)

	var zero queries.GetActiveOrdersQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetActiveOrdersQueryIsNotConstructed)
}

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	aggregate := newOrderForTest(t, 3)

	query, err := queries.NewGetOrderQuery(aggregate.ID())
	require.NoError(t, err)

	reader := new(MockOrderReader)
	reader.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once()

	h := queries.NewGetOrderQueryHandler(reader)
	snapshot, err := h.Handle(ctx, query)
	require.NoError(t, err)

	assert.Equal(t, aggregate.ID().String(), snapshot.ID)
	assert.Equal(t, "new", snapshot.Status)
	reader.AssertExpectations(t)
}

func TestGetOrderQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	query, err := queries.NewGetOrderQuery(orderID)
	require.NoError(t, err)

	reader := new(MockOrderReader)
	reader.On("Get", ctx, orderID).
		Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once()

	h := queries.NewGetOrderQueryHandler(reader)
	_, err = h.Handle(ctx, query)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetOrderQuery_Invalid(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{})
	require.Error(t, err)

	var zero queries.GetOrderQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
}
