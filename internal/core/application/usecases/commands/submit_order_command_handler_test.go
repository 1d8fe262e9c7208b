package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/biruk-abayneh/Restaurant-app/internal/core/application/usecases/commands"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/order"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/ports"
	"github.com/biruk-abayneh/Restaurant-app/internal/pkg/errs"
)

func TestSubmitOrderCommandHandler_Handle_FreeTable(t *testing.T) {
	ctx := t.Context()
	table := mustTable(t, 7)
	menuItem, input := menuEntry("Margherita", 90, 2)

	cmd, err := commands.NewSubmitOrderCommand(table, []commands.ItemInput{input}, "no onions", "alice")
	require.NoError(t, err)

	catalog := new(MockMenuCatalog)
	catalog.On("Resolve", ctx, menuItem.ID).Return(menuItem, nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetActiveByTable", ctx, table).
			Return(nil, errs.NewObjectNotFoundError("table", table.String())).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitOrderCommandHandler(factory, catalog)
	outcome, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.NotNil(t, outcome.Order)
	assert.False(t, outcome.Amended)
	assert.Equal(t, order.New, outcome.Order.Status())
	assert.Equal(t, "alice", outcome.Order.ServerName())
	assert.Equal(t, 1, outcome.Order.Version())
	require.Len(t, outcome.Order.Lines(), 1)
	assert.Equal(t, "Margherita", outcome.Order.Lines()[0].Name())
	assert.InDelta(t, 180, outcome.Order.Total(), 0.001)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	catalog.AssertExpectations(t)
}

func TestSubmitOrderCommandHandler_Handle_OccupiedTableAmends(t *testing.T) {
	ctx := t.Context()
	table := mustTable(t, 7)
	existing := storedOrder(t, table, "alice")
	require.NoError(t, existing.Start(existing.CreatedAt()))

	menuItem, input := menuEntry("Pepperoni", 110, 1)
	cmd, err := commands.NewSubmitOrderCommand(table, []commands.ItemInput{input}, "", "bob")
	require.NoError(t, err)

	catalog := new(MockMenuCatalog)
	catalog.On("Resolve", ctx, menuItem.ID).Return(menuItem, nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetActiveByTable", ctx, table).Return(existing, nil).Once(),
		repo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitOrderCommandHandler(factory, catalog)
	outcome, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.True(t, outcome.Amended)
	assert.Same(t, existing, outcome.Order)
	// The kitchen had started the order, so the fold-in reopens and flags it.
	assert.Equal(t, order.New, outcome.Order.Status())
	assert.True(t, outcome.Order.Modified())
	assert.Equal(t, "bob", outcome.Order.ModifiedBy())
	require.Len(t, outcome.Order.Lines(), 1)
	assert.Equal(t, "Pepperoni", outcome.Order.Lines()[0].Name())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSubmitOrderCommandHandler_Handle_UnknownMenuItem(t *testing.T) {
	ctx := t.Context()
	table := mustTable(t, 7)
	_, input := menuEntry("Margherita", 90, 1)

	cmd, err := commands.NewSubmitOrderCommand(table, []commands.ItemInput{input}, "", "alice")
	require.NoError(t, err)

	catalog := new(MockMenuCatalog)
	catalog.On("Resolve", ctx, input.ItemID).
		Return(ports.MenuItem{}, errs.NewObjectNotFoundError("menuItem", input.ItemID.String())).Once()

	factory := new(MockOrderUoWFactory)
	h := commands.NewSubmitOrderCommandHandler(factory, catalog)

	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	factory.AssertNotCalled(t, "Create")
}

func TestSubmitOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewSubmitOrderCommandHandler(new(MockOrderUoWFactory), new(MockMenuCatalog))
	_, err := h.Handle(t.Context(), commands.SubmitOrderCommand{})
	require.ErrorIs(t, err, commands.ErrSubmitOrderCommandIsNotConstructed)
}

func TestSubmitOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	table := mustTable(t, 7)
	menuItem, input := menuEntry("Margherita", 90, 1)

	cmd, err := commands.NewSubmitOrderCommand(table, []commands.ItemInput{input}, "", "alice")
	require.NoError(t, err)

	catalog := new(MockMenuCatalog)
	catalog.On("Resolve", ctx, menuItem.ID).Return(menuItem, nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetActiveByTable", ctx, table).
			Return(nil, errs.NewObjectNotFoundError("table", table.String())).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitOrderCommandHandler(factory, catalog)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", ctx)
}
