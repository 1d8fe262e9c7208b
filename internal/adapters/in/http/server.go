// Package http is the REST adapter over the order subsystem's command and
// query surface. It translates request bodies into validated commands, runs
// them through the serialized write path, and renders canonical snapshots
// back; no domain decision lives here.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/biruk-abayneh/Restaurant-app/internal/core/application/orderflow"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/application/usecases/commands"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/application/usecases/queries"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/kernel"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/order"
	"github.com/biruk-abayneh/Restaurant-app/internal/pkg/errs"
)

// Server handles HTTP requests for the order lifecycle.
// Mutations go through the Flow; reads go straight to the query handlers.
type Server struct {
	flow *orderflow.Flow

	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
	getOrderHandler        queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required dispatch path and
// query handlers.
func NewServer(
	flow *orderflow.Flow,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		flow:                   flow,
		getActiveOrdersHandler: getActiveOrdersHandler,
		getOrderHandler:        getOrderHandler,
	}
}

// RegisterRoutes mounts the order API on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.SubmitOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id", s.AmendOrder)
	api.POST("/orders/:id/status", s.AdvanceOrderStatus)
	api.DELETE("/orders/:id", s.RemoveOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// SubmitOrder handles POST /api/v1/orders. Submitting against a table with
// an active order folds the ticket into it and answers 200 instead of 201.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var req SubmitOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	table, err := kernel.NewTableNumber(req.TableNumber)
	if err != nil {
		return respondError(ctx, err)
	}

	items, err := toItemInputs(req.Items)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSubmitOrderCommand(table, items, req.Note, req.ServerName)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.flow.Submit(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	code := http.StatusCreated
	if result.Amended {
		code = http.StatusOK
	}
	return ctx.JSON(code, result.Order)
}

// AmendOrder handles PATCH /api/v1/orders/:id.
func (s *Server) AmendOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req AmendOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	items, err := toItemInputs(req.Items)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAmendOrderCommand(orderID, items, req.Note, req.Actor, req.ExpectedVersion)
	if err != nil {
		return respondError(ctx, err)
	}

	snapshot, err := s.flow.Amend(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshot)
}

// AdvanceOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) AdvanceOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	var req AdvanceStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	target, err := order.ParseStatus(req.Target)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, target, req.ExpectedVersion)
	if err != nil {
		return respondError(ctx, err)
	}

	snapshot, err := s.flow.Advance(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshot)
}

// RemoveOrder handles DELETE /api/v1/orders/:id.
func (s *Server) RemoveOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	cmd, err := commands.NewRemoveOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if _, err = s.flow.Remove(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveOrders handles GET /api/v1/orders/active with optional status and
// table query parameters.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.ParseStatus(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		statusFilter = &status
	}

	var tableFilter *kernel.TableNumber
	if raw := ctx.QueryParam("table"); raw != "" {
		var n int
		if err := echo.QueryParamsBinder(ctx).Int("table", &n).BindError(); err != nil {
			return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("table", err))
		}
		table, err := kernel.NewTableNumber(n)
		if err != nil {
			return respondError(ctx, err)
		}
		tableFilter = &table
	}

	query, err := queries.NewGetActiveOrdersQuery(statusFilter, tableFilter)
	if err != nil {
		return respondError(ctx, err)
	}

	snapshots, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshots)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("id", err))
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	snapshot, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshot)
}

func toItemInputs(items []ItemRequest) ([]commands.ItemInput, error) {
	inputs := make([]commands.ItemInput, 0, len(items))
	for _, item := range items {
		itemID, err := kernel.UUIDFromString(item.ItemID)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("items.itemId", err)
		}
		inputs = append(inputs, commands.ItemInput{
			ItemID:    itemID,
			Qty:       item.Qty,
			Modifiers: item.Modifiers,
			Note:      item.Note,
		})
	}
	return inputs, nil
}
