package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/biruk-abayneh/Restaurant-app/internal/adapters/in/http"
	"github.com/biruk-abayneh/Restaurant-app/internal/adapters/out/memrepo"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/application/orderflow"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/application/usecases/commands"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/application/usecases/queries"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/kernel"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/order"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/ports"
	"github.com/biruk-abayneh/Restaurant-app/internal/feed"
	"github.com/biruk-abayneh/Restaurant-app/internal/pkg/errs"
)

type fixedCatalog struct {
	items map[string]ports.MenuItem
}

func (c *fixedCatalog) add(name string, price float64) kernel.UUID {
	id := kernel.NewUUID()
	c.items[id.String()] = ports.MenuItem{ID: id, Name: name, UnitPrice: price}
	return id
}

func (c *fixedCatalog) Resolve(_ context.Context, itemID kernel.UUID) (ports.MenuItem, error) {
	item, ok := c.items[itemID.String()]
	if !ok {
		return ports.MenuItem{}, errs.NewObjectNotFoundError("menuItem", itemID.String())
	}
	return item, nil
}

type uowFactory struct{ store *memrepo.Store }

func (f uowFactory) Create() commands.OrderUoW {
	return memrepo.NewUnitOfWorkFactory(f.store).Create()
}

type discardPublisher struct{}

func (discardPublisher) Publish(feed.Event) {}

type testAPI struct {
	e       *echo.Echo
	catalog *fixedCatalog
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	store := memrepo.NewStore()
	catalog := &fixedCatalog{items: make(map[string]ports.MenuItem)}
	factory := uowFactory{store: store}

	flow := orderflow.NewFlow(
		discardPublisher{},
		commands.NewSubmitOrderCommandHandler(factory, catalog),
		commands.NewAmendOrderCommandHandler(factory, catalog),
		commands.NewAdvanceOrderStatusCommandHandler(factory),
		commands.NewRemoveOrderCommandHandler(factory),
		slog.New(slog.DiscardHandler),
	)

	reader := memrepo.NewRepository(store)
	server := httpadapter.NewServer(
		flow,
		queries.NewGetActiveOrdersQueryHandler(reader),
		queries.NewGetOrderQueryHandler(reader),
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return &testAPI{e: e, catalog: catalog}
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func (a *testAPI) submit(t *testing.T, tableNum int, serverName string) order.Snapshot {
	t.Helper()
	itemID := a.catalog.add("Margherita", 90)
	rec := a.do(t, http.MethodPost, "/api/v1/orders", httpadapter.SubmitOrderRequest{
		TableNumber: tableNum,
		Items:       []httpadapter.ItemRequest{{ItemID: itemID.String(), Qty: 1}},
		ServerName:  serverName,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var snapshot order.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	return snapshot
}

func TestServer_SubmitOrder(t *testing.T) {
	api := newTestAPI(t)

	snapshot := api.submit(t, 7, "alice")
	assert.Equal(t, 7, snapshot.TableNumber)
	assert.Equal(t, "new", snapshot.Status)
	assert.Equal(t, "alice", snapshot.ServerName)
	assert.Equal(t, 1, snapshot.Version)
	assert.False(t, snapshot.Modified)
	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, "Margherita", snapshot.Items[0].Name)
	assert.InDelta(t, 90, snapshot.Items[0].UnitPrice, 0.001)
}

func TestServer_SubmitOrder_OccupiedTableAnswers200(t *testing.T) {
	api := newTestAPI(t)
	first := api.submit(t, 4, "alice")

	itemID := api.catalog.add("Pepperoni", 110)
	rec := api.do(t, http.MethodPost, "/api/v1/orders", httpadapter.SubmitOrderRequest{
		TableNumber: 4,
		Items:       []httpadapter.ItemRequest{{ItemID: itemID.String(), Qty: 2}},
		ServerName:  "bob",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var snapshot order.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	assert.Equal(t, first.ID, snapshot.ID)
	assert.Equal(t, 2, snapshot.Version)
}

func TestServer_SubmitOrder_BadRequests(t *testing.T) {
	api := newTestAPI(t)

	t.Run("no items", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/api/v1/orders", httpadapter.SubmitOrderRequest{
			TableNumber: 1, ServerName: "alice",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("table out of range", func(t *testing.T) {
		itemID := api.catalog.add("Cola", 25)
		rec := api.do(t, http.MethodPost, "/api/v1/orders", httpadapter.SubmitOrderRequest{
			TableNumber: 0,
			Items:       []httpadapter.ItemRequest{{ItemID: itemID.String(), Qty: 1}},
			ServerName:  "alice",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown menu item", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/api/v1/orders", httpadapter.SubmitOrderRequest{
			TableNumber: 2,
			Items:       []httpadapter.ItemRequest{{ItemID: kernel.NewUUID().String(), Qty: 1}},
			ServerName:  "alice",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_AdvanceOrderStatus(t *testing.T) {
	api := newTestAPI(t)
	snapshot := api.submit(t, 3, "alice")

	rec := api.do(t, http.MethodPost, "/api/v1/orders/"+snapshot.ID+"/status", httpadapter.AdvanceStatusRequest{
		Target: "preparing",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated order.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "preparing", updated.Status)
	assert.Equal(t, 2, updated.Version)

	// A second "start" is an invalid transition.
	rec = api.do(t, http.MethodPost, "/api/v1/orders/"+snapshot.ID+"/status", httpadapter.AdvanceStatusRequest{
		Target: "preparing",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestServer_AdvanceOrderStatus_StaleVersionConflicts(t *testing.T) {
	api := newTestAPI(t)
	snapshot := api.submit(t, 3, "alice")

	rec := api.do(t, http.MethodPost, "/api/v1/orders/"+snapshot.ID+"/status", httpadapter.AdvanceStatusRequest{
		Target: "preparing", ExpectedVersion: 1,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, http.MethodPost, "/api/v1/orders/"+snapshot.ID+"/status", httpadapter.AdvanceStatusRequest{
		Target: "ready", ExpectedVersion: 1,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestServer_AmendOrder(t *testing.T) {
	api := newTestAPI(t)
	snapshot := api.submit(t, 5, "alice")

	rec := api.do(t, http.MethodPost, "/api/v1/orders/"+snapshot.ID+"/status", httpadapter.AdvanceStatusRequest{
		Target: "preparing",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	itemID := api.catalog.add("Tiramisu", 55)
	rec = api.do(t, http.MethodPatch, "/api/v1/orders/"+snapshot.ID, httpadapter.AmendOrderRequest{
		Items: []httpadapter.ItemRequest{{ItemID: itemID.String(), Qty: 1}},
		Actor: "bob",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var amended order.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &amended))
	assert.Equal(t, "new", amended.Status)
	assert.True(t, amended.Modified)
	assert.Equal(t, "bob", amended.ModifiedBy)
}

func TestServer_AmendOrder_UnknownID(t *testing.T) {
	api := newTestAPI(t)
	itemID := api.catalog.add("Tiramisu", 55)

	rec := api.do(t, http.MethodPatch, "/api/v1/orders/"+kernel.NewUUID().String(), httpadapter.AmendOrderRequest{
		Items: []httpadapter.ItemRequest{{ItemID: itemID.String(), Qty: 1}},
		Actor: "bob",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(t, http.MethodPatch, "/api/v1/orders/not-a-uuid", httpadapter.AmendOrderRequest{
		Items: []httpadapter.ItemRequest{{ItemID: itemID.String(), Qty: 1}},
		Actor: "bob",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_GetActiveOrders(t *testing.T) {
	api := newTestAPI(t)
	first := api.submit(t, 1, "alice")
	second := api.submit(t, 2, "bob")

	rec := api.do(t, http.MethodGet, "/api/v1/orders/active", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var snapshots []order.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshots))
	require.Len(t, snapshots, 2)
	assert.Equal(t, first.ID, snapshots[0].ID)
	assert.Equal(t, second.ID, snapshots[1].ID)

	rec = api.do(t, http.MethodGet, fmt.Sprintf("/api/v1/orders/active?table=%d", 2), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshots))
	require.Len(t, snapshots, 1)
	assert.Equal(t, second.ID, snapshots[0].ID)

	rec = api.do(t, http.MethodGet, "/api/v1/orders/active?status=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_GetOrder(t *testing.T) {
	api := newTestAPI(t)
	snapshot := api.submit(t, 6, "alice")

	rec := api.do(t, http.MethodGet, "/api/v1/orders/"+snapshot.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got order.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, snapshot.ID, got.ID)

	rec = api.do(t, http.MethodGet, "/api/v1/orders/"+kernel.NewUUID().String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_RemoveOrder(t *testing.T) {
	api := newTestAPI(t)
	snapshot := api.submit(t, 8, "alice")

	rec := api.do(t, http.MethodDelete, "/api/v1/orders/"+snapshot.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(t, http.MethodDelete, "/api/v1/orders/"+snapshot.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_Health(t *testing.T) {
	api := newTestAPI(t)
	rec := api.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
