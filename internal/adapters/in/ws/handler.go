// Package ws streams the change feed to connected displays over websockets.
// Each connection joins the feed with a scope; the first frame carries the
// scope's full snapshot and every later frame carries one change event, in
// commit order. A dropped or evicted connection reconnects and receives a
// fresh snapshot, which is the only resync mechanism.
package ws

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/kernel"
	"github.com/biruk-abayneh/Restaurant-app/internal/feed"
)

const writeWait = 10 * time.Second

// Handler upgrades HTTP requests into feed sessions.
type Handler struct {
	hub      *feed.Hub
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewHandler creates a websocket handler over the feed hub.
func NewHandler(hub *feed.Hub, logger *slog.Logger) *Handler {
	return &Handler{
		hub:    hub,
		logger: logger.With("component", "ws_handler"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Station displays are served from anywhere on the floor network.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// RegisterRoutes mounts the stream endpoint on the echo instance.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws/orders", h.StreamOrders)
}

// StreamOrders handles GET /ws/orders?scope=kitchen|table|server.
// Table scope needs a table=N parameter, server scope a server=NAME one.
func (h *Handler) StreamOrders(ctx echo.Context) error {
	scope, err := parseScope(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}

	conn, err := h.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		// Upgrade already wrote the handshake error response.
		return nil
	}
	defer conn.Close()

	session, err := h.hub.Subscribe(ctx.Request().Context(), scope)
	if err != nil {
		h.logger.Warn("feed subscribe failed", "error", err)
		return nil
	}
	defer h.hub.Unsubscribe(session.ID())

	h.logger.Info("display connected", "session_id", session.ID().String(), "scope", scope.String())

	// The read loop exists to detect the peer going away; inbound frames
	// carry no meaning on this endpoint.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, readErr := conn.ReadMessage(); readErr != nil {
				return
			}
		}
	}()

	for {
		select {
		case msg, ok := <-session.Messages():
			if !ok {
				// Evicted as a slow consumer; the closing handshake tells the
				// client to reconnect for a fresh snapshot.
				h.logger.Warn("session evicted", "session_id", session.ID().String())
				h.writeClose(conn, websocket.ClosePolicyViolation, "too slow, reconnect")
				return nil
			}

			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if writeErr := conn.WriteJSON(msg); writeErr != nil {
				h.logger.Info("display disconnected", "session_id", session.ID().String(), "error", writeErr)
				return nil
			}
		case <-closed:
			h.logger.Info("display disconnected", "session_id", session.ID().String())
			return nil
		}
	}
}

func (h *Handler) writeClose(conn *websocket.Conn, code int, reason string) {
	deadline := time.Now().Add(writeWait)
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason), deadline)
}

func parseScope(ctx echo.Context) (feed.Scope, error) {
	switch ctx.QueryParam("scope") {
	case "", "kitchen":
		return feed.KitchenScope(), nil

	case "table":
		var n int
		if err := echo.QueryParamsBinder(ctx).MustInt("table", &n).BindError(); err != nil {
			return feed.Scope{}, err
		}
		table, err := kernel.NewTableNumber(n)
		if err != nil {
			return feed.Scope{}, err
		}
		return feed.TableScope(table), nil

	case "server":
		name := ctx.QueryParam("server")
		if name == "" {
			return feed.Scope{}, echo.NewHTTPError(http.StatusBadRequest, "server parameter is required")
		}
		return feed.ServerScope(name), nil

	default:
		return feed.Scope{}, echo.NewHTTPError(http.StatusBadRequest, "unknown scope")
	}
}
