package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"tienda/internal/delivery/http/response"
	"tienda/internal/infra/events"

	"github.com/labstack/echo/v4"
)

// EventHandler streams domain events to connected clients over SSE.
type EventHandler struct {
	hub    *events.Hub
	logger *slog.Logger
}

// NewEventHandler is the constructor for EventHandler, injected by Fx.
// The hub is nil when the publisher runs in a non-local mode; the stream
// endpoint then reports itself unavailable.
func NewEventHandler(hub *events.Hub, logger *slog.Logger) *EventHandler {
	return &EventHandler{hub: hub, logger: logger}
}

// Stream subscribes the client to the event hub and forwards events as
// server-sent events until the client disconnects.
func (h *EventHandler) Stream(c echo.Context) error {
	if h.hub == nil {
		return response.Error(c, http.StatusServiceUnavailable, "EVENTS_UNAVAILABLE",
			"Event streaming is not enabled on this node", "")
	}

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set(echo.HeaderConnection, "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	id, ch := h.hub.Subscribe()
	defer h.hub.Unsubscribe(id)

	h.logger.Debug("SSE client connected", slog.Int64("subscriberID", id))

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			h.logger.Debug("SSE client disconnected", slog.Int64("subscriberID", id))

			return nil
		case event, ok := <-ch:
			if !ok {
				return nil
			}

			data, err := json.Marshal(event.Payload)
			if err != nil {
				h.logger.Warn("Failed to marshal event payload", slog.String("event", event.Name), slog.Any("error", err))

				continue
			}

			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Name, data); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}
