package websocket

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/lastmile/internal/pkg/logger"
	wspkg "github.com/piresc/lastmile/internal/pkg/websocket"
)

const maxInboundFrame = 512

// UpdatesHandler serves the per-user change notification channel
type UpdatesHandler struct {
	manager *wspkg.Manager
	hub     *wspkg.Hub
}

// NewUpdatesHandler creates the updates channel handler
func NewUpdatesHandler(manager *wspkg.Manager, hub *wspkg.Hub) *UpdatesHandler {
	return &UpdatesHandler{
		manager: manager,
		hub:     hub,
	}
}

// HandleUpdates authenticates the caller, registers the connection in the hub
// and keeps it open until the peer goes away. Inbound frames are read only
// to detect disconnects.
func (h *UpdatesHandler) HandleUpdates(c echo.Context) error {
	client, err := h.manager.Authenticate(c)
	if err != nil {
		return err
	}

	conn, err := h.manager.Upgrade(c)
	if err != nil {
		logger.Warn("Failed to upgrade updates channel",
			logger.String("user_id", client.UserID),
			logger.Err(err))
		return nil
	}

	handle := h.hub.Subscribe(client.UserID, conn)
	logger.Info("Updates channel connected", logger.String("user_id", client.UserID))

	defer func() {
		h.hub.Unsubscribe(handle)
		_ = conn.Close()
		logger.Info("Updates channel closed", logger.String("user_id", client.UserID))
	}()

	conn.SetReadLimit(maxInboundFrame)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return nil
		}
	}
}
