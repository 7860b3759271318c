package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/lastmile/internal/pkg/apperror"
	"github.com/piresc/lastmile/internal/pkg/constants"
	"github.com/piresc/lastmile/internal/pkg/logger"
	"github.com/piresc/lastmile/internal/pkg/models"
	wspkg "github.com/piresc/lastmile/internal/pkg/websocket"
	"github.com/piresc/lastmile/services/sessions"
)

const maxLocationFrame = 1024

// LocationHandler serves the per-session live location channel
type LocationHandler struct {
	manager   *wspkg.Manager
	sessionUC sessions.SessionUC
}

// NewLocationHandler creates the location channel handler
func NewLocationHandler(manager *wspkg.Manager, sessionUC sessions.SessionUC) *LocationHandler {
	return &LocationHandler{manager: manager, sessionUC: sessionUC}
}

// closeCode maps an authorisation failure to the channel close code
func closeCode(err error) int {
	switch {
	case errors.Is(err, apperror.ErrForbidden):
		return constants.CloseBadToken
	case errors.Is(err, apperror.ErrNotFound), errors.Is(err, apperror.ErrConflict):
		return constants.CloseNotActive
	default:
		return websocket.CloseInternalServerErr
	}
}

// HandleLocation accepts location frames from one side of an ACTIVE
// session. The side token is checked at connect and again on every frame.
func (h *LocationHandler) HandleLocation(c echo.Context) error {
	sessionID := c.Param("sessionID")
	token := c.QueryParam("token")

	conn, err := h.manager.Upgrade(c)
	if err != nil {
		logger.Warn("Failed to upgrade location channel",
			logger.String("session_id", sessionID),
			logger.Err(err))
		return nil
	}

	if token == "" {
		wspkg.CloseWithCode(conn, constants.CloseMissingToken, "missing token")
		return nil
	}

	ctx := context.Background()
	side, err := h.sessionUC.AuthorizeChannel(ctx, sessionID, token)
	if err != nil {
		wspkg.CloseWithCode(conn, closeCode(err), apperror.PublicMessage(err))
		return nil
	}

	logger.Info("Location channel connected",
		logger.String("session_id", sessionID),
		logger.String("side", string(side)))
	defer logger.Info("Location channel closed",
		logger.String("session_id", sessionID),
		logger.String("side", string(side)))

	conn.SetReadLimit(maxLocationFrame)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			_ = conn.Close()
			return nil
		}

		var report models.LocationReport
		if err := json.Unmarshal(data, &report); err != nil || report.Lat == nil || report.Lng == nil {
			logger.Debug("Ignoring malformed location frame", logger.String("session_id", sessionID))
			continue
		}

		err = h.sessionUC.ReportLocation(ctx, sessionID, token, *report.Lat, *report.Lng)
		switch {
		case err == nil:
		case errors.Is(err, apperror.ErrValidation):
			_ = wspkg.SendError(conn, constants.ErrorInvalidLocation, apperror.PublicMessage(err))
		case errors.Is(err, apperror.ErrUpstreamUnavailable):
			_ = wspkg.SendError(conn, constants.ErrorRejected, "location not stored")
		default:
			wspkg.CloseWithCode(conn, closeCode(err), apperror.PublicMessage(err))
			return nil
		}
	}
}
