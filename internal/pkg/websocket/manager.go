package websocket

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/lastmile/internal/pkg/jwt"
	"github.com/piresc/lastmile/internal/pkg/logger"
	"github.com/piresc/lastmile/internal/pkg/models"
)

// Manager authenticates and upgrades websocket connections
type Manager struct {
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		cfg: jwtConfig,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Authenticate resolves the caller from a bearer JWT carried either in the
// token query parameter or in the Authorization header.
func (m *Manager) Authenticate(c echo.Context) (*models.WebSocketClient, error) {
	tokenString := c.QueryParam("token")
	if tokenString == "" {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "token is required")
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}
		tokenString = parts[1]
	}

	claims, err := jwtpkg.ValidateToken(tokenString, m.cfg.Secret)
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return &models.WebSocketClient{UserID: claims.UserID}, nil
}

// Upgrade switches the request to the websocket protocol
func (m *Manager) Upgrade(c echo.Context) (*websocket.Conn, error) {
	return m.upgrader.Upgrade(c.Response(), c.Request(), nil)
}

// CloseWithCode sends a close frame carrying an application close code and
// closes the connection.
func CloseWithCode(conn *websocket.Conn, code int, reason string) {
	msg := websocket.FormatCloseMessage(code, reason)
	if err := conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second)); err != nil {
		logger.Debug("Failed to write close frame", logger.Int("code", code), logger.Err(err))
	}
	_ = conn.Close()
}

// SendError writes an error frame to the peer
func SendError(conn *websocket.Conn, code, message string) error {
	return conn.WriteJSON(models.WSErrorMessage{Code: code, Message: message})
}
