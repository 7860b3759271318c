package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/lastmile/internal/pkg/jwt"
	"github.com/piresc/lastmile/internal/pkg/models"
	wspkg "github.com/piresc/lastmile/internal/pkg/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userID = "4a3c2b1d-0000-4000-8000-000000000001"

func setup(t *testing.T) (*httptest.Server, *wspkg.Hub, string) {
	cfg := models.JWTConfig{Secret: "secret", Expiration: 5}
	hub := wspkg.NewHub(8)
	h := NewUpdatesHandler(wspkg.NewManager(cfg), hub)

	e := echo.New()
	e.GET("/ws/updates", h.HandleUpdates)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	token, _, err := jwtpkg.GenerateToken(userID, cfg)
	require.NoError(t, err)
	return srv, hub, token
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/updates"
}

func TestHandleUpdates_ReceivesNotifications(t *testing.T) {
	srv, hub, token := setup(t)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv)+"?token="+token, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Count(userID) == 1 }, time.Second, 5*time.Millisecond)

	hub.Notify([]string{userID}, models.UpdateEvent{Type: models.UpdateTypeSessions})

	var ev models.UpdateEvent
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, models.UpdateTypeSessions, ev.Type)
}

func TestHandleUpdates_CloseUnsubscribes(t *testing.T) {
	srv, hub, token := setup(t)

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)
	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv), header)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return hub.Count(userID) == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.Count(userID) == 0 }, 2*time.Second, 5*time.Millisecond)
}

func TestHandleUpdates_RejectsMissingToken(t *testing.T) {
	srv, _, _ := setup(t)

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
