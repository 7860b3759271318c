package websocket

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/lastmile/internal/pkg/jwt"
	"github.com/piresc/lastmile/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Authenticate(t *testing.T) {
	cfg := models.JWTConfig{Secret: "test-secret", Expiration: 10, Issuer: "test"}
	m := NewManager(cfg)
	token, _, err := jwtpkg.GenerateToken("6f1c1d7e-2d4b-4b7a-9e0e-0a4f2f3b5c6d", cfg)
	require.NoError(t, err)

	tests := []struct {
		name    string
		target  string
		header  string
		wantErr bool
	}{
		{name: "query token", target: "/ws/updates?token=" + token},
		{name: "bearer header", target: "/ws/updates", header: "Bearer " + token},
		{name: "missing token", target: "/ws/updates", wantErr: true},
		{name: "malformed header", target: "/ws/updates", header: "Token " + token, wantErr: true},
		{name: "bad signature", target: "/ws/updates?token=" + token + "x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			client, err := m.Authenticate(c)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "6f1c1d7e-2d4b-4b7a-9e0e-0a4f2f3b5c6d", client.UserID)
		})
	}
}
