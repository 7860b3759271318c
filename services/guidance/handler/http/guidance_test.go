package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/lastmile/internal/pkg/apperror"
	"github.com/piresc/lastmile/internal/pkg/models"
	"github.com/piresc/lastmile/services/guidance/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuidanceContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestWalkFromStopHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockGuidanceUC(ctrl)
	h := NewGuidanceHandler(uc)

	uc.EXPECT().WalkFromStop(gomock.Any(), models.WalkFromStopRequest{StopID: "S1", DestLat: -6.2, DestLng: 106.8}).
		Return(&models.WalkGuidance{OriginStopID: "S1", DistanceM: 100, Steps: []models.WalkStep{}}, nil)

	c, rec := newGuidanceContext(http.MethodPost, "/api/guidance/walk-from-stop", `{"stop_id":"S1","dest_lat":-6.2,"dest_lng":106.8}`)
	require.NoError(t, h.WalkFromStop(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data models.WalkGuidance `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "S1", resp.Data.OriginStopID)
}

func TestWalkFromStopHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"malformed body", `{`, nil, http.StatusBadRequest},
		{"missing stop", `{"dest_lat":1,"dest_lng":1}`, nil, http.StatusBadRequest},
		{"unknown stop", `{"stop_id":"X","dest_lat":1,"dest_lng":1}`, apperror.NotFound("stop X not found"), http.StatusNotFound},
		{"directions down", `{"stop_id":"S1","dest_lat":1,"dest_lng":1}`, apperror.Upstream(nil, "walking directions unavailable"), http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockGuidanceUC(ctrl)
			if tt.err != nil {
				uc.EXPECT().WalkFromStop(gomock.Any(), gomock.Any()).Return(nil, tt.err)
			}
			c, rec := newGuidanceContext(http.MethodPost, "/api/guidance/walk-from-stop", tt.body)
			require.NoError(t, NewGuidanceHandler(uc).WalkFromStop(c))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestListStopsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockGuidanceUC(ctrl)
	uc.EXPECT().ListStops(gomock.Any()).Return([]models.Stop{{ID: "S1", Name: "Central"}})

	c, rec := newGuidanceContext(http.MethodGet, "/api/stops", "")
	require.NoError(t, NewGuidanceHandler(uc).ListStops(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Central"`)
}
