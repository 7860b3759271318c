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
	"github.com/piresc/lastmile/internal/pkg/constants"
	"github.com/piresc/lastmile/internal/pkg/models"
	"github.com/piresc/lastmile/services/sessions/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "amy")
	c.SetParamNames("sessionID")
	c.SetParamValues("s1")
	return c, rec
}

func TestCreateSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockSessionUC(ctrl)
	h := NewSessionHandler(uc)

	session := &models.Session{ID: "s1", UserAID: "amy", UserBID: "bob", TokenA: "ta", TokenB: "tb"}
	uc.EXPECT().
		CreateSession(gomock.Any(), "amy", models.CreateSessionRequest{IntentAID: "ia", IntentBID: "ib"}).
		Return(models.NewSessionView(session, "amy"), nil)

	c, rec := newContext(http.MethodPost, "/api/sessions", `{"intent_a_id":"ia","intent_b_id":"ib"}`)
	require.NoError(t, h.CreateSession(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ta", body.Data["my_token"])
	assert.Equal(t, "a", body.Data["my_side"])
	assert.NotContains(t, rec.Body.String(), "tb")
}

func TestCreateSession_MissingIntent(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewSessionHandler(mocks.NewMockSessionUC(ctrl))

	c, rec := newContext(http.MethodPost, "/api/sessions", `{"intent_a_id":"ia"}`)
	require.NoError(t, h.CreateSession(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTransition_UsesCallerToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockSessionUC(ctrl)
	h := NewSessionHandler(uc)

	session := &models.Session{ID: "s1", UserAID: "amy", UserBID: "bob", TokenA: "ta", TokenB: "tb", State: models.SessionStateRequested}
	accepted := *session
	accepted.State = models.SessionStateAccepted

	uc.EXPECT().GetSessionForUser(gomock.Any(), "amy", "s1").Return(models.NewSessionView(session, "amy"), nil)
	uc.EXPECT().Transition(gomock.Any(), "s1", models.SessionStateAccepted, "ta").Return(&accepted, nil)

	c, rec := newContext(http.MethodPost, "/api/sessions/s1/accept", "")
	require.NoError(t, h.transitionTo(models.SessionStateAccepted)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"ACCEPTED"`)
}

func TestTransition_ExplicitTokenHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockSessionUC(ctrl)
	h := NewSessionHandler(uc)

	uc.EXPECT().Transition(gomock.Any(), "s1", models.SessionStateAborted, "shared").
		Return(nil, apperror.Conflict("transition ABORTED -> ABORTED not allowed"))

	c, rec := newContext(http.MethodPost, "/api/sessions/s1/abort", "")
	c.Request().Header.Set(constants.SessionTokenHeader, "shared")
	require.NoError(t, h.transitionTo(models.SessionStateAborted)(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestTransition_NonPartyWithoutToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockSessionUC(ctrl)
	h := NewSessionHandler(uc)

	uc.EXPECT().GetSessionForUser(gomock.Any(), "amy", "s1").Return(nil, apperror.Forbidden("not a party"))

	c, rec := newContext(http.MethodPost, "/api/sessions/s1/complete", "")
	require.NoError(t, h.transitionTo(models.SessionStateCompleted)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSOS(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockSessionUC(ctrl)
	h := NewSessionHandler(uc)

	session := &models.Session{ID: "s1", UserAID: "amy", UserBID: "bob", TokenA: "ta", TokenB: "tb"}
	uc.EXPECT().SOS(gomock.Any(), "s1", "tb").Return(session, nil)

	c, rec := newContext(http.MethodPost, "/api/sessions/s1/sos", "")
	c.Request().Header.Set(constants.SessionTokenHeader, "tb")
	require.NoError(t, h.SOS(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterRoutes_SOSSkipsMutatingMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockSessionUC(ctrl)
	h := NewSessionHandler(uc)

	session := &models.Session{ID: "s1", UserAID: "amy", UserBID: "bob", TokenA: "ta", TokenB: "tb", State: models.SessionStateActive}
	uc.EXPECT().SOS(gomock.Any(), "s1", "tb").Return(session, nil)

	exhausted := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
		}
	}

	e := echo.New()
	h.RegisterRoutes(e.Group("/api"), exhausted)

	req := httptest.NewRequest(http.MethodPost, "/api/sessions/s1/sos", nil)
	req.Header.Set(constants.SessionTokenHeader, "tb")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/sessions/s1/complete", nil)
	req.Header.Set(constants.SessionTokenHeader, "tb")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockSessionUC(ctrl)
	h := NewSessionHandler(uc)

	uc.EXPECT().RateSession(gomock.Any(), "s1", "amy", 9).Return(nil, apperror.Validation("score must be between 1 and 5"))

	c, rec := newContext(http.MethodPost, "/api/sessions/s1/rate", `{"score":9}`)
	require.NoError(t, h.RateSession(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetLocations(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockSessionUC(ctrl)
	h := NewSessionHandler(uc)

	uc.EXPECT().ReadLocationsForUser(gomock.Any(), "amy", "s1").
		Return(map[models.Side]models.SideLocation{models.SideB: {Lat: 1.5, Lng: 2.5}}, nil)

	c, rec := newContext(http.MethodGet, "/api/sessions/s1/locations", "")
	require.NoError(t, h.GetLocations(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data map[string]models.SideLocation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1.5, body.Data["b"].Lat)
}

func TestListMySessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockSessionUC(ctrl)
	h := NewSessionHandler(uc)

	uc.EXPECT().ListMySessions(gomock.Any(), "amy").Return([]*models.SessionView{}, nil)

	c, rec := newContext(http.MethodGet, "/api/sessions/me", "")
	require.NoError(t, h.ListMySessions(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
