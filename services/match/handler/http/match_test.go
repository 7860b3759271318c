package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/lastmile/internal/pkg/apperror"
	"github.com/piresc/lastmile/internal/pkg/models"
	intentmocks "github.com/piresc/lastmile/services/intents/mocks"
	"github.com/piresc/lastmile/services/match/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMatchContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("intentID")
	c.SetParamValues("i1")
	c.Set("user_id", "u1")
	return c, rec
}

func TestGetMatches_RanksCandidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	matchUC := mocks.NewMockMatchUC(ctrl)
	intentUC := intentmocks.NewMockIntentUC(ctrl)
	h := NewMatchHandler(matchUC, intentUC)

	rating := 5.0
	intentUC.EXPECT().GetOwnedIntent(gomock.Any(), "u1", "i1").Return(&models.Intent{ID: "i1", UserID: "u1"}, nil)
	matchUC.EXPECT().FindMatches(gomock.Any(), "i1", 3).Return([]*models.MatchCandidate{
		{IntentID: "low", RouteOverlapScore: 40},
		{IntentID: "rated", RouteOverlapScore: 80, PastRatingAvg: &rating},
		{IntentID: "stop", RouteOverlapScore: 10, SameStop: true, ScoreFixed: true, BuddyScore: 50},
	}, nil)

	c, rec := newMatchContext("/api/intents/i1/matches?limit=3")
	require.NoError(t, h.GetMatches(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []models.MatchCandidate `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 3)

	assert.Equal(t, "rated", body.Data[0].IntentID)
	assert.Equal(t, 86.0, body.Data[0].BuddyScore)
	assert.Equal(t, "stop", body.Data[1].IntentID)
	assert.Equal(t, 50.0, body.Data[1].BuddyScore)
	assert.Equal(t, "low", body.Data[2].IntentID)
	assert.Equal(t, 28.0, body.Data[2].BuddyScore)
}

func TestGetMatches_TieBreaksOnOverlap(t *testing.T) {
	candidates := []*models.MatchCandidate{
		{IntentID: "a", RouteOverlapScore: 20, ScoreFixed: true, BuddyScore: 50},
		{IntentID: "b", RouteOverlapScore: 60, ScoreFixed: true, BuddyScore: 50},
	}
	rank(candidates)
	assert.Equal(t, "b", candidates[0].IntentID)
}

func TestGetMatches_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	matchUC := mocks.NewMockMatchUC(ctrl)
	intentUC := intentmocks.NewMockIntentUC(ctrl)
	h := NewMatchHandler(matchUC, intentUC)

	intentUC.EXPECT().GetOwnedIntent(gomock.Any(), "u1", "i1").Return(nil, apperror.Forbidden("not your intent"))

	c, rec := newMatchContext("/api/intents/i1/matches")
	require.NoError(t, h.GetMatches(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetMatches_BadLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewMatchHandler(mocks.NewMockMatchUC(ctrl), intentmocks.NewMockIntentUC(ctrl))

	for _, limit := range []string{"abc", "0", "-4"} {
		c, rec := newMatchContext("/api/intents/i1/matches?limit=" + limit)
		require.NoError(t, h.GetMatches(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, limit)
	}
}
