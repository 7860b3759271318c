package http

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/lastmile/internal/pkg/metrics"
	"github.com/piresc/lastmile/internal/pkg/middleware"
	"github.com/piresc/lastmile/internal/pkg/models"
	"github.com/piresc/lastmile/internal/utils"
	"github.com/piresc/lastmile/services/intents"
	"github.com/piresc/lastmile/services/match"
)

// MatchHandler handles HTTP requests for match operations
type MatchHandler struct {
	matchUC  match.MatchUC
	intentUC intents.IntentUC
}

// NewMatchHandler creates a new match HTTP handler
func NewMatchHandler(matchUC match.MatchUC, intentUC intents.IntentUC) *MatchHandler {
	return &MatchHandler{matchUC: matchUC, intentUC: intentUC}
}

// RegisterRoutes mounts the match routes on an authenticated group
func (h *MatchHandler) RegisterRoutes(api *echo.Group) {
	api.GET("/intents/:intentID/matches", h.GetMatches)
}

// GetMatches handles GET /intents/:intentID/matches
func (h *MatchHandler) GetMatches(c echo.Context) error {
	ctx := c.Request().Context()
	intentID := c.Param("intentID")

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return utils.BadRequestResponse(c, "limit must be a positive integer")
		}
		limit = n
	}

	if _, err := h.intentUC.GetOwnedIntent(ctx, middleware.GetUserID(c), intentID); err != nil {
		return utils.ErrorFromAppError(c, err)
	}

	candidates, err := h.matchUC.FindMatches(ctx, intentID, limit)
	if err != nil {
		return utils.ErrorFromAppError(c, err)
	}

	rank(candidates)
	metrics.MatchesServed.Inc()
	return utils.SuccessResponse(c, http.StatusOK, "", candidates)
}

// rank scores each card and orders by buddy score, then route overlap.
// Cards the matcher already scored keep their score.
func rank(candidates []*models.MatchCandidate) {
	for _, c := range candidates {
		if !c.ScoreFixed {
			c.BuddyScore = utils.BuddyScore(c.RouteOverlapScore, c.PastRatingAvg)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].BuddyScore != candidates[j].BuddyScore {
			return candidates[i].BuddyScore > candidates[j].BuddyScore
		}
		return candidates[i].RouteOverlapScore > candidates[j].RouteOverlapScore
	})
}
