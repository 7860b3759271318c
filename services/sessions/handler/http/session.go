package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/lastmile/internal/pkg/constants"
	"github.com/piresc/lastmile/internal/pkg/middleware"
	"github.com/piresc/lastmile/internal/pkg/models"
	"github.com/piresc/lastmile/internal/utils"
	"github.com/piresc/lastmile/services/sessions"
)

// SessionHandler handles HTTP requests for session operations
type SessionHandler struct {
	sessionUC sessions.SessionUC
}

// NewSessionHandler creates a new session HTTP handler
func NewSessionHandler(sessionUC sessions.SessionUC) *SessionHandler {
	return &SessionHandler{sessionUC: sessionUC}
}

// RegisterRoutes mounts the session routes on an authenticated group.
// SOS never passes through the mutating middleware.
func (h *SessionHandler) RegisterRoutes(api *echo.Group, mutating ...echo.MiddlewareFunc) {
	g := api.Group("/sessions")
	g.POST("", h.CreateSession, mutating...)
	g.GET("/me", h.ListMySessions)
	g.GET("/:sessionID", h.GetSession)
	g.POST("/:sessionID/accept", h.transitionTo(models.SessionStateAccepted), mutating...)
	g.POST("/:sessionID/activate", h.transitionTo(models.SessionStateActive), mutating...)
	g.POST("/:sessionID/complete", h.transitionTo(models.SessionStateCompleted), mutating...)
	g.POST("/:sessionID/abort", h.transitionTo(models.SessionStateAborted), mutating...)
	g.POST("/:sessionID/sos", h.SOS)
	g.POST("/:sessionID/rate", h.RateSession, mutating...)
	g.GET("/:sessionID/locations", h.GetLocations)
}

// CreateSession handles POST /sessions
func (h *SessionHandler) CreateSession(c echo.Context) error {
	var req models.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if req.IntentAID == "" || req.IntentBID == "" {
		return utils.BadRequestResponse(c, "intent_a_id and intent_b_id are required")
	}

	view, err := h.sessionUC.CreateSession(c.Request().Context(), middleware.GetUserID(c), req)
	if err != nil {
		return utils.ErrorFromAppError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Session created", view)
}

// ListMySessions handles GET /sessions/me
func (h *SessionHandler) ListMySessions(c echo.Context) error {
	list, err := h.sessionUC.ListMySessions(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return utils.ErrorFromAppError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// GetSession handles GET /sessions/:sessionID
func (h *SessionHandler) GetSession(c echo.Context) error {
	view, err := h.sessionUC.GetSessionForUser(c.Request().Context(), middleware.GetUserID(c), c.Param("sessionID"))
	if err != nil {
		return utils.ErrorFromAppError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", view)
}

func (h *SessionHandler) transitionTo(to models.SessionState) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		sessionID := c.Param("sessionID")
		middleware.SetSessionID(c, sessionID)

		token, err := h.resolveToken(c, sessionID)
		if err != nil {
			return utils.ErrorFromAppError(c, err)
		}

		session, err := h.sessionUC.Transition(ctx, sessionID, to, token)
		if err != nil {
			return utils.ErrorFromAppError(c, err)
		}
		return utils.SuccessResponse(c, http.StatusOK, "Session "+string(session.State), h.viewFor(c, session))
	}
}

// SOS handles POST /sessions/:sessionID/sos
func (h *SessionHandler) SOS(c echo.Context) error {
	sessionID := c.Param("sessionID")
	middleware.SetSessionID(c, sessionID)

	token, err := h.resolveToken(c, sessionID)
	if err != nil {
		return utils.ErrorFromAppError(c, err)
	}

	session, err := h.sessionUC.SOS(c.Request().Context(), sessionID, token)
	if err != nil {
		return utils.ErrorFromAppError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "SOS raised", h.viewFor(c, session))
}

// RateSession handles POST /sessions/:sessionID/rate
func (h *SessionHandler) RateSession(c echo.Context) error {
	var req models.RateSessionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	rating, err := h.sessionUC.RateSession(c.Request().Context(), c.Param("sessionID"), middleware.GetUserID(c), req.Score)
	if err != nil {
		return utils.ErrorFromAppError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Rating recorded", rating)
}

// GetLocations handles GET /sessions/:sessionID/locations
func (h *SessionHandler) GetLocations(c echo.Context) error {
	locs, err := h.sessionUC.ReadLocationsForUser(c.Request().Context(), middleware.GetUserID(c), c.Param("sessionID"))
	if err != nil {
		return utils.ErrorFromAppError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", locs)
}

// resolveToken prefers an explicit capability token and falls back to the
// caller's own side token.
func (h *SessionHandler) resolveToken(c echo.Context, sessionID string) (string, error) {
	if token := c.Request().Header.Get(constants.SessionTokenHeader); token != "" {
		return token, nil
	}
	view, err := h.sessionUC.GetSessionForUser(c.Request().Context(), middleware.GetUserID(c), sessionID)
	if err != nil {
		return "", err
	}
	return view.MyToken, nil
}

// viewFor builds the caller's view. Callers acting through a shared token
// who are not a party see neither token.
func (h *SessionHandler) viewFor(c echo.Context, session *models.Session) *models.SessionView {
	return models.NewSessionView(session, middleware.GetUserID(c))
}
