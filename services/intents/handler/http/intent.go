package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/lastmile/internal/pkg/middleware"
	"github.com/piresc/lastmile/internal/pkg/models"
	"github.com/piresc/lastmile/internal/utils"
	"github.com/piresc/lastmile/services/intents"
)

// IntentHandler handles HTTP requests for intent operations
type IntentHandler struct {
	intentUC intents.IntentUC
}

// NewIntentHandler creates a new intent HTTP handler
func NewIntentHandler(intentUC intents.IntentUC) *IntentHandler {
	return &IntentHandler{intentUC: intentUC}
}

// RegisterRoutes mounts the intent routes on an authenticated group
func (h *IntentHandler) RegisterRoutes(api *echo.Group, mutating ...echo.MiddlewareFunc) {
	g := api.Group("/intents")
	g.POST("", h.CreateIntent, mutating...)
	g.GET("", h.ListMyIntents)
	g.GET("/:intentID", h.GetIntent)
	g.DELETE("/:intentID", h.DeleteIntent, mutating...)
}

// CreateIntent handles POST /intents
func (h *IntentHandler) CreateIntent(c echo.Context) error {
	var req models.CreateIntentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	intent, err := h.intentUC.CreateIntent(c.Request().Context(), middleware.GetUserID(c), req)
	if err != nil {
		return utils.ErrorFromAppError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Intent created", intent)
}

// ListMyIntents handles GET /intents
func (h *IntentHandler) ListMyIntents(c echo.Context) error {
	list, err := h.intentUC.ListMyIntents(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return utils.ErrorFromAppError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// GetIntent handles GET /intents/:intentID
func (h *IntentHandler) GetIntent(c echo.Context) error {
	intent, err := h.intentUC.GetOwnedIntent(c.Request().Context(), middleware.GetUserID(c), c.Param("intentID"))
	if err != nil {
		return utils.ErrorFromAppError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", intent)
}

// DeleteIntent handles DELETE /intents/:intentID
func (h *IntentHandler) DeleteIntent(c echo.Context) error {
	if err := h.intentUC.DeleteIntent(c.Request().Context(), middleware.GetUserID(c), c.Param("intentID")); err != nil {
		return utils.ErrorFromAppError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Intent deleted", nil)
}
