package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/lastmile/internal/pkg/models"
	"github.com/piresc/lastmile/internal/utils"
	"github.com/piresc/lastmile/services/guidance"
)

// GuidanceHandler handles HTTP requests for stops and walking guidance
type GuidanceHandler struct {
	guidanceUC guidance.GuidanceUC
}

// NewGuidanceHandler creates a new guidance HTTP handler
func NewGuidanceHandler(guidanceUC guidance.GuidanceUC) *GuidanceHandler {
	return &GuidanceHandler{guidanceUC: guidanceUC}
}

// RegisterRoutes mounts the guidance routes on an authenticated group
func (h *GuidanceHandler) RegisterRoutes(api *echo.Group) {
	api.GET("/stops", h.ListStops)
	api.POST("/guidance/walk-from-stop", h.WalkFromStop)
}

// ListStops handles GET /stops
func (h *GuidanceHandler) ListStops(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", h.guidanceUC.ListStops(c.Request().Context()))
}

// WalkFromStop handles POST /guidance/walk-from-stop
func (h *GuidanceHandler) WalkFromStop(c echo.Context) error {
	var req models.WalkFromStopRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if req.StopID == "" {
		return utils.BadRequestResponse(c, "stop_id is required")
	}

	g, err := h.guidanceUC.WalkFromStop(c.Request().Context(), req)
	if err != nil {
		return utils.ErrorFromAppError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", g)
}
