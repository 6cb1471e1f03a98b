package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mergington/internal/service"
)

// ActivityHandler handles activity endpoints.
type ActivityHandler struct {
	activityService service.ActivityService
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(activityService service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// ListActivities godoc
// @Summary List activities with their participants
// @Tags activities
// @Produce json
// @Success 200 {object} map[string]service.ActivityDetails
// @Failure 500 {object} errors.ErrorResponse
// @Router /activities [get]
func (h *ActivityHandler) ListActivities(c echo.Context) error {
	activities, err := h.activityService.List(c.Request().Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(http.StatusOK, activities)
}
