package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/qlhs-edu/dashboard-bff/internal/service"
	appErrors "github.com/qlhs-edu/dashboard-bff/pkg/errors"
	"github.com/qlhs-edu/dashboard-bff/pkg/response"
)

// ScheduleHandler exposes the weekly schedule endpoint.
type ScheduleHandler struct {
	service *service.ScheduleService
	prefs   *service.PreferenceService
}

// NewScheduleHandler constructs a schedule handler.
func NewScheduleHandler(svc *service.ScheduleService, prefs *service.PreferenceService) *ScheduleHandler {
	return &ScheduleHandler{service: svc, prefs: prefs}
}

// Weekly godoc
// @Summary Weekly schedule for the authenticated teacher
// @Tags Schedule
// @Produce json
// @Param week query int false "Week number, defaults to the earliest available"
// @Param lang query string false "Display language (vi or en)"
// @Success 200 {object} response.Envelope
// @Router /schedule [get]
func (h *ScheduleHandler) Weekly(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	week := 0
	if raw := c.Query("week"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "week must be a positive integer"))
			return
		}
		week = parsed
	}

	result, err := h.service.Weekly(c.Request.Context(), claims.TeacherID(), week, localeFor(c, h.prefs))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
