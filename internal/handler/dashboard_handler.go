package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qlhs-edu/dashboard-bff/internal/service"
	appErrors "github.com/qlhs-edu/dashboard-bff/pkg/errors"
	"github.com/qlhs-edu/dashboard-bff/pkg/response"
)

// DashboardHandler exposes the landing-page aggregate.
type DashboardHandler struct {
	service *service.DashboardService
	prefs   *service.PreferenceService
}

// NewDashboardHandler constructs a dashboard handler.
func NewDashboardHandler(svc *service.DashboardService, prefs *service.PreferenceService) *DashboardHandler {
	return &DashboardHandler{service: svc, prefs: prefs}
}

// Overview godoc
// @Summary Dashboard cards and feeds for the authenticated teacher
// @Tags Dashboard
// @Produce json
// @Param lang query string false "Display language (vi or en)"
// @Success 200 {object} response.Envelope
// @Router /dashboard [get]
func (h *DashboardHandler) Overview(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	result, err := h.service.Overview(c.Request.Context(), claims.TeacherID(), localeFor(c, h.prefs))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
