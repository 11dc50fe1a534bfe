package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qlhs-edu/dashboard-bff/internal/service"
	appErrors "github.com/qlhs-edu/dashboard-bff/pkg/errors"
	"github.com/qlhs-edu/dashboard-bff/pkg/response"
)

// PreferenceHandler exposes teacher display preferences.
type PreferenceHandler struct {
	service *service.PreferenceService
}

// NewPreferenceHandler constructs a preference handler.
func NewPreferenceHandler(svc *service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{service: svc}
}

type languageRequest struct {
	Locale string `json:"locale" binding:"required"`
}

// GetLanguage godoc
// @Summary Stored display language for the authenticated teacher
// @Tags Preferences
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /preferences/language [get]
func (h *PreferenceHandler) GetLanguage(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	locale := h.service.Language(c.Request.Context(), claims.TeacherID())
	response.JSON(c, http.StatusOK, gin.H{"locale": locale}, nil)
}

// SetLanguage godoc
// @Summary Store the display language for the authenticated teacher
// @Tags Preferences
// @Accept json
// @Produce json
// @Param payload body languageRequest true "Language payload"
// @Success 200 {object} response.Envelope
// @Router /preferences/language [put]
func (h *PreferenceHandler) SetLanguage(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req languageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "locale is required"))
		return
	}
	locale, err := h.service.SetLanguage(c.Request.Context(), claims.TeacherID(), req.Locale)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"locale": locale}, nil)
}
