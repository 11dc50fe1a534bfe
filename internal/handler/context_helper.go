package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/qlhs-edu/dashboard-bff/internal/middleware"
	"github.com/qlhs-edu/dashboard-bff/internal/models"
	"github.com/qlhs-edu/dashboard-bff/internal/service"
	"github.com/qlhs-edu/dashboard-bff/pkg/i18n"
)

func claimsFromContext(c *gin.Context) *models.TeacherClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.TeacherClaims)
	if !ok {
		return nil
	}
	return claims
}

// localeFor resolves the display language: an explicit lang query wins over
// the stored preference.
func localeFor(c *gin.Context, prefs *service.PreferenceService) i18n.Locale {
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		return i18n.Normalize(lang)
	}
	teacherID := ""
	if claims := claimsFromContext(c); claims != nil {
		teacherID = claims.TeacherID()
	}
	return prefs.Language(c.Request.Context(), teacherID)
}
