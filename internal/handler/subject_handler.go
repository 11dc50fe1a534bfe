package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qlhs-edu/dashboard-bff/internal/service"
	appErrors "github.com/qlhs-edu/dashboard-bff/pkg/errors"
	"github.com/qlhs-edu/dashboard-bff/pkg/response"
)

// SubjectHandler exposes the teacher's subject list.
type SubjectHandler struct {
	service *service.SubjectService
}

// NewSubjectHandler constructs a subject handler.
func NewSubjectHandler(svc *service.SubjectService) *SubjectHandler {
	return &SubjectHandler{service: svc}
}

// List godoc
// @Summary List subjects assigned to the authenticated teacher
// @Tags Subjects
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /subjects [get]
func (h *SubjectHandler) List(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	subjects, count, err := h.service.ListByTeacher(c.Request.Context(), claims.TeacherID())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"subjects": subjects, "count": count}, nil)
}
