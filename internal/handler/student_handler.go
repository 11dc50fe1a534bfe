package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/qlhs-edu/dashboard-bff/internal/models"
	"github.com/qlhs-edu/dashboard-bff/internal/service"
	"github.com/qlhs-edu/dashboard-bff/pkg/response"
)

// StudentHandler exposes the student roster endpoints.
type StudentHandler struct {
	service *service.StudentService
}

// NewStudentHandler constructs a student handler.
func NewStudentHandler(svc *service.StudentService) *StudentHandler {
	return &StudentHandler{service: svc}
}

// List godoc
// @Summary List students with roster filters
// @Tags Students
// @Produce json
// @Param search query string false "Search by student name or id"
// @Param class query string false "Class filter, 'all' for no filter"
// @Param subject query string false "Subject filter, 'all' for no filter"
// @Param classId query string false "Scope to one class"
// @Success 200 {object} response.Envelope
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	h.list(c, c.Query("classId"), "")
}

// ListByClass godoc
// @Summary List students of one class
// @Tags Students
// @Produce json
// @Param classId path string true "Class ID"
// @Param search query string false "Search by student name or id"
// @Param subject query string false "Subject filter, 'all' for no filter"
// @Success 200 {object} response.Envelope
// @Router /classes/{classId}/students [get]
func (h *StudentHandler) ListByClass(c *gin.Context) {
	h.list(c, c.Param("classId"), "")
}

// ListBySubject godoc
// @Summary List students enrolled in one subject
// @Tags Students
// @Produce json
// @Param subjectId path string true "Subject ID"
// @Param search query string false "Search by student name or id"
// @Param class query string false "Class filter, 'all' for no filter"
// @Success 200 {object} response.Envelope
// @Router /subjects/{subjectId}/students [get]
func (h *StudentHandler) ListBySubject(c *gin.Context) {
	h.list(c, "", c.Param("subjectId"))
}

func (h *StudentHandler) list(c *gin.Context, classID, subjectID string) {
	teacherID := ""
	if claims := claimsFromContext(c); claims != nil {
		teacherID = claims.TeacherID()
	}
	req := service.StudentListRequest{
		TeacherID: teacherID,
		ClassID:   classID,
		SubjectID: subjectID,
		Filter: models.StudentFilter{
			Search:  strings.TrimSpace(c.Query("search")),
			Class:   c.Query("class"),
			Subject: c.Query("subject"),
		},
	}

	result, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
