package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/qlhs-edu/dashboard-bff/internal/models"
	"github.com/qlhs-edu/dashboard-bff/internal/service"
	"github.com/qlhs-edu/dashboard-bff/pkg/response"
)

// AttendanceHandler exposes attendance listing and export endpoints.
type AttendanceHandler struct {
	service *service.AttendanceService
	export  *service.ExportService
	prefs   *service.PreferenceService
}

// NewAttendanceHandler constructs an attendance handler.
func NewAttendanceHandler(svc *service.AttendanceService, export *service.ExportService, prefs *service.PreferenceService) *AttendanceHandler {
	return &AttendanceHandler{service: svc, export: export, prefs: prefs}
}

func attendanceFilterFromQuery(c *gin.Context) models.AttendanceFilter {
	return models.AttendanceFilter{
		Search:  strings.TrimSpace(c.Query("search")),
		Class:   c.Query("class"),
		Subject: c.Query("subject"),
		Date:    c.Query("date"),
	}
}

// List godoc
// @Summary List attendance records
// @Tags Attendance
// @Produce json
// @Param search query string false "Search by student name or id"
// @Param class query string false "Class filter, 'all' for no filter"
// @Param subject query string false "Subject filter, 'all' for no filter"
// @Param date query string false "Date filter (YYYY-MM-DD)"
// @Param classId query string false "Scope to one class"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /attendance [get]
func (h *AttendanceHandler) List(c *gin.Context) {
	req := service.AttendanceListRequest{
		Filter:  attendanceFilterFromQuery(c),
		ClassID: c.Query("classId"),
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		req.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("limit", "15")); err == nil {
		req.PageSize = size
	}

	result, pagination, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, pagination)
}

// Export godoc
// @Summary Export filtered attendance records
// @Tags Attendance
// @Produce text/csv
// @Param search query string false "Search by student name or id"
// @Param class query string false "Class filter, 'all' for no filter"
// @Param subject query string false "Subject filter, 'all' for no filter"
// @Param date query string false "Date filter (YYYY-MM-DD)"
// @Param format query string false "csv or pdf, defaults to csv"
// @Success 200 {file} file
// @Router /attendance/export [get]
func (h *AttendanceHandler) Export(c *gin.Context) {
	locale := localeFor(c, h.prefs)
	format := service.ExportFormat(strings.ToLower(c.DefaultQuery("format", "csv")))

	result, err := h.export.Attendance(c.Request.Context(), attendanceFilterFromQuery(c), format, locale)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, result.ContentType, result.Body)
}
