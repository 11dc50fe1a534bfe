package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qlhs-edu/dashboard-bff/internal/service"
	"github.com/qlhs-edu/dashboard-bff/pkg/response"
)

// ClassHandler exposes the class list.
type ClassHandler struct {
	service *service.ClassService
}

// NewClassHandler constructs a class handler.
func NewClassHandler(svc *service.ClassService) *ClassHandler {
	return &ClassHandler{service: svc}
}

// List godoc
// @Summary List classes with student counts
// @Tags Classes
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /classes [get]
func (h *ClassHandler) List(c *gin.Context) {
	classes, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, classes, nil)
}
