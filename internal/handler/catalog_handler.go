package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusdesk/planner-api/internal/service"
	"github.com/campusdesk/planner-api/pkg/response"
)

// CatalogHandler exposes read-only catalog browsing endpoints.
type CatalogHandler struct {
	service *service.CatalogService
}

// NewCatalogHandler constructs the handler.
func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// Terms godoc
// @Summary List academic terms
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /terms [get]
func (h *CatalogHandler) Terms(c *gin.Context) {
	terms, err := h.service.Terms(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, terms, nil)
}

// Courses godoc
// @Summary List courses of a program with prerequisite edges
// @Tags Catalog
// @Produce json
// @Param id path string true "Term ID"
// @Param programId query string true "Program ID"
// @Success 200 {object} response.Envelope
// @Router /terms/{id}/courses [get]
func (h *CatalogHandler) Courses(c *gin.Context) {
	courses, err := h.service.Courses(c.Request.Context(), c.Query("programId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses, nil)
}

// Sections godoc
// @Summary List sections offered in a term with lecture blocks
// @Tags Catalog
// @Produce json
// @Param id path string true "Term ID"
// @Param programId query string true "Program ID"
// @Success 200 {object} response.Envelope
// @Router /terms/{id}/sections [get]
func (h *CatalogHandler) Sections(c *gin.Context) {
	sections, err := h.service.Sections(c.Request.Context(), c.Query("programId"), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sections, nil)
}
