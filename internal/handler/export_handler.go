package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusdesk/planner-api/internal/dto"
	"github.com/campusdesk/planner-api/internal/service"
	appErrors "github.com/campusdesk/planner-api/pkg/errors"
	"github.com/campusdesk/planner-api/pkg/response"
)

type scheduleExporter interface {
	Render(ctx context.Context, req dto.ExportScheduleRequest) (*service.ExportResult, error)
}

// ExportHandler serves downloadable schedule documents.
type ExportHandler struct {
	service scheduleExporter
	enabled bool
}

// NewExportHandler constructs the handler.
func NewExportHandler(svc *service.ExportService, enabled bool) *ExportHandler {
	return &ExportHandler{service: svc, enabled: enabled}
}

// Export godoc
// @Summary Export a schedule option as CSV or PDF
// @Tags Planner
// @Accept json
// @Produce octet-stream
// @Param payload body dto.ExportScheduleRequest true "Export payload"
// @Success 200 {file} binary
// @Failure 400 {object} response.Envelope
// @Security BearerAuth
// @Router /plans/export [post]
func (h *ExportHandler) Export(c *gin.Context) {
	if !h.enabled {
		response.Error(c, appErrors.ErrFeatureDisabled)
		return
	}

	var req dto.ExportScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid export payload"))
		return
	}

	result, err := h.service.Render(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	c.Data(http.StatusOK, result.ContentType, result.Payload)
}
