package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusdesk/planner-api/internal/dto"
	"github.com/campusdesk/planner-api/internal/models"
	"github.com/campusdesk/planner-api/internal/service"
	appErrors "github.com/campusdesk/planner-api/pkg/errors"
	"github.com/campusdesk/planner-api/pkg/response"
)

const maxUnavailableWindows = 64

type schedulePlanner interface {
	Plan(ctx context.Context, req dto.PlanScheduleRequest) (*dto.PlanScheduleResponse, error)
	InvalidateCache(ctx context.Context) error
}

// PlannerHandler exposes the schedule planning endpoint.
type PlannerHandler struct {
	service schedulePlanner
	enabled bool
}

// NewPlannerHandler constructs the handler.
func NewPlannerHandler(svc *service.PlannerService, enabled bool) *PlannerHandler {
	return &PlannerHandler{service: svc, enabled: enabled}
}

// Plan godoc
// @Summary Generate ranked schedule candidates
// @Description Builds every conflict-free combination of eligible sections and returns the top ranked options
// @Tags Planner
// @Accept json
// @Produce json
// @Param payload body dto.PlanScheduleRequest true "Plan payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Security BearerAuth
// @Router /plans [post]
func (h *PlannerHandler) Plan(c *gin.Context) {
	if !h.enabled {
		response.Error(c, appErrors.ErrFeatureDisabled)
		return
	}

	var req dto.PlanScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid plan payload"))
		return
	}
	if len(req.UnavailableWindows) > maxUnavailableWindows {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unavailableWindows exceeds supported limit"))
		return
	}

	// Students can only plan for themselves.
	if claims := claimsFromContext(c); claims != nil && claims.Role == models.RoleStudent {
		if claims.StudentID != "" {
			req.StudentID = claims.StudentID
		}
	}

	result, err := h.service.Plan(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result, nil)
}

// InvalidateCache godoc
// @Summary Purge cached plan responses
// @Description Drops every cached plan, used after catalog imports change sections or prerequisites
// @Tags Planner
// @Success 204
// @Security BearerAuth
// @Router /plans/cache [delete]
func (h *PlannerHandler) InvalidateCache(c *gin.Context) {
	if !h.enabled {
		response.Error(c, appErrors.ErrFeatureDisabled)
		return
	}
	if err := h.service.InvalidateCache(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
