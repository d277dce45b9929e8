package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/campusdesk/planner-api/internal/dto"
	"github.com/campusdesk/planner-api/internal/middleware"
	"github.com/campusdesk/planner-api/internal/models"
)

type plannerMock struct {
	captured dto.PlanScheduleRequest
	err      error
}

func (m *plannerMock) Plan(ctx context.Context, req dto.PlanScheduleRequest) (*dto.PlanScheduleResponse, error) {
	m.captured = req
	if m.err != nil {
		return nil, m.err
	}
	return &dto.PlanScheduleResponse{Options: []dto.ScheduleOption{{ScheduleID: "sched-1"}}}, nil
}

func (m *plannerMock) InvalidateCache(ctx context.Context) error {
	return m.err
}

func validPlanPayload() []byte {
	return []byte(`{"programId":"p-cs","termId":"t-fall","studentId":"st-1","desiredWeeklyHours":12}`)
}

func TestPlannerHandlerSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &plannerMock{}
	h := &PlannerHandler{service: mockSvc, enabled: true}

	req, _ := http.NewRequest(http.MethodPost, "/plans", bytes.NewReader(validPlanPayload()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	h.Plan(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "t-fall", mockSvc.captured.TermID)
	require.Equal(t, "st-1", mockSvc.captured.StudentID)
}

func TestPlannerHandlerMalformedPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &PlannerHandler{service: &plannerMock{}, enabled: true}

	req, _ := http.NewRequest(http.MethodPost, "/plans", bytes.NewReader([]byte(`{"programId":`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	h.Plan(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlannerHandlerDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &plannerMock{}
	h := &PlannerHandler{service: mockSvc, enabled: false}

	req, _ := http.NewRequest(http.MethodPost, "/plans", bytes.NewReader(validPlanPayload()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	h.Plan(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Empty(t, mockSvc.captured.TermID)
}

func TestPlannerHandlerInvalidateCacheRequiresRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	req, _ := http.NewRequest(http.MethodDelete, "/plans/cache", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "u-1", Role: models.RoleStudent})

	middleware.RequireRoles(models.RoleAdmin, models.RoleAdvisor)(c)

	require.Equal(t, http.StatusForbidden, w.Code)
	require.True(t, c.IsAborted())
}

func TestPlannerHandlerInvalidateCacheSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &PlannerHandler{service: &plannerMock{}, enabled: true}
	router := gin.New()
	router.DELETE("/plans/cache", h.InvalidateCache)

	req, _ := http.NewRequest(http.MethodDelete, "/plans/cache", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestPlannerHandlerStudentScopedToSelf(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &plannerMock{}
	h := &PlannerHandler{service: mockSvc, enabled: true}

	req, _ := http.NewRequest(http.MethodPost, "/plans", bytes.NewReader(validPlanPayload()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.JWTClaims{
		UserID:    "u-1",
		Role:      models.RoleStudent,
		StudentID: "st-self",
	})

	h.Plan(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "st-self", mockSvc.captured.StudentID)
}
