package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdesk/planner-api/internal/dto"
	"github.com/campusdesk/planner-api/internal/models"
	appErrors "github.com/campusdesk/planner-api/pkg/errors"
)

type catalogStub struct {
	courses   []models.Course
	sections  []models.ClassSection
	completed []string
	term      *models.Term
	student   *models.Student
}

func (s *catalogStub) ListByProgram(ctx context.Context, programID string) ([]models.Course, error) {
	return s.courses, nil
}

func (s *catalogStub) ListByProgramTerm(ctx context.Context, programID, termID string) ([]models.ClassSection, error) {
	return s.sections, nil
}

func (s *catalogStub) FindByID(ctx context.Context, id string) (*models.Student, error) {
	if s.student == nil {
		return nil, sql.ErrNoRows
	}
	return s.student, nil
}

func (s *catalogStub) CompletedCourseIDs(ctx context.Context, studentID string) ([]string, error) {
	return s.completed, nil
}

type termStub struct {
	term *models.Term
}

func (s *termStub) FindByID(ctx context.Context, id string) (*models.Term, error) {
	if s.term == nil {
		return nil, sql.ErrNoRows
	}
	return s.term, nil
}

type memoryCache struct {
	items map[string][]byte
	sets  int
	gets  int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: make(map[string][]byte)}
}

func (c *memoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	c.gets++
	raw, ok := c.items[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (c *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	c.sets++
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.items[key] = raw
	return nil
}

func (c *memoryCache) DeleteByPattern(ctx context.Context, pattern string) error {
	c.items = make(map[string][]byte)
	return nil
}

func plannerFixture(stub *catalogStub, cache *memoryCache) *PlannerService {
	var planCacheArg planCache
	if cache != nil {
		planCacheArg = cache
	}
	return NewPlannerService(stub, stub, stub, &termStub{term: stub.term}, planCacheArg, nil, nil, nil, PlannerConfig{})
}

func lectureRow(day, start, end string) models.LectureBlock {
	return models.LectureBlock{Day: day, StartTime: start, EndTime: end, Location: "B1-101"}
}

func defaultCatalog() *catalogStub {
	return &catalogStub{
		courses: []models.Course{
			{ID: "c-intro", Code: "CS101", Name: "Intro to CS"},
			{ID: "c-algo", Code: "CS201", Name: "Algorithms", Prerequisites: []string{"c-intro"}},
		},
		sections: []models.ClassSection{
			{ID: "s-intro-a", CourseID: "c-intro", Label: "A", Blocks: []models.LectureBlock{lectureRow("MONDAY", "09:00", "11:00")}},
			{ID: "s-intro-b", CourseID: "c-intro", Label: "B", Blocks: []models.LectureBlock{lectureRow("TUESDAY", "09:00", "11:00")}},
			{ID: "s-algo-a", CourseID: "c-algo", Label: "A", Blocks: []models.LectureBlock{lectureRow("WEDNESDAY", "09:00", "12:00")}},
		},
		term:    &models.Term{ID: "t1", Name: "Fall"},
		student: &models.Student{ID: "stu-1", ProgramID: "p1"},
	}
}

func planRequest() dto.PlanScheduleRequest {
	return dto.PlanScheduleRequest{
		ProgramID:          "p1",
		TermID:             "t1",
		StudentID:          "stu-1",
		DesiredWeeklyHours: 2,
	}
}

func TestPlannerServiceEligibilityGate(t *testing.T) {
	stub := defaultCatalog()
	svc := plannerFixture(stub, nil)

	// Nothing completed: only intro sections may appear.
	resp, err := svc.Plan(context.Background(), planRequest())
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Stats.EligibleSections)
	for _, option := range resp.Options {
		for _, section := range option.Sections {
			assert.Equal(t, "c-intro", section.CourseID)
		}
	}

	// Completing the prerequisite unlocks the dependent course.
	stub.completed = []string{"c-intro"}
	resp, err = svc.Plan(context.Background(), planRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Stats.EligibleSections)
	require.NotEmpty(t, resp.Options)
	assert.Equal(t, "c-algo", resp.Options[0].Sections[0].CourseID)
}

func TestPlannerServiceRankedResponse(t *testing.T) {
	stub := defaultCatalog()
	svc := plannerFixture(stub, nil)

	resp, err := svc.Plan(context.Background(), planRequest())
	require.NoError(t, err)
	require.Len(t, resp.Options, 2)
	for i := 1; i < len(resp.Options); i++ {
		assert.GreaterOrEqual(t, resp.Options[i-1].Score, resp.Options[i].Score)
	}
	first := resp.Options[0]
	assert.NotEmpty(t, first.ScheduleID)
	assert.InDelta(t, 2.0, first.WeeklyHours, 1e-9)
	assert.Equal(t, 1, first.DaysUsed)
	assert.Equal(t, "09:00", first.Earliest)
	assert.Equal(t, "11:00", first.Latest)
	require.Len(t, first.Sections, 1)
	assert.Equal(t, "CS101", first.Sections[0].CourseCode)
	require.Len(t, first.Sections[0].Lectures, 1)
	assert.Equal(t, "MONDAY", first.Sections[0].Lectures[0].Day)
	assert.Equal(t, "B1-101", first.Sections[0].Lectures[0].Location)
}

func TestPlannerServiceUnavailableWindows(t *testing.T) {
	stub := defaultCatalog()
	svc := plannerFixture(stub, nil)

	req := planRequest()
	req.UnavailableWindows = []dto.UnavailableWindowRequest{
		{Day: "MONDAY", StartTime: "08:00", EndTime: "12:00"},
	}
	resp, err := svc.Plan(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Stats.EligibleSections)
	assert.Equal(t, 1, resp.Stats.FilteredSections)
	require.Len(t, resp.Options, 1)
	assert.Equal(t, "B", resp.Options[0].Sections[0].SectionLabel)
}

func TestPlannerServiceInvalidWindow(t *testing.T) {
	svc := plannerFixture(defaultCatalog(), nil)

	req := planRequest()
	req.UnavailableWindows = []dto.UnavailableWindowRequest{
		{Day: "MONDAY", StartTime: "12:00", EndTime: "08:00"},
	}
	_, err := svc.Plan(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestPlannerServiceValidationFailure(t *testing.T) {
	svc := plannerFixture(defaultCatalog(), nil)

	_, err := svc.Plan(context.Background(), dto.PlanScheduleRequest{TermID: "t1"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestPlannerServiceTermNotFound(t *testing.T) {
	stub := defaultCatalog()
	stub.term = nil
	svc := plannerFixture(stub, nil)

	_, err := svc.Plan(context.Background(), planRequest())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestPlannerServiceCacheRoundTrip(t *testing.T) {
	stub := defaultCatalog()
	cache := newMemoryCache()
	svc := plannerFixture(stub, cache)

	first, err := svc.Plan(context.Background(), planRequest())
	require.NoError(t, err)
	assert.False(t, first.Stats.FromCache)
	assert.Equal(t, 1, cache.sets)

	second, err := svc.Plan(context.Background(), planRequest())
	require.NoError(t, err)
	assert.True(t, second.Stats.FromCache)
	assert.Equal(t, 1, cache.sets)
	require.Len(t, second.Options, len(first.Options))
	assert.Equal(t, first.Options[0].Score, second.Options[0].Score)
}

func TestPlannerServiceInvalidateCache(t *testing.T) {
	stub := defaultCatalog()
	cache := newMemoryCache()
	svc := plannerFixture(stub, cache)

	_, err := svc.Plan(context.Background(), planRequest())
	require.NoError(t, err)
	require.Equal(t, 1, cache.sets)

	require.NoError(t, svc.InvalidateCache(context.Background()))

	refreshed, err := svc.Plan(context.Background(), planRequest())
	require.NoError(t, err)
	assert.False(t, refreshed.Stats.FromCache)
	assert.Equal(t, 2, cache.sets)
}

func TestPlannerServiceInvalidateCacheWithoutCache(t *testing.T) {
	stub := defaultCatalog()
	svc := plannerFixture(stub, nil)

	require.NoError(t, svc.InvalidateCache(context.Background()))
}

func TestPlannerServiceSectionLimit(t *testing.T) {
	stub := defaultCatalog()
	svc := NewPlannerService(stub, stub, stub, &termStub{term: stub.term}, nil, nil, nil, nil, PlannerConfig{MaxSections: 1})

	_, err := svc.Plan(context.Background(), planRequest())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrTooManySections.Code, appErrors.FromError(err).Code)
}

func TestPlannerServiceCyclicCatalog(t *testing.T) {
	stub := defaultCatalog()
	stub.courses = []models.Course{
		{ID: "a", Code: "A", Name: "A", Prerequisites: []string{"b"}},
		{ID: "b", Code: "B", Name: "B", Prerequisites: []string{"a"}},
	}
	svc := plannerFixture(stub, nil)

	_, err := svc.Plan(context.Background(), planRequest())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrCyclicPrerequisite.Code, appErrors.FromError(err).Code)
}

func TestPlannerServiceEmptyCatalog(t *testing.T) {
	stub := defaultCatalog()
	stub.courses = nil
	stub.sections = nil
	svc := plannerFixture(stub, nil)

	resp, err := svc.Plan(context.Background(), planRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Options)
	assert.Zero(t, resp.Stats.Candidates)
}
