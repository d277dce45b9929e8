package service

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campusdesk/planner-api/internal/dto"
	"github.com/campusdesk/planner-api/internal/models"
	"github.com/campusdesk/planner-api/internal/planner"
	appErrors "github.com/campusdesk/planner-api/pkg/errors"
)

type plannerCourseReader interface {
	ListByProgram(ctx context.Context, programID string) ([]models.Course, error)
}

type plannerSectionReader interface {
	ListByProgramTerm(ctx context.Context, programID, termID string) ([]models.ClassSection, error)
}

type plannerStudentReader interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
	CompletedCourseIDs(ctx context.Context, studentID string) ([]string, error)
}

type plannerTermReader interface {
	FindByID(ctx context.Context, id string) (*models.Term, error)
}

type planCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// PlannerConfig governs planner behaviour.
type PlannerConfig struct {
	MaxSections int
	TopN        int
	CacheTTL    time.Duration
}

// PlannerService loads the catalog for a program/term, runs the candidate
// generation pipeline and maps ranked schedules to the API contract.
type PlannerService struct {
	courses   plannerCourseReader
	sections  plannerSectionReader
	students  plannerStudentReader
	terms     plannerTermReader
	cache     planCache
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	cfg       PlannerConfig
}

// NewPlannerService wires planner dependencies.
func NewPlannerService(
	courses plannerCourseReader,
	sections plannerSectionReader,
	students plannerStudentReader,
	terms plannerTermReader,
	cache planCache,
	metrics *MetricsService,
	validate *validator.Validate,
	logger *zap.Logger,
	cfg PlannerConfig,
) *PlannerService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxSections <= 0 {
		cfg.MaxSections = 22
	}
	if cfg.TopN <= 0 {
		cfg.TopN = 10
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	return &PlannerService{
		courses:   courses,
		sections:  sections,
		students:  students,
		terms:     terms,
		cache:     cache,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
		cfg:       cfg,
	}
}

// Plan computes the ranked schedule options for one request.
func (s *PlannerService) Plan(ctx context.Context, req dto.PlanScheduleRequest) (*dto.PlanScheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid plan payload")
	}

	windows := make([]planner.BusyWindow, 0, len(req.UnavailableWindows))
	for _, w := range req.UnavailableWindows {
		window, err := planner.ParseWindow(w.Day, w.StartTime, w.EndTime)
		if err != nil {
			return nil, err
		}
		windows = append(windows, window)
	}

	key := s.cacheKey(req)
	if s.cache != nil {
		lookupStart := time.Now()
		var cached dto.PlanScheduleResponse
		err := s.cache.Get(ctx, key, &cached)
		s.metrics.RecordCacheOperation(err == nil, time.Since(lookupStart))
		if err == nil {
			cached.Stats.FromCache = true
			return &cached, nil
		}
	}

	if err := s.ensureTermAndStudent(ctx, req.TermID, req.StudentID); err != nil {
		return nil, err
	}

	pipelineStart := time.Now()

	courses, err := s.courses.ListByProgram(ctx, req.ProgramID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load courses")
	}
	sections, err := s.sections.ListByProgramTerm(ctx, req.ProgramID, req.TermID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load sections")
	}
	completed, err := s.students.CompletedCourseIDs(ctx, req.StudentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load completed courses")
	}

	snapshot, err := planner.NewSnapshot(courses, sections, completed)
	if err != nil {
		return nil, err
	}

	eligible := snapshot.Eligible()
	filtered := planner.WithoutBlocked(eligible, windows)
	candidates, err := planner.Enumerate(filtered, s.cfg.MaxSections)
	if err != nil {
		return nil, err
	}

	ranked := snapshot.Rank(candidates, planner.Preferences{
		DesiredWeeklyHours: req.DesiredWeeklyHours,
		ReduceDays:         req.ReduceDays,
		PrioritizeUnlocks:  req.PrioritizeUnlocks,
	}, s.cfg.TopN)

	resp := &dto.PlanScheduleResponse{
		Options: make([]dto.ScheduleOption, 0, len(ranked)),
		Stats: dto.PlanPipelineStats{
			EligibleSections: len(eligible),
			FilteredSections: len(filtered),
			Candidates:       len(candidates),
		},
	}
	for _, schedule := range ranked {
		resp.Options = append(resp.Options, s.toOption(snapshot, schedule))
	}

	elapsed := time.Since(pipelineStart)
	s.metrics.ObservePlan(len(candidates), elapsed)
	s.logger.Info("plan_generated",
		zap.String("program_id", req.ProgramID),
		zap.String("term_id", req.TermID),
		zap.String("student_id", req.StudentID),
		zap.Int("eligible_sections", len(eligible)),
		zap.Int("candidates", len(candidates)),
		zap.Int("options", len(resp.Options)),
		zap.Duration("elapsed", elapsed),
	)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, resp, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("plan_cache_write_failed", zap.Error(err))
		}
	}
	return resp, nil
}

func (s *PlannerService) ensureTermAndStudent(ctx context.Context, termID, studentID string) error {
	if s.terms != nil {
		if _, err := s.terms.FindByID(ctx, termID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return appErrors.Clone(appErrors.ErrNotFound, "term not found")
			}
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load term")
		}
	}
	if s.students != nil {
		if _, err := s.students.FindByID(ctx, studentID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return appErrors.Clone(appErrors.ErrNotFound, "student not found")
			}
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
		}
	}
	return nil
}

func (s *PlannerService) toOption(snapshot *planner.Snapshot, schedule planner.RankedSchedule) dto.ScheduleOption {
	option := dto.ScheduleOption{
		ScheduleID:  uuid.NewString(),
		Score:       schedule.Score,
		WeeklyHours: schedule.WeeklyHours,
		DaysUsed:    schedule.DaysUsed,
		UnlockSum:   schedule.UnlockSum,
		Earliest:    planner.FormatClock(schedule.Earliest),
		Latest:      planner.FormatClock(schedule.Latest),
		Sections:    make([]dto.SectionView, 0, len(schedule.Sections)),
	}
	for _, section := range schedule.Sections {
		view := dto.SectionView{
			CourseID:     section.CourseID,
			SectionLabel: section.Label,
			Lectures:     make([]dto.LectureView, 0, len(section.Blocks)),
		}
		if course, ok := snapshot.Course(section.CourseID); ok {
			view.CourseCode = course.Code
			view.CourseName = course.Name
		}
		for _, b := range section.Blocks {
			view.Lectures = append(view.Lectures, dto.LectureView{
				Day:       planner.DayName(b.Day),
				StartTime: planner.FormatClock(b.Start),
				EndTime:   planner.FormatClock(b.End),
				Location:  b.Location,
			})
		}
		option.Sections = append(option.Sections, view)
	}
	return option
}

// InvalidateCache drops every cached plan response, typically after a
// catalog import changes sections or prerequisites mid-enrollment.
func (s *PlannerService) InvalidateCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.DeleteByPattern(ctx, "plan:*"); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to invalidate plan cache")
	}
	s.logger.Info("plan cache invalidated")
	return nil
}

func (s *PlannerService) cacheKey(req dto.PlanScheduleRequest) string {
	payload, _ := json.Marshal(req)
	sum := sha256.Sum256(payload)
	return "plan:" + req.ProgramID + ":" + req.TermID + ":" + req.StudentID + ":" + hex.EncodeToString(sum[:8])
}
