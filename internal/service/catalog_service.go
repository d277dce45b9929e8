package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/campusdesk/planner-api/internal/models"
	appErrors "github.com/campusdesk/planner-api/pkg/errors"
)

type catalogTermLister interface {
	List(ctx context.Context) ([]models.Term, error)
}

// CatalogService exposes the read-side catalog the planner consumes, so
// clients can browse terms, courses and section timetables.
type CatalogService struct {
	terms    catalogTermLister
	courses  plannerCourseReader
	sections plannerSectionReader
	logger   *zap.Logger
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(terms catalogTermLister, courses plannerCourseReader, sections plannerSectionReader, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{terms: terms, courses: courses, sections: sections, logger: logger}
}

// Terms returns all academic terms.
func (s *CatalogService) Terms(ctx context.Context) ([]models.Term, error) {
	terms, err := s.terms.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list terms")
	}
	return terms, nil
}

// Courses returns the catalog courses of a program.
func (s *CatalogService) Courses(ctx context.Context, programID string) ([]models.Course, error) {
	if programID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "programId is required")
	}
	courses, err := s.courses.ListByProgram(ctx, programID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	return courses, nil
}

// Sections returns the sections offered for a program in a term.
func (s *CatalogService) Sections(ctx context.Context, programID, termID string) ([]models.ClassSection, error) {
	if programID == "" || termID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "programId and termId are required")
	}
	sections, err := s.sections.ListByProgramTerm(ctx, programID, termID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list sections")
	}
	return sections, nil
}
