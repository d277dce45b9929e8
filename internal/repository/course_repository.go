package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/campusdesk/planner-api/internal/models"
)

// CourseRepository reads the course catalog and its prerequisite graph.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs a CourseRepository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// ListByProgram returns all courses of a program with prerequisites attached.
func (r *CourseRepository) ListByProgram(ctx context.Context, programID string) ([]models.Course, error) {
	var courses []models.Course
	query := `SELECT id, program_id, code, name, credits, created_at FROM courses WHERE program_id = $1 ORDER BY code ASC`
	if err := r.db.SelectContext(ctx, &courses, query, programID); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	if len(courses) == 0 {
		return courses, nil
	}

	ids := make([]string, 0, len(courses))
	for _, course := range courses {
		ids = append(ids, course.ID)
	}

	edgeQuery, args, err := sqlx.In(`SELECT course_id, prerequisite_id FROM course_prerequisites WHERE course_id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("build prerequisite query: %w", err)
	}
	var edges []models.CoursePrerequisite
	if err := r.db.SelectContext(ctx, &edges, r.db.Rebind(edgeQuery), args...); err != nil {
		return nil, fmt.Errorf("list prerequisites: %w", err)
	}

	byCourse := make(map[string][]string, len(edges))
	for _, edge := range edges {
		byCourse[edge.CourseID] = append(byCourse[edge.CourseID], edge.PrerequisiteID)
	}
	for i := range courses {
		courses[i].Prerequisites = byCourse[courses[i].ID]
	}
	return courses, nil
}

// FindByID returns a single course with prerequisites.
func (r *CourseRepository) FindByID(ctx context.Context, id string) (*models.Course, error) {
	var course models.Course
	query := `SELECT id, program_id, code, name, credits, created_at FROM courses WHERE id = $1`
	if err := r.db.GetContext(ctx, &course, query, id); err != nil {
		return nil, err
	}

	var edges []models.CoursePrerequisite
	edgeQuery := `SELECT course_id, prerequisite_id FROM course_prerequisites WHERE course_id = $1`
	if err := r.db.SelectContext(ctx, &edges, edgeQuery, id); err != nil {
		return nil, fmt.Errorf("list prerequisites: %w", err)
	}
	for _, edge := range edges {
		course.Prerequisites = append(course.Prerequisites, edge.PrerequisiteID)
	}
	return &course, nil
}
