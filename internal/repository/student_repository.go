package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/campusdesk/planner-api/internal/models"
)

// StudentRepository reads student records for the planner.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// FindByID loads one student.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	var student models.Student
	query := `SELECT id, program_id, full_name, email, active, created_at FROM students WHERE id = $1`
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		return nil, err
	}
	return &student, nil
}

// CompletedCourseIDs returns the ids of courses the student already passed.
func (r *StudentRepository) CompletedCourseIDs(ctx context.Context, studentID string) ([]string, error) {
	var ids []string
	query := `SELECT course_id FROM completed_courses WHERE student_id = $1 ORDER BY completed_at ASC`
	if err := r.db.SelectContext(ctx, &ids, query, studentID); err != nil {
		return nil, fmt.Errorf("list completed courses: %w", err)
	}
	return ids, nil
}
