package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/campusdesk/planner-api/internal/models"
)

// SectionRepository reads class sections and their lecture blocks.
type SectionRepository struct {
	db *sqlx.DB
}

// NewSectionRepository constructs a SectionRepository.
func NewSectionRepository(db *sqlx.DB) *SectionRepository {
	return &SectionRepository{db: db}
}

// ListByProgramTerm returns the sections offered for a program in a term,
// each with its lecture blocks attached.
func (r *SectionRepository) ListByProgramTerm(ctx context.Context, programID, termID string) ([]models.ClassSection, error) {
	var sections []models.ClassSection
	query := `SELECT s.id, s.course_id, s.term_id, s.label
        FROM class_sections s
        JOIN courses c ON c.id = s.course_id
        WHERE c.program_id = $1 AND s.term_id = $2
        ORDER BY c.code ASC, s.label ASC`
	if err := r.db.SelectContext(ctx, &sections, query, programID, termID); err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	if len(sections) == 0 {
		return sections, nil
	}

	ids := make([]string, 0, len(sections))
	for _, section := range sections {
		ids = append(ids, section.ID)
	}

	blockQuery, args, err := sqlx.In(`SELECT id, section_id, day_of_week, start_time, end_time, location
        FROM lecture_blocks WHERE section_id IN (?) ORDER BY section_id, day_of_week, start_time`, ids)
	if err != nil {
		return nil, fmt.Errorf("build lecture block query: %w", err)
	}
	var blocks []models.LectureBlock
	if err := r.db.SelectContext(ctx, &blocks, r.db.Rebind(blockQuery), args...); err != nil {
		return nil, fmt.Errorf("list lecture blocks: %w", err)
	}

	bySection := make(map[string][]models.LectureBlock, len(sections))
	for _, b := range blocks {
		bySection[b.SectionID] = append(bySection[b.SectionID], b)
	}
	for i := range sections {
		sections[i].Blocks = bySection[sections[i].ID]
	}
	return sections, nil
}
