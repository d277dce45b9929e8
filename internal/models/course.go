package models

import "time"

// Course is a catalog course offered within a program.
type Course struct {
	ID        string    `db:"id" json:"id"`
	ProgramID string    `db:"program_id" json:"program_id"`
	Code      string    `db:"code" json:"code"`
	Name      string    `db:"name" json:"name"`
	Credits   int       `db:"credits" json:"credits"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	// Prerequisites holds the ids of courses that must be completed first.
	// Loaded from course_prerequisites alongside the course row.
	Prerequisites []string `db:"-" json:"prerequisites"`
}

// CoursePrerequisite is one edge of the prerequisite graph.
type CoursePrerequisite struct {
	CourseID       string `db:"course_id" json:"course_id"`
	PrerequisiteID string `db:"prerequisite_id" json:"prerequisite_id"`
}

// Program groups courses under a degree programme.
type Program struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
