package models

// ClassSection is one offered instance of a course for a term.
type ClassSection struct {
	ID       string `db:"id" json:"id"`
	CourseID string `db:"course_id" json:"course_id"`
	TermID   string `db:"term_id" json:"term_id"`
	Label    string `db:"label" json:"label"`

	// Blocks holds the weekly meetings, loaded from lecture_blocks.
	Blocks []LectureBlock `db:"-" json:"blocks"`
}

// LectureBlock is a single weekly recurring meeting of a section.
// Day carries an upper-case token (MONDAY..SUNDAY); times are "HH:MM".
type LectureBlock struct {
	ID        string `db:"id" json:"id"`
	SectionID string `db:"section_id" json:"section_id"`
	Day       string `db:"day_of_week" json:"day"`
	StartTime string `db:"start_time" json:"start_time"`
	EndTime   string `db:"end_time" json:"end_time"`
	Location  string `db:"location" json:"location"`
}
