package dto

// UnavailableWindowRequest is a student-declared busy interval.
type UnavailableWindowRequest struct {
	Day       string `json:"day" validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
}

// PlanScheduleRequest asks for ranked schedule candidates for a student.
type PlanScheduleRequest struct {
	ProgramID          string                     `json:"programId" validate:"required"`
	TermID             string                     `json:"termId" validate:"required"`
	StudentID          string                     `json:"studentId" validate:"required"`
	DesiredWeeklyHours float64                    `json:"desiredWeeklyHours" validate:"min=0,max=80"`
	ReduceDays         bool                       `json:"reduceDays"`
	PrioritizeUnlocks  bool                       `json:"prioritizeUnlocks"`
	UnavailableWindows []UnavailableWindowRequest `json:"unavailableWindows" validate:"omitempty,dive"`
}

// LectureView is one weekly meeting in a schedule option.
type LectureView struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Location  string `json:"location"`
}

// SectionView is one chosen section with its course context.
type SectionView struct {
	CourseID     string        `json:"courseId"`
	CourseCode   string        `json:"courseCode"`
	CourseName   string        `json:"courseName"`
	SectionLabel string        `json:"sectionLabel"`
	Lectures     []LectureView `json:"lectures"`
}

// ScheduleOption is one ranked schedule candidate.
type ScheduleOption struct {
	ScheduleID  string        `json:"scheduleId"`
	Score       float64       `json:"score"`
	WeeklyHours float64       `json:"weeklyHours"`
	DaysUsed    int           `json:"daysUsed"`
	UnlockSum   int           `json:"unlockSum"`
	Earliest    string        `json:"earliest"`
	Latest      string        `json:"latest"`
	Sections    []SectionView `json:"sections"`
}

// PlanScheduleResponse carries the ranked options plus generation stats.
type PlanScheduleResponse struct {
	Options []ScheduleOption  `json:"options"`
	Stats   PlanPipelineStats `json:"stats"`
}

// PlanPipelineStats summarises the pipeline for observability and debugging.
type PlanPipelineStats struct {
	EligibleSections int  `json:"eligibleSections"`
	FilteredSections int  `json:"filteredSections"`
	Candidates       int  `json:"candidates"`
	FromCache        bool `json:"fromCache"`
}
