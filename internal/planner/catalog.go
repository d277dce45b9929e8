// Package planner implements the course-schedule candidate generator: it
// annotates a catalog snapshot with unlock weights and section metrics,
// resolves the sections a student may take, enumerates every legal
// combination and ranks the results.
package planner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/campusdesk/planner-api/internal/models"
	appErrors "github.com/campusdesk/planner-api/pkg/errors"
)

var dayIndexMap = map[int]string{
	1: "MONDAY",
	2: "TUESDAY",
	3: "WEDNESDAY",
	4: "THURSDAY",
	5: "FRIDAY",
	6: "SATURDAY",
	7: "SUNDAY",
}

var dayNameIndex = map[string]int{
	"MONDAY":    1,
	"TUESDAY":   2,
	"WEDNESDAY": 3,
	"THURSDAY":  4,
	"FRIDAY":    5,
	"SATURDAY":  6,
	"SUNDAY":    7,
}

// DayIndex resolves an upper-case day token to its 1-based weekday index.
func DayIndex(name string) (int, bool) {
	idx, ok := dayNameIndex[strings.ToUpper(strings.TrimSpace(name))]
	return idx, ok
}

// DayName returns the token for a 1-based weekday index.
func DayName(day int) string {
	if name, ok := dayIndexMap[day]; ok {
		return name
	}
	return ""
}

// ParseClock converts an "HH:MM" string to minutes since midnight.
func ParseClock(raw string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(raw), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed clock %q", raw)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed clock %q", raw)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("malformed clock %q", raw)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock %q out of range", raw)
	}
	return hour*60 + minute, nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// block is a parsed lecture block: a half-open [Start, End) interval on a day.
type block struct {
	Day      int
	Start    int
	End      int
	Location string
}

// Section is a class section with parsed meeting blocks.
type Section struct {
	ID       string
	CourseID string
	Label    string
	Blocks   []block
}

// BusyWindow is a student-declared blocked interval, same shape as a block.
type BusyWindow struct {
	Day   int
	Start int
	End   int
}

// ParseWindow validates and converts a raw unavailable window.
func ParseWindow(day, start, end string) (BusyWindow, error) {
	idx, ok := DayIndex(day)
	if !ok {
		return BusyWindow{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unrecognized day token %q", day))
	}
	from, err := ParseClock(start)
	if err != nil {
		return BusyWindow{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid window start time")
	}
	to, err := ParseClock(end)
	if err != nil {
		return BusyWindow{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid window end time")
	}
	if from >= to {
		return BusyWindow{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("window %s %s-%s must start before it ends", day, start, end))
	}
	return BusyWindow{Day: idx, Start: from, End: to}, nil
}

// Snapshot is the immutable, request-scoped view of the catalog. Derived
// annotations (unlock weights, section metrics) live in snapshot-owned maps so
// concurrent requests never share mutable state.
type Snapshot struct {
	courses   []models.Course
	byID      map[string]models.Course
	sections  []Section
	completed map[string]struct{}
	weights   map[string]int
	metrics   map[string]SectionMetrics
}

// NewSnapshot parses and validates catalog data, computes unlock weights and
// per-section metrics, and returns the annotated snapshot. Malformed clocks,
// unknown day tokens, blocks with start >= end and cyclic prerequisite graphs
// are all rejected here, before any scoring happens.
func NewSnapshot(courses []models.Course, sections []models.ClassSection, completed []string) (*Snapshot, error) {
	byID := make(map[string]models.Course, len(courses))
	for _, course := range courses {
		byID[course.ID] = course
	}

	parsed := make([]Section, 0, len(sections))
	for _, raw := range sections {
		section := Section{ID: raw.ID, CourseID: raw.CourseID, Label: raw.Label}
		for _, b := range raw.Blocks {
			day, ok := DayIndex(b.Day)
			if !ok {
				return nil, appErrors.Clone(appErrors.ErrInvalidCatalog, fmt.Sprintf("section %s: unrecognized day token %q", raw.ID, b.Day))
			}
			start, err := ParseClock(b.StartTime)
			if err != nil {
				return nil, appErrors.Wrap(err, appErrors.ErrInvalidCatalog.Code, appErrors.ErrInvalidCatalog.Status, fmt.Sprintf("section %s: invalid start time", raw.ID))
			}
			end, err := ParseClock(b.EndTime)
			if err != nil {
				return nil, appErrors.Wrap(err, appErrors.ErrInvalidCatalog.Code, appErrors.ErrInvalidCatalog.Status, fmt.Sprintf("section %s: invalid end time", raw.ID))
			}
			if start >= end {
				return nil, appErrors.Clone(appErrors.ErrInvalidCatalog, fmt.Sprintf("section %s: block %s %s-%s must start before it ends", raw.ID, b.Day, b.StartTime, b.EndTime))
			}
			section.Blocks = append(section.Blocks, block{Day: day, Start: start, End: end, Location: b.Location})
		}
		parsed = append(parsed, section)
	}

	weights, err := unlockWeights(courses)
	if err != nil {
		return nil, err
	}

	done := make(map[string]struct{}, len(completed))
	for _, id := range completed {
		done[id] = struct{}{}
	}

	snap := &Snapshot{
		courses:   courses,
		byID:      byID,
		sections:  parsed,
		completed: done,
		weights:   weights,
		metrics:   make(map[string]SectionMetrics, len(parsed)),
	}
	for _, section := range parsed {
		snap.metrics[section.ID] = computeMetrics(section)
	}
	return snap, nil
}

// Course returns the catalog course for an id.
func (s *Snapshot) Course(id string) (models.Course, bool) {
	course, ok := s.byID[id]
	return course, ok
}

// UnlockWeight returns the transitive count of courses a completed course
// would newly unlock. Courses that unlock nothing weigh 0.
func (s *Snapshot) UnlockWeight(courseID string) int {
	return s.weights[courseID]
}

// Metrics returns the cached derived metrics for a section.
func (s *Snapshot) Metrics(sectionID string) SectionMetrics {
	return s.metrics[sectionID]
}

// Completed reports whether the student already passed the course.
func (s *Snapshot) Completed(courseID string) bool {
	_, ok := s.completed[courseID]
	return ok
}
