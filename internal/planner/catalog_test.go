package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdesk/planner-api/internal/models"
	appErrors "github.com/campusdesk/planner-api/pkg/errors"
)

func course(id string, prereqs ...string) models.Course {
	return models.Course{ID: id, Code: id, Name: "Course " + id, Prerequisites: prereqs}
}

func section(id, courseID string, blocks ...models.LectureBlock) models.ClassSection {
	return models.ClassSection{ID: id, CourseID: courseID, Label: id, Blocks: blocks}
}

func lecture(day, start, end string) models.LectureBlock {
	return models.LectureBlock{Day: day, StartTime: start, EndTime: end, Location: "B1-101"}
}

func TestParseClock(t *testing.T) {
	minutes, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, minutes)
	assert.Equal(t, "09:30", FormatClock(minutes))

	for _, raw := range []string{"", "9h30", "24:00", "12:60", "ab:cd"} {
		_, err := ParseClock(raw)
		assert.Error(t, err, raw)
	}
}

func TestNewSnapshotRejectsMalformedCatalog(t *testing.T) {
	courses := []models.Course{course("a")}

	_, err := NewSnapshot(courses, []models.ClassSection{
		section("s1", "a", lecture("MOONDAY", "09:00", "11:00")),
	}, nil)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCatalog.Code, appErrors.FromError(err).Code)

	_, err = NewSnapshot(courses, []models.ClassSection{
		section("s1", "a", lecture("MONDAY", "11:00", "09:00")),
	}, nil)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCatalog.Code, appErrors.FromError(err).Code)

	_, err = NewSnapshot(courses, []models.ClassSection{
		section("s1", "a", lecture("MONDAY", "9am", "11:00")),
	}, nil)
	require.Error(t, err)
}

func TestEligibilityFollowsPrerequisites(t *testing.T) {
	courses := []models.Course{course("a"), course("b", "a")}
	sections := []models.ClassSection{
		section("a1", "a", lecture("MONDAY", "09:00", "11:00")),
		section("b1", "b", lecture("TUESDAY", "09:00", "11:00")),
	}

	// Nothing completed: only the prerequisite-free course is eligible.
	snap, err := NewSnapshot(courses, sections, nil)
	require.NoError(t, err)
	eligible := snap.Eligible()
	require.Len(t, eligible, 1)
	assert.Equal(t, "a1", eligible[0].ID)

	// Completing the prerequisite unlocks the dependent and retires its own course.
	snap, err = NewSnapshot(courses, sections, []string{"a"})
	require.NoError(t, err)
	eligible = snap.Eligible()
	require.Len(t, eligible, 1)
	assert.Equal(t, "b1", eligible[0].ID)
}

func TestPipelineIsIdempotent(t *testing.T) {
	courses := []models.Course{course("a"), course("b", "a"), course("c")}
	sections := []models.ClassSection{
		section("a1", "a", lecture("MONDAY", "09:00", "11:00")),
		section("a2", "a", lecture("TUESDAY", "09:00", "11:00")),
		section("c1", "c", lecture("MONDAY", "10:00", "12:00")),
		section("c2", "c", lecture("WEDNESDAY", "13:00", "15:00")),
	}
	prefs := Preferences{DesiredWeeklyHours: 4, ReduceDays: true, PrioritizeUnlocks: true}

	run := func() []RankedSchedule {
		snap, err := NewSnapshot(courses, sections, nil)
		require.NoError(t, err)
		filtered := WithoutBlocked(snap.Eligible(), nil)
		candidates, err := Enumerate(filtered, 0)
		require.NoError(t, err)
		return snap.Rank(candidates, prefs, 10)
	}

	first := run()
	second := run()
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Score, second[i].Score)
		assert.Equal(t, sectionIDs(first[i].Sections), sectionIDs(second[i].Sections))
	}
}

func sectionIDs(sections []Section) []string {
	ids := make([]string, len(sections))
	for i, s := range sections {
		ids[i] = s.ID
	}
	return ids
}
