package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parsedSection(t *testing.T, id, courseID string, blocks ...[3]string) Section {
	t.Helper()
	s := Section{ID: id, CourseID: courseID, Label: id}
	for _, b := range blocks {
		day, ok := DayIndex(b[0])
		require.True(t, ok)
		start, err := ParseClock(b[1])
		require.NoError(t, err)
		end, err := ParseClock(b[2])
		require.NoError(t, err)
		s.Blocks = append(s.Blocks, block{Day: day, Start: start, End: end})
	}
	return s
}

func TestSectionsConflictDifferentDays(t *testing.T) {
	a := parsedSection(t, "a1", "a", [3]string{"MONDAY", "09:00", "11:00"})
	b := parsedSection(t, "b1", "b", [3]string{"TUESDAY", "09:00", "11:00"})
	assert.False(t, SectionsConflict(a, b))
}

func TestSectionsConflictHalfOpenBoundary(t *testing.T) {
	a := parsedSection(t, "a1", "a", [3]string{"MONDAY", "09:00", "11:00"})
	b := parsedSection(t, "b1", "b", [3]string{"MONDAY", "11:00", "13:00"})
	// Back-to-back blocks share only the boundary instant.
	assert.False(t, SectionsConflict(a, b))
	assert.False(t, SectionsConflict(b, a))
}

func TestSectionsConflictOverlap(t *testing.T) {
	a := parsedSection(t, "a1", "a", [3]string{"MONDAY", "09:00", "11:00"})
	b := parsedSection(t, "b1", "b", [3]string{"MONDAY", "10:00", "12:00"})
	assert.True(t, SectionsConflict(a, b))
	assert.True(t, SectionsConflict(b, a))

	contained := parsedSection(t, "c1", "c", [3]string{"MONDAY", "09:30", "10:30"})
	assert.True(t, SectionsConflict(a, contained))
	assert.True(t, SectionsConflict(contained, a))
}

func TestWithoutBlockedDropsWholeSection(t *testing.T) {
	twoDay := parsedSection(t, "a1", "a",
		[3]string{"MONDAY", "09:00", "11:00"},
		[3]string{"THURSDAY", "09:00", "11:00"},
	)
	free := parsedSection(t, "b1", "b", [3]string{"FRIDAY", "09:00", "11:00"})

	window, err := ParseWindow("THURSDAY", "10:00", "12:00")
	require.NoError(t, err)

	kept := WithoutBlocked([]Section{twoDay, free}, []BusyWindow{window})
	require.Len(t, kept, 1)
	assert.Equal(t, "b1", kept[0].ID)
}

func TestWithoutBlockedNoWindows(t *testing.T) {
	sections := []Section{parsedSection(t, "a1", "a", [3]string{"MONDAY", "09:00", "11:00"})}
	assert.Equal(t, sections, WithoutBlocked(sections, nil))
}

func TestParseWindowValidation(t *testing.T) {
	_, err := ParseWindow("FUNDAY", "09:00", "11:00")
	assert.Error(t, err)

	_, err = ParseWindow("MONDAY", "11:00", "09:00")
	assert.Error(t, err)

	_, err = ParseWindow("MONDAY", "09:00", "09:00")
	assert.Error(t, err)
}
