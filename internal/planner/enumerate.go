package planner

import (
	"fmt"

	appErrors "github.com/campusdesk/planner-api/pkg/errors"
)

// Enumerate produces every valid schedule candidate from the given sections:
// each non-empty subset containing at most one section per course and no pair
// of overlapping lecture blocks. The search backtracks in fixed input order
// and abandons a partial selection on the first violation; extending an
// invalid subset can never yield a valid superset, so the output matches a
// full power-set scan. maxSections bounds the worst case; zero disables the
// bound.
func Enumerate(sections []Section, maxSections int) ([][]Section, error) {
	if maxSections > 0 && len(sections) > maxSections {
		return nil, appErrors.Clone(appErrors.ErrTooManySections,
			fmt.Sprintf("%d candidate sections exceed the enumeration limit of %d", len(sections), maxSections))
	}

	var candidates [][]Section
	current := make([]Section, 0, len(sections))

	var extend func(from int)
	extend = func(from int) {
		for i := from; i < len(sections); i++ {
			next := sections[i]
			if !compatible(current, next) {
				continue
			}
			current = append(current, next)
			candidate := make([]Section, len(current))
			copy(candidate, current)
			candidates = append(candidates, candidate)
			extend(i + 1)
			current = current[:len(current)-1]
		}
	}
	extend(0)

	return candidates, nil
}

func compatible(chosen []Section, next Section) bool {
	for _, picked := range chosen {
		if picked.CourseID == next.CourseID {
			return false
		}
		if SectionsConflict(picked, next) {
			return false
		}
	}
	return true
}

// Valid re-checks a candidate against the subset rules. The enumerator only
// emits candidates for which this holds.
func Valid(candidate []Section) bool {
	for i := 0; i < len(candidate); i++ {
		for j := i + 1; j < len(candidate); j++ {
			if candidate[i].CourseID == candidate[j].CourseID {
				return false
			}
			if SectionsConflict(candidate[i], candidate[j]) {
				return false
			}
		}
	}
	return true
}
