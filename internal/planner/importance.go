package planner

import (
	"fmt"

	"github.com/campusdesk/planner-api/internal/models"
	appErrors "github.com/campusdesk/planner-api/pkg/errors"
)

// unlockWeights computes, for every course, how many other courses become
// takeable (directly and transitively) once it is completed. The traversal
// runs over the reverse prerequisite graph (prerequisite -> dependents) with
// memoization; a course on its own traversal stack means the prerequisite
// data forms a cycle, which is a data error, not something to recurse into.
func unlockWeights(courses []models.Course) (map[string]int, error) {
	unlocks := make(map[string][]string)
	for _, course := range courses {
		for _, prereq := range course.Prerequisites {
			unlocks[prereq] = append(unlocks[prereq], course.ID)
		}
	}

	weights := make(map[string]int, len(courses))
	memo := make(map[string]int)
	onStack := make(map[string]bool)

	var visit func(id string) (int, error)
	visit = func(id string) (int, error) {
		if w, ok := memo[id]; ok {
			return w, nil
		}
		if onStack[id] {
			return 0, appErrors.Clone(appErrors.ErrCyclicPrerequisite, fmt.Sprintf("course %s participates in a prerequisite cycle", id))
		}
		onStack[id] = true
		defer delete(onStack, id)

		total := len(unlocks[id])
		for _, dependent := range unlocks[id] {
			w, err := visit(dependent)
			if err != nil {
				return 0, err
			}
			total += w
		}
		memo[id] = total
		return total, nil
	}

	for _, course := range courses {
		w, err := visit(course.ID)
		if err != nil {
			return nil, err
		}
		weights[course.ID] = w
	}
	return weights, nil
}
