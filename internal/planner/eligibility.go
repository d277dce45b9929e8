package planner

// Eligible returns the sections whose course the student may legally take
// this term: the course is not already completed and every prerequisite is.
// Sections referencing a course missing from the catalog are skipped.
func (s *Snapshot) Eligible() []Section {
	eligible := make(map[string]bool, len(s.courses))
	for _, course := range s.courses {
		if s.Completed(course.ID) {
			continue
		}
		ok := true
		for _, prereq := range course.Prerequisites {
			if !s.Completed(prereq) {
				ok = false
				break
			}
		}
		eligible[course.ID] = ok
	}

	result := make([]Section, 0, len(s.sections))
	for _, section := range s.sections {
		if eligible[section.CourseID] {
			result = append(result, section)
		}
	}
	return result
}
