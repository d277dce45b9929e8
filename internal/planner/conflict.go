package planner

// overlaps reports whether two half-open intervals on the same day collide.
// Touching boundaries (a.End == b.Start) do not conflict.
func overlaps(aDay, aStart, aEnd, bDay, bStart, bEnd int) bool {
	if aDay != bDay {
		return false
	}
	return (aStart <= bStart && bStart < aEnd) || (bStart <= aStart && aStart < bEnd)
}

// SectionsConflict reports whether any pair of blocks across two sections overlap.
func SectionsConflict(a, b Section) bool {
	for _, ab := range a.Blocks {
		for _, bb := range b.Blocks {
			if overlaps(ab.Day, ab.Start, ab.End, bb.Day, bb.Start, bb.End) {
				return true
			}
		}
	}
	return false
}

// WithoutBlocked drops every section that has at least one block overlapping
// any of the student's busy windows. Sections are atomic: one clashing block
// removes the whole section.
func WithoutBlocked(sections []Section, windows []BusyWindow) []Section {
	if len(windows) == 0 {
		return sections
	}
	kept := make([]Section, 0, len(sections))
	for _, section := range sections {
		blocked := false
		for _, b := range section.Blocks {
			for _, w := range windows {
				if overlaps(b.Day, b.Start, b.End, w.Day, w.Start, w.End) {
					blocked = true
					break
				}
			}
			if blocked {
				break
			}
		}
		if !blocked {
			kept = append(kept, section)
		}
	}
	return kept
}
