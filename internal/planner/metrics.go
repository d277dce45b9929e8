package planner

// SectionMetrics are derived once per section and cached on the snapshot.
type SectionMetrics struct {
	WeeklyHours float64
	Days        map[int]bool
	Earliest    int
	Latest      int
}

func computeMetrics(section Section) SectionMetrics {
	m := SectionMetrics{Days: make(map[int]bool, len(section.Blocks))}
	for i, b := range section.Blocks {
		m.WeeklyHours += float64(b.End-b.Start) / 60.0
		m.Days[b.Day] = true
		if i == 0 || b.Start < m.Earliest {
			m.Earliest = b.Start
		}
		if b.End > m.Latest {
			m.Latest = b.End
		}
	}
	return m
}
