package planner

import (
	"math"
	"sort"
)

// Preferences weight the ranking heuristic.
type Preferences struct {
	DesiredWeeklyHours float64
	ReduceDays         bool
	PrioritizeUnlocks  bool
}

// dayCompactnessWeight is the bonus per free weekday when ReduceDays is set.
const dayCompactnessWeight = 3.5

// RankedSchedule is a scored candidate with its aggregate metrics.
type RankedSchedule struct {
	Sections    []Section
	Score       float64
	WeeklyHours float64
	DaysUsed    int
	UnlockSum   int
	Earliest    int
	Latest      int
}

// Rank scores every candidate and returns the topN best, ordered by
// descending score. The sort is stable: ties keep enumeration order.
func (s *Snapshot) Rank(candidates [][]Section, prefs Preferences, topN int) []RankedSchedule {
	ranked := make([]RankedSchedule, 0, len(candidates))
	for _, candidate := range candidates {
		ranked = append(ranked, s.scoreCandidate(candidate, prefs))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

func (s *Snapshot) scoreCandidate(candidate []Section, prefs Preferences) RankedSchedule {
	r := RankedSchedule{Sections: candidate}
	days := make(map[int]bool)
	for i, section := range candidate {
		m := s.Metrics(section.ID)
		r.WeeklyHours += m.WeeklyHours
		r.UnlockSum += s.UnlockWeight(section.CourseID)
		for day := range m.Days {
			days[day] = true
		}
		if i == 0 || m.Earliest < r.Earliest {
			r.Earliest = m.Earliest
		}
		if m.Latest > r.Latest {
			r.Latest = m.Latest
		}
	}
	r.DaysUsed = len(days)

	r.Score = -math.Abs(prefs.DesiredWeeklyHours - r.WeeklyHours)
	if prefs.ReduceDays {
		r.Score += float64(7-r.DaysUsed) * dayCompactnessWeight
	}
	if prefs.PrioritizeUnlocks {
		r.Score += float64(r.UnlockSum)
	}
	return r
}
