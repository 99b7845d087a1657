package engine

import "sort"

// RankByWeight returns a copy of scored ordered by weight, highest first.
// Equal weights keep their input order.
func RankByWeight(scored []ScoredCourse) []ScoredCourse {
	ranked := make([]ScoredCourse, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Weight > ranked[j].Weight
	})
	return ranked
}
