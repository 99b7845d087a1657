// Package engine computes cumulative grade-point averages and forecasts
// grades for courses not yet taken. Every function is pure and safe for
// concurrent use.
package engine

import (
	"math"

	"github.com/alexanderramin/gradecast/internal/domain"
)

// Stats summarises the contributing courses of a record.
type Stats struct {
	GPA               float64
	TotalCredits      int
	TotalPoints       int
	ContributingCount int
}

// Aggregate reduces graded courses to GPA and totals. Only contributing
// grades (S through E) count; administrative and absent grades are skipped.
// Points and credits are summed as integers, so the result does not depend
// on input order. Empty input yields zero Stats.
func Aggregate(courses []domain.GradedCourse) (Stats, error) {
	if err := ValidateCourses(courses); err != nil {
		return Stats{}, err
	}

	var stats Stats
	for _, c := range courses {
		if !c.Grade.Contributing() {
			continue
		}
		stats.TotalPoints += c.Grade.Points() * c.Credits
		stats.TotalCredits += c.Credits
		stats.ContributingCount++
	}
	if stats.TotalCredits > 0 {
		stats.GPA = Round2(float64(stats.TotalPoints) / float64(stats.TotalCredits))
	}
	return stats, nil
}

// Round2 rounds to two decimals, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func contributing(courses []domain.GradedCourse) []domain.GradedCourse {
	out := make([]domain.GradedCourse, 0, len(courses))
	for _, c := range courses {
		if c.Grade.Contributing() {
			out = append(out, c)
		}
	}
	return out
}
