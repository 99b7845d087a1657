package app

import "github.com/alexanderramin/gradecast/internal/domain"

type ImportResult struct {
	Programs      []domain.Program
	GradeCount    int
	OverrideCount int
	// SkippedOverrides counts overrides dropped because the course already
	// has a recorded grade.
	SkippedOverrides int
}
