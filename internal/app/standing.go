package app

import (
	"github.com/alexanderramin/gradecast/internal/domain"
	"github.com/alexanderramin/gradecast/internal/engine"
)

type StandingRequest struct {
	// Program defaults to the active program when empty.
	Program domain.Program
	// Level restricts the per-level breakdown. The overall figures always
	// cover the whole program.
	Level *domain.Level
}

func NewStandingRequest() StandingRequest {
	return StandingRequest{}
}

type LevelStanding struct {
	Level          domain.Level
	Stats          engine.Stats
	CourseCount    int
	GradedCount    int
	CatalogCredits int
	ProgressPct    float64
}

type StandingResponse struct {
	Program        domain.Program
	Overall        engine.Stats
	CatalogCredits int
	// ProgressPct is the share of catalog credits earned with a passing grade.
	ProgressPct float64
	Levels      []LevelStanding
}
