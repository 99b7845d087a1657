package service

import (
	"context"

	"github.com/alexanderramin/gradecast/internal/app"
	"github.com/alexanderramin/gradecast/internal/domain"
)

// GradeBookService records grades and what-if overrides for one program at a
// time. Course names are matched case-insensitively against the curriculum.
type GradeBookService interface {
	SetGrade(ctx context.Context, program domain.Program, course string, grade domain.Grade) (*domain.GradeRecord, error)
	ClearGrade(ctx context.Context, program domain.Program, course string) error
	// ListGrades returns every curriculum course of the program in
	// curriculum order, with GradeNone where nothing is recorded.
	ListGrades(ctx context.Context, program domain.Program) ([]domain.GradedCourse, error)

	SetOverride(ctx context.Context, program domain.Program, course string, grade domain.Grade) (*domain.GradeRecord, error)
	ClearOverride(ctx context.Context, program domain.Program, course string) error
	ClearOverrides(ctx context.Context, program domain.Program) (int, error)
	ListOverrides(ctx context.Context, program domain.Program) ([]*domain.GradeRecord, error)
}

type StandingService interface {
	app.StandingUseCase
}

type ForecastService interface {
	app.ForecastUseCase
}

type PreferencesService interface {
	Get(ctx context.Context) (*domain.Preferences, error)
	SetProgram(ctx context.Context, p domain.Program) error
	SetLevel(ctx context.Context, l domain.Level) error
	SetBias(ctx context.Context, bias float64) error
}

// SnapshotService moves the whole grade book in and out as one JSON
// document. Imports replace only the programs the document lists.
type SnapshotService interface {
	app.ExportSnapshotUseCase
	app.ImportSnapshotUseCase
}
