package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/gradecast/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// GradeRepo stores one grade per (program, course name). The same interface
// backs both recorded grades and what-if overrides.
type GradeRepo interface {
	Upsert(ctx context.Context, r *domain.GradeRecord) error
	Get(ctx context.Context, program domain.Program, course string) (*domain.GradeRecord, error)
	ListByProgram(ctx context.Context, program domain.Program) ([]*domain.GradeRecord, error)
	Delete(ctx context.Context, program domain.Program, course string) error
	DeleteByProgram(ctx context.Context, program domain.Program) (int, error)
}

type PreferencesRepo interface {
	Get(ctx context.Context) (*domain.Preferences, error)
	Upsert(ctx context.Context, p *domain.Preferences) error
}
