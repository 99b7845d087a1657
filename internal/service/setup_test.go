package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/gradecast/internal/db"
	"github.com/alexanderramin/gradecast/internal/domain"
	"github.com/alexanderramin/gradecast/internal/repository"
	"github.com/alexanderramin/gradecast/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db        *sql.DB
	uow       db.UnitOfWork
	grades    repository.GradeRepo
	overrides repository.GradeRepo
	prefs     repository.PreferencesRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &testEnv{
		db:        database,
		uow:       testutil.NewTestUoW(database),
		grades:    repository.NewSQLiteGradeRepo(database),
		overrides: repository.NewSQLiteOverrideRepo(database),
		prefs:     repository.NewSQLitePreferencesRepo(database),
	}
}

func (e *testEnv) gradeBook() GradeBookService {
	return NewGradeBookService(e.grades, e.overrides, e.uow)
}

// seedGrades writes grades straight through the repository.
func (e *testEnv) seedGrades(t *testing.T, program domain.Program, grades map[string]domain.Grade) {
	t.Helper()
	ctx := context.Background()
	for name, g := range grades {
		require.NoError(t, e.grades.Upsert(ctx, testutil.NewTestRecord(program, name, g)))
	}
}

func (e *testEnv) seedOverride(t *testing.T, program domain.Program, course string, g domain.Grade) {
	t.Helper()
	require.NoError(t, e.overrides.Upsert(context.Background(), testutil.NewTestRecord(program, course, g)))
}

func levelPtr(l domain.Level) *domain.Level { return &l }

func floatPtr(f float64) *float64 { return &f }
