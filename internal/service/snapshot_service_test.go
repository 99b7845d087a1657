package service

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/gradecast/internal/db"
	"github.com/alexanderramin/gradecast/internal/domain"
	"github.com/alexanderramin/gradecast/internal/importer"
	"github.com/alexanderramin/gradecast/internal/repository"
	"github.com/alexanderramin/gradecast/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) snapshots(uow db.UnitOfWork) SnapshotService {
	if uow == nil {
		uow = e.uow
	}
	return NewSnapshotService(e.grades, e.overrides, e.prefs, uow)
}

func TestSnapshot_Export(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedGrades(t, ds, map[string]domain.Grade{"English I": domain.GradeA, "English II": domain.GradeW})
	env.seedOverride(t, ds, "Programming in Python", domain.GradeS)
	require.NoError(t, NewPreferencesService(env.prefs).SetBias(ctx, 0.9))

	var buf bytes.Buffer
	require.NoError(t, env.snapshots(nil).Export(ctx, &buf))

	snap, err := importer.DecodeSnapshot(&buf)
	require.NoError(t, err)
	assert.Equal(t, importer.SnapshotVersion, snap.Version)
	assert.Equal(t, "data_science", snap.Program)
	assert.Equal(t, "foundation", snap.Level)
	require.NotNil(t, snap.Bias)
	assert.Equal(t, 0.9, *snap.Bias)
	assert.Equal(t, map[string]string{"English I": "A", "English II": "W"}, snap.Grades["data_science"])
	assert.Empty(t, snap.Grades["electronic_systems"])
	assert.Equal(t, map[string]string{"Programming in Python": "S"}, snap.Overrides["data_science"])
	assert.Empty(t, importer.ValidateSnapshot(snap))
}

func TestSnapshot_ExportImportRoundTrip(t *testing.T) {
	src := newTestEnv(t)
	ctx := context.Background()
	src.seedGrades(t, ds, map[string]domain.Grade{"English I": domain.GradeS, "Computational Thinking": domain.GradeB})
	src.seedGrades(t, domain.ProgramElectronicSystems, map[string]domain.Grade{"Digital Systems": domain.GradeC})
	src.seedOverride(t, ds, "English II", domain.GradeA)
	require.NoError(t, NewPreferencesService(src.prefs).SetProgram(ctx, domain.ProgramElectronicSystems))

	path := filepath.Join(t.TempDir(), "grades.json")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, src.snapshots(nil).Export(ctx, f))
	require.NoError(t, f.Close())

	dst := newTestEnv(t)
	res, err := dst.snapshots(nil).ImportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 3, res.GradeCount)
	assert.Equal(t, 1, res.OverrideCount)
	assert.Len(t, res.Programs, 2)

	for _, p := range domain.AllPrograms {
		want, err := src.grades.ListByProgram(ctx, p)
		require.NoError(t, err)
		got, err := dst.grades.ListByProgram(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, gradeMap(want), gradeMap(got), "program %s", p)
	}
	prefs, err := dst.prefs.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ProgramElectronicSystems, prefs.Program)
}

func TestSnapshot_ImportReplacesOnlyListedPrograms(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedGrades(t, ds, map[string]domain.Grade{"Programming in Python": domain.GradeE})
	env.seedGrades(t, domain.ProgramElectronicSystems, map[string]domain.Grade{"Digital Systems": domain.GradeC})

	snap, err := importer.DecodeSnapshot(strings.NewReader(
		`{"grades": {"data_science": {"English I": "B"}}, "overrides": {"data_science": {"English I": "S"}}}`))
	require.NoError(t, err)

	res, err := env.snapshots(nil).ImportSnapshot(ctx, snap)
	require.NoError(t, err)
	assert.Equal(t, 1, res.GradeCount)
	assert.Equal(t, 0, res.OverrideCount)
	assert.Equal(t, 1, res.SkippedOverrides)

	_, err = env.grades.Get(ctx, ds, "Programming in Python")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = env.grades.Get(ctx, domain.ProgramElectronicSystems, "Digital Systems")
	assert.NoError(t, err)

	prefs, err := env.prefs.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1.0, prefs.Bias, "absent preferences left alone")
}

func TestSnapshot_ImportInvalidWritesNothing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedGrades(t, ds, map[string]domain.Grade{"English I": domain.GradeA})

	snap, err := importer.DecodeSnapshot(strings.NewReader(
		`{"grades": {"data_science": {"English I": "Z", "Not A Course": "A"}}}`))
	require.NoError(t, err)

	_, err = env.snapshots(nil).ImportSnapshot(ctx, snap)
	require.ErrorIs(t, err, ErrInvalidSnapshot)
	assert.Contains(t, err.Error(), "Not A Course")
	assert.Contains(t, err.Error(), `unknown grade "Z"`)

	got, err := env.grades.Get(ctx, ds, "English I")
	require.NoError(t, err)
	assert.Equal(t, domain.GradeA, got.Grade)
}

func TestSnapshot_ImportRollsBackOnWriteFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedGrades(t, ds, map[string]domain.Grade{"English I": domain.GradeA, "English II": domain.GradeB})

	snap, err := importer.DecodeSnapshot(strings.NewReader(
		`{"grades": {"data_science": {"Computational Thinking": "S"}}}`))
	require.NoError(t, err)

	// Exec 1 and 2 clear the program, exec 3 is the first grade insert.
	injected := errors.New("injected failure")
	uow := &testutil.FailOnNthExecUoW{DB: env.db, FailOn: 3, Err: injected}

	_, err = env.snapshots(uow).ImportSnapshot(ctx, snap)
	require.ErrorIs(t, err, injected)

	list, err := env.grades.ListByProgram(ctx, ds)
	require.NoError(t, err)
	assert.Len(t, list, 2, "cleared grades restored by rollback")
}

func TestSnapshot_ImportFileMissing(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.snapshots(nil).ImportFile(context.Background(), filepath.Join(t.TempDir(), "none.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading snapshot file")
}
