package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/gradecast/internal/domain"
	"github.com/alexanderramin/gradecast/internal/repository"
	"github.com/alexanderramin/gradecast/internal/service"
	"github.com/alexanderramin/gradecast/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(db)

	gradeRepo := repository.NewSQLiteGradeRepo(db)
	overrideRepo := repository.NewSQLiteOverrideRepo(db)
	prefsRepo := repository.NewSQLitePreferencesRepo(db)

	return &App{
		GradeBook:   service.NewGradeBookService(gradeRepo, overrideRepo, uow),
		Standing:    service.NewStandingService(gradeRepo, prefsRepo),
		Forecast:    service.NewForecastService(gradeRepo, overrideRepo, prefsRepo),
		Preferences: service.NewPreferencesService(prefsRepo),
		Snapshots:   service.NewSnapshotService(gradeRepo, overrideRepo, prefsRepo, uow),
	}
}

func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func mustExecute(t *testing.T, app *App, args ...string) string {
	t.Helper()
	out, err := executeCmd(t, app, args...)
	require.NoError(t, err, "gradecast %v", args)
	return out
}

// --- grade ---

func TestGradeCmd_SetAndList(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "grade", "set", "english i", "s")
	assert.Contains(t, out, "English I")

	out = mustExecute(t, app, "grade", "list")
	assert.Contains(t, out, "English I")
	assert.Contains(t, out, "Programming in Python")

	graded, err := app.GradeBook.ListGrades(context.Background(), domain.ProgramDataScience)
	require.NoError(t, err)
	assert.Equal(t, domain.GradeS, graded[0].Grade)
}

func TestGradeCmd_UnknownCourse(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "grade", "set", "Underwater Basket Weaving", "A")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrUnknownCourse)
}

func TestGradeCmd_InvalidGrade(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "grade", "set", "English I", "F")
	assert.Error(t, err)
}

func TestGradeCmd_MissingGradeWhenNotInteractive(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "grade", "set", "English I")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grade is required")
}

func TestGradeCmd_PicksGradeInteractively(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return true }
	var asked string
	app.PickGrade = func(course string) (domain.Grade, error) {
		asked = course
		return domain.GradeB, nil
	}

	mustExecute(t, app, "grade", "set", "English I")
	assert.Equal(t, "English I", asked)

	graded, err := app.GradeBook.ListGrades(context.Background(), domain.ProgramDataScience)
	require.NoError(t, err)
	assert.Equal(t, domain.GradeB, graded[0].Grade)
}

func TestGradeCmd_Clear(t *testing.T) {
	app := testApp(t)
	mustExecute(t, app, "grade", "set", "English I", "A")

	out := mustExecute(t, app, "grade", "clear", "English I")
	assert.Contains(t, out, "cleared")

	graded, err := app.GradeBook.ListGrades(context.Background(), domain.ProgramDataScience)
	require.NoError(t, err)
	assert.Equal(t, domain.GradeNone, graded[0].Grade)
}

// --- override ---

func TestOverrideCmd_RejectsGradedCourse(t *testing.T) {
	app := testApp(t)
	mustExecute(t, app, "grade", "set", "English I", "A")

	_, err := executeCmd(t, app, "override", "set", "English I", "S")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrUngradedOnly)
}

func TestOverrideCmd_SetListClear(t *testing.T) {
	app := testApp(t)

	mustExecute(t, app, "override", "set", "English II", "S")
	mustExecute(t, app, "override", "set", "Programming in Python", "A")

	out := mustExecute(t, app, "override")
	assert.Contains(t, out, "English II")
	assert.Contains(t, out, "Programming in Python")

	mustExecute(t, app, "override", "clear", "English II")
	out = mustExecute(t, app, "override", "clear")
	assert.Contains(t, out, "cleared 1 override(s)")

	out = mustExecute(t, app, "override")
	assert.Contains(t, out, "No overrides")
}

func TestOverrideCmd_RejectsNonPassingGrade(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "override", "set", "English II", "U")
	assert.Error(t, err)
}

// --- standing / forecast ---

func TestStandingCmd_ShowsGPA(t *testing.T) {
	app := testApp(t)
	mustExecute(t, app, "grade", "set", "English I", "S")
	mustExecute(t, app, "grade", "set", "Mathematics for Data Science I", "A")

	// (40 + 36) / 8
	out := mustExecute(t, app, "standing")
	assert.Contains(t, out, "9.50")
	assert.Contains(t, out, "Foundation")
}

func TestStandingCmd_LevelFilter(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "standing", "--level", "diploma")
	assert.Contains(t, out, "Diploma")
	assert.NotContains(t, out, "Foundation")

	_, err := executeCmd(t, app, "standing", "--level", "masters")
	assert.Error(t, err)
}

func TestForecastCmd_ListsUngradedCourses(t *testing.T) {
	app := testApp(t)
	mustExecute(t, app, "grade", "set", "English I", "S")

	out := mustExecute(t, app, "forecast", "--level", "foundation")
	assert.Contains(t, out, "English II")
	assert.Contains(t, out, "Programming in Python")
}

func TestForecastCmd_SingleCourseShowsInfluencers(t *testing.T) {
	app := testApp(t)
	mustExecute(t, app, "grade", "set", "English I", "S")

	out := mustExecute(t, app, "forecast", "--course", "english ii")
	assert.Contains(t, out, "English II")
	assert.Contains(t, out, "Influenced by")
	assert.Contains(t, out, "English I")
	assert.Contains(t, out, "100%")
}

func TestForecastCmd_GradedCourseRejected(t *testing.T) {
	app := testApp(t)
	mustExecute(t, app, "grade", "set", "English I", "S")

	_, err := executeCmd(t, app, "forecast", "--course", "English I")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COURSE_GRADED")
}

func TestForecastCmd_BiasOutOfRange(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "forecast", "--bias", "1.5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "between 0.8 and 1.2")

	_, err = executeCmd(t, app, "forecast", "--bias", "lots")
	assert.Error(t, err)
}

func TestForecastCmd_ConfigBiasUsedWithoutFlag(t *testing.T) {
	app := testApp(t)
	app.Bias = 0.8

	out := mustExecute(t, app, "forecast", "--course", "English I")
	assert.Contains(t, out, "0.80")
	assert.Contains(t, out, "Conservative")

	out = mustExecute(t, app, "forecast", "--course", "English I", "--bias", "1.2")
	assert.Contains(t, out, "1.20")
	assert.Contains(t, out, "Optimistic")
}

// --- preferences ---

func TestProgramCmd_ShowAndSwitch(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "program")
	assert.Contains(t, out, "Data Science")

	mustExecute(t, app, "program", "es")
	prefs, err := app.Preferences.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ProgramElectronicSystems, prefs.Program)

	out = mustExecute(t, app, "program")
	assert.Contains(t, out, "Electronic Systems")

	_, err = executeCmd(t, app, "program", "law")
	assert.Error(t, err)
}

func TestProgramFlag_OverridesPerInvocation(t *testing.T) {
	app := testApp(t)

	mustExecute(t, app, "--program", "es", "grade", "set", "Introduction to Programming", "A")

	es, err := app.GradeBook.ListGrades(context.Background(), domain.ProgramElectronicSystems)
	require.NoError(t, err)
	assert.Equal(t, domain.GradeA, es[3].Grade)

	prefs, err := app.Preferences.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ProgramDataScience, prefs.Program)
}

func TestBiasCmd_ShowAndSet(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "bias")
	assert.Contains(t, out, "1.00")
	assert.Contains(t, out, "Balanced")

	mustExecute(t, app, "bias", "1.1")
	out = mustExecute(t, app, "bias")
	assert.Contains(t, out, "1.10")
	assert.Contains(t, out, "Optimistic")

	_, err := executeCmd(t, app, "bias", "0.5")
	assert.Error(t, err)
}

func TestLevelCmd_DrivesCatalog(t *testing.T) {
	app := testApp(t)

	out := mustExecute(t, app, "catalog")
	assert.Contains(t, out, "English I")
	assert.NotContains(t, out, "Database Management Systems")

	mustExecute(t, app, "level", "diploma")
	out = mustExecute(t, app, "catalog")
	assert.Contains(t, out, "Database Management Systems")
	assert.NotContains(t, out, "Programming in Python")

	out = mustExecute(t, app, "catalog", "--all")
	assert.Contains(t, out, "English I")
	assert.Contains(t, out, "Database Management Systems")
	assert.Contains(t, out, "114 credits")
}

// --- snapshots ---

func TestSnapshotCmds_RoundTrip(t *testing.T) {
	src := testApp(t)
	mustExecute(t, src, "grade", "set", "English I", "S")
	mustExecute(t, src, "override", "set", "English II", "A")
	mustExecute(t, src, "--program", "es", "grade", "set", "English I", "B")

	path := filepath.Join(t.TempDir(), "snapshot.json")
	out := mustExecute(t, src, "export", path)
	assert.Contains(t, out, path)

	dst := testApp(t)
	out = mustExecute(t, dst, "import", path)
	assert.Contains(t, out, "imported 2 grade(s) and 1 override(s)")

	ctx := context.Background()
	ds, err := dst.GradeBook.ListGrades(ctx, domain.ProgramDataScience)
	require.NoError(t, err)
	assert.Equal(t, domain.GradeS, ds[0].Grade)

	overrides, err := dst.GradeBook.ListOverrides(ctx, domain.ProgramDataScience)
	require.NoError(t, err)
	require.Len(t, overrides, 1)
	assert.Equal(t, "English II", overrides[0].CourseName)
}

func TestExportCmd_Stdout(t *testing.T) {
	app := testApp(t)
	mustExecute(t, app, "grade", "set", "English I", "S")

	out := mustExecute(t, app, "export")
	assert.Contains(t, out, `"English I": "S"`)
	assert.Contains(t, out, `"data_science"`)
}

func TestImportCmd_RejectsInvalidSnapshot(t *testing.T) {
	app := testApp(t)
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"grades":{"data_science":{"Alchemy":"S"}}}`), 0o644))

	_, err := executeCmd(t, app, "import", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrInvalidSnapshot)
}
