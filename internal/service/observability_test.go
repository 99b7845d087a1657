package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/gradecast/internal/app"
	"github.com/alexanderramin/gradecast/internal/domain"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func TestLogUseCaseObserver_WritesEvent(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, log.InfoLevel)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "set-grade",
		Program:  domain.ProgramDataScience,
		Course:   "English I",
		Duration: 3 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"grade": "A"},
	})

	out := buf.String()
	assert.Contains(t, out, "service_use_case")
	assert.Contains(t, out, "set-grade")
	assert.Contains(t, out, "program=data_science")
	assert.Contains(t, out, "English I")
	assert.Contains(t, out, "grade=A")
}

func TestLogUseCaseObserver_OmitsEmptyScope(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, log.InfoLevel)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "import-snapshot", Success: true})

	assert.NotContains(t, buf.String(), "program=")
	assert.NotContains(t, buf.String(), "course=")
}

func TestLogUseCaseObserver_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, log.ErrorLevel)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "forecast", Success: true})
	assert.Empty(t, buf.String())

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "forecast", Err: errors.New("boom")})
	assert.Contains(t, buf.String(), "boom")
}

func TestLogUseCaseObserver_NilWriterIsNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil, log.InfoLevel))
}

func TestGradeBook_ReportsUseCases(t *testing.T) {
	env := newTestEnv(t)
	rec := &recordingObserver{}
	svc := NewGradeBookService(env.grades, env.overrides, env.uow, rec)
	ctx := context.Background()

	_, err := svc.SetGrade(ctx, ds, "English I", domain.GradeA)
	require.NoError(t, err)
	_, err = svc.SetGrade(ctx, ds, "Nope", domain.GradeA)
	require.Error(t, err)

	require.Len(t, rec.events, 2)
	assert.Equal(t, "set-grade", rec.events[0].Name)
	assert.True(t, rec.events[0].Success)
	assert.Equal(t, domain.ProgramDataScience, rec.events[0].Program)
	assert.Equal(t, "English I", rec.events[0].Course)
	assert.Equal(t, "A", rec.events[0].Fields["grade"])
	assert.False(t, rec.events[1].Success)
	assert.ErrorIs(t, rec.events[1].Err, ErrUnknownCourse)
}

func TestGradeBook_ReportsOverrideClears(t *testing.T) {
	env := newTestEnv(t)
	rec := &recordingObserver{}
	svc := NewGradeBookService(env.grades, env.overrides, env.uow, rec)
	ctx := context.Background()
	env.seedOverride(t, ds, "English II", domain.GradeS)

	require.NoError(t, svc.ClearOverride(ctx, ds, "english ii"))
	require.Error(t, svc.ClearOverride(ctx, ds, "Nope"))

	require.Len(t, rec.events, 2)
	assert.Equal(t, "clear-override", rec.events[0].Name)
	assert.True(t, rec.events[0].Success)
	assert.Equal(t, "english ii", rec.events[0].Course)
	assert.ErrorIs(t, rec.events[1].Err, ErrUnknownCourse)
}

func TestStanding_ReportsUseCase(t *testing.T) {
	env := newTestEnv(t)
	env.seedGrades(t, ds, map[string]domain.Grade{"English I": domain.GradeS})
	rec := &recordingObserver{}
	svc := NewStandingService(env.grades, env.prefs, rec)

	_, err := svc.GetStanding(context.Background(), app.NewStandingRequest())
	require.NoError(t, err)

	require.Len(t, rec.events, 1)
	ev := rec.events[0]
	assert.Equal(t, "standing", ev.Name)
	assert.Equal(t, ds, ev.Program, "resolved from preferences")
	assert.Equal(t, 10.0, ev.Fields["gpa"])
	assert.Equal(t, 4, ev.Fields["credits"])
}
