package service

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/alexanderramin/gradecast/internal/domain"
	"github.com/charmbracelet/log"
)

// UseCaseEvent describes one finished service call. Program and Course are
// empty when the use case is not tied to one.
type UseCaseEvent struct {
	Name      string
	Program   domain.Program
	Course    string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes service use-case events to w at or above level.
func NewLogUseCaseObserver(w io.Writer, level log.Level) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	handler := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           level,
		Prefix:          "gradecast",
	})
	return &logUseCaseObserver{logger: slog.New(handler)}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := make([]slog.Attr, 0, 6+len(event.Fields))
	attrs = append(attrs,
		slog.String("use_case", event.Name),
		slog.Int64("duration_ms", event.Duration.Milliseconds()),
		slog.Bool("success", event.Success),
	)
	if event.Program != "" {
		attrs = append(attrs, slog.String("program", string(event.Program)))
	}
	if event.Course != "" {
		attrs = append(attrs, slog.String("course", event.Course))
	}

	keys := make([]string, 0, len(event.Fields))
	for k := range event.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, event.Fields[k]))
	}

	level := slog.LevelInfo
	if event.Err != nil {
		level = slog.LevelError
		attrs = append(attrs, slog.String("error", event.Err.Error()))
	}
	o.logger.LogAttrs(ctx, level, "service_use_case", attrs...)
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}

// useCase names a service call and the grade-book entry it touched. Fields
// may be filled in while the call runs; observe reads them when it returns.
type useCase struct {
	name    string
	program domain.Program
	course  string
	fields  map[string]any
}

func newUseCase(name string, program domain.Program, course string) *useCase {
	return &useCase{name: name, program: program, course: course, fields: map[string]any{}}
}

// observe reports a finished use case. Call it deferred with a pointer to the
// named error result.
func observe(ctx context.Context, obs UseCaseObserver, uc *useCase, startedAt time.Time, err *error) {
	obs.ObserveUseCase(ctx, UseCaseEvent{
		Name:      uc.name,
		Program:   uc.program,
		Course:    uc.course,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   *err == nil,
		Err:       *err,
		Fields:    uc.fields,
	})
}
