package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/gradecast/internal/app"
	"github.com/alexanderramin/gradecast/internal/catalog"
	"github.com/alexanderramin/gradecast/internal/domain"
	"github.com/alexanderramin/gradecast/internal/engine"
	"github.com/alexanderramin/gradecast/internal/repository"
)

type standingService struct {
	grades   repository.GradeRepo
	prefs    repository.PreferencesRepo
	observer UseCaseObserver
}

func NewStandingService(grades repository.GradeRepo, prefs repository.PreferencesRepo, observers ...UseCaseObserver) StandingService {
	return &standingService{grades: grades, prefs: prefs, observer: useCaseObserverOrNoop(observers)}
}

func (s *standingService) GetStanding(ctx context.Context, req app.StandingRequest) (resp *app.StandingResponse, err error) {
	uc := newUseCase("standing", req.Program, "")
	defer observe(ctx, s.observer, uc, time.Now(), &err)

	program, err := resolveProgram(ctx, s.prefs, req.Program)
	if err != nil {
		return nil, err
	}
	uc.program = program
	if req.Level != nil && req.Level.Ordinal() == 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLevel, *req.Level)
	}

	records, err := s.grades.ListByProgram(ctx, program)
	if err != nil {
		return nil, fmt.Errorf("loading grades: %w", err)
	}
	grades := gradeMap(records)

	cat := catalog.Default()
	overall, err := engine.Aggregate(gradedHistory(cat.ProgramCourses(program), grades))
	if err != nil {
		return nil, fmt.Errorf("aggregating %s: %w", program, err)
	}

	resp = &app.StandingResponse{
		Program:        program,
		Overall:        overall,
		CatalogCredits: cat.TotalCredits(program),
	}
	resp.ProgressPct = progressPct(overall.TotalCredits, resp.CatalogCredits)

	for _, level := range domain.AllLevels {
		if req.Level != nil && *req.Level != level {
			continue
		}
		courses := cat.Courses(program, level)
		history := gradedHistory(courses, grades)
		stats, err := engine.Aggregate(history)
		if err != nil {
			return nil, fmt.Errorf("aggregating %s: %w", level.Label(), err)
		}
		credits := sumCredits(courses)
		resp.Levels = append(resp.Levels, app.LevelStanding{
			Level:          level,
			Stats:          stats,
			CourseCount:    len(courses),
			GradedCount:    len(history),
			CatalogCredits: credits,
			ProgressPct:    progressPct(stats.TotalCredits, credits),
		})
	}

	uc.fields["gpa"] = overall.GPA
	uc.fields["credits"] = overall.TotalCredits
	return resp, nil
}
