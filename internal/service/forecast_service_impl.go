package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/gradecast/internal/app"
	"github.com/alexanderramin/gradecast/internal/catalog"
	"github.com/alexanderramin/gradecast/internal/domain"
	"github.com/alexanderramin/gradecast/internal/engine"
	"github.com/alexanderramin/gradecast/internal/repository"
)

type forecastService struct {
	grades    repository.GradeRepo
	overrides repository.GradeRepo
	prefs     repository.PreferencesRepo
	predictor *engine.Predictor
	observer  UseCaseObserver
}

func NewForecastService(
	grades repository.GradeRepo,
	overrides repository.GradeRepo,
	prefs repository.PreferencesRepo,
	observers ...UseCaseObserver,
) ForecastService {
	return &forecastService{
		grades:    grades,
		overrides: overrides,
		prefs:     prefs,
		predictor: engine.NewPredictor(catalog.DefaultAffinity()),
		observer:  useCaseObserverOrNoop(observers),
	}
}

// Forecast predicts every ungraded course of the program from the recorded
// history. Overrides replace predictions in the projected GPA but are never
// fed back to the predictor.
func (s *forecastService) Forecast(ctx context.Context, req app.ForecastRequest) (resp *app.ForecastResponse, err error) {
	uc := newUseCase("forecast", req.Program, req.Course)
	defer observe(ctx, s.observer, uc, time.Now(), &err)

	var prefs *domain.Preferences
	prefs, err = s.prefs.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading preferences: %w", err)
	}

	program := domain.Coalesce(req.Program, prefs.Program)
	if err = validateProgram(program); err != nil {
		return nil, err
	}
	if req.Level != nil && req.Level.Ordinal() == 0 {
		err = fmt.Errorf("%w: %q", ErrInvalidLevel, *req.Level)
		return nil, err
	}

	bias := domain.DerefOr(domain.Coalesce(prefs.Bias, engine.DefaultBias), req.Bias)
	if req.Bias != nil {
		if math.IsNaN(bias) || bias < engine.MinBias || bias > engine.MaxBias {
			err = &app.ForecastError{
				Code:    app.ForecastErrInvalidBias,
				Message: fmt.Sprintf("bias %v outside %.1f-%.1f", bias, engine.MinBias, engine.MaxBias),
			}
			return nil, err
		}
	}
	uc.program = program
	uc.fields["bias"] = bias

	var gradeRecs, overrideRecs []*domain.GradeRecord
	if gradeRecs, err = s.grades.ListByProgram(ctx, program); err != nil {
		return nil, fmt.Errorf("loading grades: %w", err)
	}
	if overrideRecs, err = s.overrides.ListByProgram(ctx, program); err != nil {
		return nil, fmt.Errorf("loading overrides: %w", err)
	}
	grades := gradeMap(gradeRecs)
	overrides := gradeMap(overrideRecs)

	var only string
	if req.Course != "" {
		var c domain.CatalogCourse
		if c, err = resolveCourse(program, req.Course); err != nil {
			return nil, err
		}
		if g, graded := grades[c.Name]; graded {
			err = &app.ForecastError{
				Code:    app.ForecastErrCourseGraded,
				Message: fmt.Sprintf("%q is already graded %s", c.Name, g),
			}
			return nil, err
		}
		only = c.Name
	}

	courses := catalog.Default().ProgramCourses(program)
	history := gradedHistory(courses, grades)

	resp = &app.ForecastResponse{Program: program, Bias: bias}
	if resp.Current, err = engine.Aggregate(history); err != nil {
		return nil, fmt.Errorf("aggregating %s: %w", program, err)
	}

	projected := append([]domain.GradedCourse(nil), history...)
	for _, c := range courses {
		if _, graded := grades[c.Name]; graded {
			continue
		}
		var pred engine.Prediction
		if pred, err = s.predictor.Predict(c, history, bias); err != nil {
			return nil, fmt.Errorf("forecasting %q: %w", c.Name, err)
		}
		f := app.CourseForecast{Course: c, Prediction: pred, Override: overrides[c.Name]}
		projected = append(projected, domain.GradedCourse{CatalogCourse: c, Grade: f.EffectiveGrade()})

		if req.Level != nil && c.Level != *req.Level {
			continue
		}
		if only != "" && c.Name != only {
			continue
		}
		resp.Forecasts = append(resp.Forecasts, f)
	}

	if resp.Projected, err = engine.Aggregate(projected); err != nil {
		return nil, fmt.Errorf("aggregating projection: %w", err)
	}
	uc.fields["forecasts"] = len(resp.Forecasts)
	uc.fields["projected_gpa"] = resp.Projected.GPA
	return resp, nil
}
