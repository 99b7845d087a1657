package app

import (
	"github.com/alexanderramin/gradecast/internal/domain"
	"github.com/alexanderramin/gradecast/internal/engine"
)

type ForecastRequest struct {
	Program domain.Program
	Level   *domain.Level
	// Bias overrides the configured and persisted bias when set.
	Bias *float64
	// Course limits the listed forecasts to a single course.
	Course string
}

func NewForecastRequest() ForecastRequest {
	return ForecastRequest{}
}

type CourseForecast struct {
	Course     domain.CatalogCourse
	Prediction engine.Prediction
	// Override is GradeNone unless the student pinned a what-if grade.
	Override domain.Grade
}

// EffectiveGrade is the override when present, otherwise the predicted grade.
func (f CourseForecast) EffectiveGrade() domain.Grade {
	if f.Override != domain.GradeNone {
		return f.Override
	}
	return f.Prediction.Grade
}

type ForecastResponse struct {
	Program domain.Program
	Bias    float64
	// Current aggregates the recorded grades only.
	Current engine.Stats
	// Projected aggregates recorded grades plus the effective grade of every
	// ungraded course in the program, regardless of the level filter.
	Projected engine.Stats
	Forecasts []CourseForecast
}

// Gain is the projected improvement over the current GPA, floored at zero.
func (r *ForecastResponse) Gain() float64 {
	if r.Projected.GPA <= r.Current.GPA {
		return 0
	}
	return engine.Round2(r.Projected.GPA - r.Current.GPA)
}

type ForecastErrorCode string

const (
	ForecastErrInvalidBias  ForecastErrorCode = "INVALID_BIAS"
	ForecastErrCourseGraded ForecastErrorCode = "COURSE_GRADED"
)

type ForecastError struct {
	Code    ForecastErrorCode
	Message string
}

func (e *ForecastError) Error() string {
	return string(e.Code) + ": " + e.Message
}
