package contract

import "github.com/alexanderramin/gradecast/internal/app"

type ForecastRequest = app.ForecastRequest

func NewForecastRequest() ForecastRequest {
	return app.NewForecastRequest()
}

type CourseForecast = app.CourseForecast

type ForecastResponse = app.ForecastResponse

type ForecastErrorCode = app.ForecastErrorCode

const (
	ForecastErrInvalidBias  ForecastErrorCode = app.ForecastErrInvalidBias
	ForecastErrCourseGraded ForecastErrorCode = app.ForecastErrCourseGraded
)

type ForecastError = app.ForecastError

type ImportResult = app.ImportResult
