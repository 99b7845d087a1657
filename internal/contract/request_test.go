package contract

import (
	"testing"

	"github.com/alexanderramin/gradecast/internal/domain"
	"github.com/alexanderramin/gradecast/internal/engine"
	"github.com/stretchr/testify/assert"
)

func TestNewStandingRequest_Defaults(t *testing.T) {
	req := NewStandingRequest()
	assert.Equal(t, domain.Program(""), req.Program)
	assert.Nil(t, req.Level)
}

func TestNewForecastRequest_Defaults(t *testing.T) {
	req := NewForecastRequest()
	assert.Nil(t, req.Bias)
	assert.Nil(t, req.Level)
	assert.Empty(t, req.Course)
}

func TestCourseForecast_EffectiveGradePrefersOverride(t *testing.T) {
	f := CourseForecast{Prediction: engine.Prediction{Grade: domain.GradeC}}
	assert.Equal(t, domain.GradeC, f.EffectiveGrade())

	f.Override = domain.GradeS
	assert.Equal(t, domain.GradeS, f.EffectiveGrade())
}

func TestForecastResponse_GainFlooredAtZero(t *testing.T) {
	r := &ForecastResponse{
		Current:   engine.Stats{GPA: 8.2},
		Projected: engine.Stats{GPA: 8.55},
	}
	assert.Equal(t, 0.35, r.Gain())

	r.Projected.GPA = 7.9
	assert.Equal(t, 0.0, r.Gain())
}

func TestForecastError_Message(t *testing.T) {
	err := &ForecastError{Code: ForecastErrInvalidBias, Message: "bias 2 outside 0.8-1.2"}
	assert.Equal(t, "INVALID_BIAS: bias 2 outside 0.8-1.2", err.Error())
}
