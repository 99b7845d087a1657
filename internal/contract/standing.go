package contract

import "github.com/alexanderramin/gradecast/internal/app"

type StandingRequest = app.StandingRequest

func NewStandingRequest() StandingRequest {
	return app.NewStandingRequest()
}

type LevelStanding = app.LevelStanding

type StandingResponse = app.StandingResponse
