package app

import (
	"context"
	"io"

	"github.com/alexanderramin/gradecast/internal/importer"
)

type StandingUseCase interface {
	GetStanding(ctx context.Context, req StandingRequest) (*StandingResponse, error)
}

type ForecastUseCase interface {
	Forecast(ctx context.Context, req ForecastRequest) (*ForecastResponse, error)
}

type ExportSnapshotUseCase interface {
	Export(ctx context.Context, w io.Writer) error
}

type ImportSnapshotUseCase interface {
	ImportFile(ctx context.Context, filePath string) (*ImportResult, error)
	ImportSnapshot(ctx context.Context, snap *importer.Snapshot) (*ImportResult, error)
}
