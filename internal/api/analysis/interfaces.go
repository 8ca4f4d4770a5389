package analysis

import (
	"context"

	"github.com/ideasage/backend/internal/entity"
)

type AnalysisUsecase interface {
	Generate(ctx context.Context, ideaID string) (*entity.Analysis, *entity.Extraction, error)
	ForIdea(ctx context.Context, ideaID string) (*entity.Analysis, error)
	ExportReport(ctx context.Context, ideaID string, format entity.ReportFormat) (data []byte, contentType, filename string, err error)
}
