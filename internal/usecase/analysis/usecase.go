package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ideasage/backend/internal/entity"
	"github.com/ideasage/backend/internal/pkg/formatter"
	"github.com/ideasage/backend/internal/repository"
	"go.uber.org/zap"
)

// Usecase implements analysis generation, retrieval and export.
type Usecase struct {
	store      repository.CollectionStore
	gemini     GeminiConnector
	formatters *formatter.Factory
	logger     *zap.Logger
}

func NewUsecase(
	store repository.CollectionStore,
	gemini GeminiConnector,
	logger *zap.Logger,
) *Usecase {
	return &Usecase{
		store:      store,
		gemini:     gemini,
		formatters: formatter.NewFactory(),
		logger:     logger,
	}
}

// Generate requests a fresh analysis for the idea and upserts it,
// replacing any prior analysis for the same idea. Generation failures
// propagate and nothing is persisted: an analysis must never be
// half-written or silently wrong. The returned extraction tags parse
// quality so the caller can flag degraded results.
func (uc *Usecase) Generate(ctx context.Context, ideaID string) (*entity.Analysis, *entity.Extraction, error) {
	idea, err := uc.store.Idea(ctx, ideaID)
	if err != nil {
		return nil, nil, err
	}

	raw, err := uc.gemini.GenerateAnalysis(ctx, idea.Title, idea.Description)
	if err != nil {
		return nil, nil, err
	}

	extraction := ExtractFields(raw)
	if extraction.Degraded() {
		ctxzap.Warn(ctx, "structured analysis parse failed, fields recovered from text",
			zap.String("idea_id", ideaID),
			zap.Bool("low_confidence", extraction.LowConfidence()),
		)
	}

	result := entity.NewAnalysis(uuid.New().String(), ideaID, extraction.Fields, time.Now().UTC())
	if err := uc.store.SaveAnalysis(ctx, result); err != nil {
		return nil, nil, fmt.Errorf("save analysis: %w", err)
	}

	ctxzap.Info(ctx, "analysis saved",
		zap.String("idea_id", ideaID),
		zap.String("tier", string(extraction.Tier)),
	)

	return &result, extraction, nil
}

// ForIdea returns the stored analysis for an idea.
func (uc *Usecase) ForIdea(ctx context.Context, ideaID string) (*entity.Analysis, error) {
	return uc.store.AnalysisForIdea(ctx, ideaID)
}

// ExportReport renders the stored analysis as a downloadable document.
func (uc *Usecase) ExportReport(ctx context.Context, ideaID string, format entity.ReportFormat) ([]byte, string, string, error) {
	idea, err := uc.store.Idea(ctx, ideaID)
	if err != nil {
		return nil, "", "", err
	}
	stored, err := uc.store.AnalysisForIdea(ctx, ideaID)
	if err != nil {
		return nil, "", "", err
	}

	f, err := uc.formatters.Create(format)
	if err != nil {
		return nil, "", "", err
	}

	data, err := f.Format(buildReport(idea, stored))
	if err != nil {
		return nil, "", "", fmt.Errorf("render %s report: %w", format, err)
	}

	filename := fmt.Sprintf("analysis-%s%s", ideaID, f.FileExtension())

	ctxzap.Info(ctx, "analysis exported",
		zap.String("idea_id", ideaID),
		zap.String("format", string(format)),
		zap.Int("bytes", len(data)),
	)

	return data, f.ContentType(), filename, nil
}

// sectionHeadings are the human-readable titles for the seven fields,
// in canonical order.
var sectionHeadings = map[string]string{
	"problemAnalysis":     "Problem Analysis",
	"targetMarket":        "Target Market",
	"businessModel":       "Business Model",
	"legalConsiderations": "Legal Considerations",
	"growthStrategy":      "Growth Strategy",
	"competitorAnalysis":  "Competitor Analysis",
	"fundingRequirements": "Funding Requirements",
}

func buildReport(idea *entity.Idea, a *entity.Analysis) *formatter.Report {
	fields := a.FieldMap()
	sections := make([]formatter.Section, 0, len(entity.AnalysisFields))
	for _, name := range entity.AnalysisFields {
		sections = append(sections, formatter.Section{
			Heading: sectionHeadings[name],
			Body:    fields[name],
		})
	}
	return &formatter.Report{
		Title:    fmt.Sprintf("Startup Analysis: %s", idea.Title),
		Sections: sections,
	}
}
