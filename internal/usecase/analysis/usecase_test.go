package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ideasage/backend/internal/entity"
	"github.com/ideasage/backend/internal/repository"
	"go.uber.org/zap"
)

type fakeConnector struct {
	response string
	err      error
	calls    int
}

func (f *fakeConnector) GenerateAnalysis(_ context.Context, _, _ string) (string, error) {
	f.calls++
	return f.response, f.err
}

const structuredResponse = `{
  "problemAnalysis": "Real problem.",
  "targetMarket": "Everyone.",
  "businessModel": "SaaS.",
  "legalConsiderations": "None.",
  "growthStrategy": "Referrals.",
  "competitorAnalysis": "Crowded.",
  "fundingRequirements": "$1M."
}`

func seedIdea(t *testing.T, store repository.CollectionStore) entity.Idea {
	t.Helper()
	idea := entity.Idea{ID: "idea-1", Title: "Test Idea", Description: "A test idea"}
	if _, err := store.SaveIdea(context.Background(), idea); err != nil {
		t.Fatalf("SaveIdea: %v", err)
	}
	return idea
}

func TestGeneratePersistsAnalysis(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(repository.NewKVMemory(), zap.NewNop())
	idea := seedIdea(t, store)

	uc := NewUsecase(store, &fakeConnector{response: structuredResponse}, zap.NewNop())

	result, extraction, err := uc.Generate(ctx, idea.ID)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if extraction.Tier != entity.TierStructured {
		t.Errorf("Tier = %q, want structured", extraction.Tier)
	}
	if result.TargetMarket != "Everyone." {
		t.Errorf("TargetMarket = %q", result.TargetMarket)
	}

	stored, err := uc.ForIdea(ctx, idea.ID)
	if err != nil {
		t.Fatalf("ForIdea: %v", err)
	}
	if stored.ID != result.ID {
		t.Errorf("stored analysis id = %q, want %q", stored.ID, result.ID)
	}
}

func TestGenerateReplacesPriorAnalysis(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(repository.NewKVMemory(), zap.NewNop())
	idea := seedIdea(t, store)

	uc := NewUsecase(store, &fakeConnector{response: structuredResponse}, zap.NewNop())

	first, _, err := uc.Generate(ctx, idea.ID)
	if err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	second, _, err := uc.Generate(ctx, idea.ID)
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	if first.ID == second.ID {
		t.Error("regenerated analysis kept the old id")
	}

	all, err := store.AllAnalyses(ctx)
	if err != nil {
		t.Fatalf("AllAnalyses: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("store holds %d analyses, want 1 per idea", len(all))
	}
}

func TestGenerateFillsOmittedFields(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(repository.NewKVMemory(), zap.NewNop())
	idea := seedIdea(t, store)

	uc := NewUsecase(store, &fakeConnector{response: `{"problemAnalysis": "Only this."}`}, zap.NewNop())

	result, _, err := uc.Generate(ctx, idea.ID)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if result.TargetMarket != entity.AnalysisPending {
		t.Errorf("omitted TargetMarket = %q, want pending sentinel", result.TargetMarket)
	}
	if result.ProblemAnalysis != "Only this." {
		t.Errorf("ProblemAnalysis = %q", result.ProblemAnalysis)
	}
}

func TestGenerateErrorPersistsNothing(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(repository.NewKVMemory(), zap.NewNop())
	idea := seedIdea(t, store)

	genErr := errors.New("endpoint unavailable")
	uc := NewUsecase(store, &fakeConnector{err: genErr}, zap.NewNop())

	if _, _, err := uc.Generate(ctx, idea.ID); !errors.Is(err, genErr) {
		t.Fatalf("Generate error = %v, want the connector error", err)
	}

	if _, err := uc.ForIdea(ctx, idea.ID); !errors.Is(err, entity.ErrAnalysisNotFound) {
		t.Errorf("ForIdea after failed generation = %v, want ErrAnalysisNotFound", err)
	}
}

func TestGenerateUnknownIdea(t *testing.T) {
	store := repository.NewStore(repository.NewKVMemory(), zap.NewNop())
	conn := &fakeConnector{response: structuredResponse}
	uc := NewUsecase(store, conn, zap.NewNop())

	if _, _, err := uc.Generate(context.Background(), "missing"); !errors.Is(err, entity.ErrIdeaNotFound) {
		t.Fatalf("Generate error = %v, want ErrIdeaNotFound", err)
	}
	if conn.calls != 0 {
		t.Errorf("connector called %d times for unknown idea, want 0", conn.calls)
	}
}

func TestExportReportMarkdown(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(repository.NewKVMemory(), zap.NewNop())
	idea := seedIdea(t, store)

	uc := NewUsecase(store, &fakeConnector{response: structuredResponse}, zap.NewNop())
	if _, _, err := uc.Generate(ctx, idea.ID); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	data, contentType, filename, err := uc.ExportReport(ctx, idea.ID, entity.FormatMarkdown)
	if err != nil {
		t.Fatalf("ExportReport: %v", err)
	}
	if contentType != "text/markdown; charset=utf-8" {
		t.Errorf("contentType = %q", contentType)
	}
	if filename != "analysis-idea-1.md" {
		t.Errorf("filename = %q", filename)
	}
	body := string(data)
	if !strings.Contains(body, "# Startup Analysis: Test Idea") {
		t.Errorf("report missing title heading:\n%s", body)
	}
	if !strings.Contains(body, "## Target Market") || !strings.Contains(body, "Everyone.") {
		t.Errorf("report missing section content:\n%s", body)
	}
}

func TestExportReportWithoutAnalysis(t *testing.T) {
	store := repository.NewStore(repository.NewKVMemory(), zap.NewNop())
	idea := seedIdea(t, store)

	uc := NewUsecase(store, &fakeConnector{}, zap.NewNop())

	_, _, _, err := uc.ExportReport(context.Background(), idea.ID, entity.FormatMarkdown)
	if !errors.Is(err, entity.ErrAnalysisNotFound) {
		t.Errorf("ExportReport error = %v, want ErrAnalysisNotFound", err)
	}
}
