package idea

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ideasage/backend/internal/entity"
	"github.com/ideasage/backend/internal/repository"
	"go.uber.org/zap"
)

// FallbackTitle is used whenever title generation cannot produce one.
// Title generation must never block or fail an idea submission.
const FallbackTitle = "My Startup Idea"

// Usecase implements idea lifecycle and the dashboard summary.
type Usecase struct {
	store  repository.CollectionStore
	titler TitleGenerator
	logger *zap.Logger
}

func NewUsecase(
	store repository.CollectionStore,
	titler TitleGenerator,
	logger *zap.Logger,
) *Usecase {
	return &Usecase{
		store:  store,
		titler: titler,
		logger: logger,
	}
}

// Create stores a new idea. A blank title is filled by a generated
// suggestion; any generation failure (missing credential, network,
// empty candidates) degrades to the fixed fallback title instead of
// surfacing an error.
func (uc *Usecase) Create(ctx context.Context, req *entity.CreateIdeaRequest) (*entity.Idea, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = uc.suggestTitle(ctx, req.Description)
	}

	idea := entity.Idea{
		ID:          uuid.New().String(),
		Title:       title,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := uc.store.SaveIdea(ctx, idea); err != nil {
		return nil, fmt.Errorf("save idea: %w", err)
	}

	ctxzap.Info(ctx, "idea created",
		zap.String("idea_id", idea.ID),
		zap.String("title", idea.Title),
	)

	return &idea, nil
}

func (uc *Usecase) List(ctx context.Context) ([]entity.Idea, error) {
	return uc.store.AllIdeas(ctx)
}

func (uc *Usecase) Get(ctx context.Context, id string) (*entity.Idea, error) {
	return uc.store.Idea(ctx, id)
}

// Delete removes the idea and everything derived from it.
func (uc *Usecase) Delete(ctx context.Context, id string) error {
	return uc.store.DeleteIdea(ctx, id)
}

// Dashboard summarizes the stored state: collection counts and the
// most recently created idea.
func (uc *Usecase) Dashboard(ctx context.Context) (*entity.DashboardResponse, error) {
	ideas, err := uc.store.AllIdeas(ctx)
	if err != nil {
		return nil, err
	}
	analyses, err := uc.store.AllAnalyses(ctx)
	if err != nil {
		return nil, err
	}

	resp := &entity.DashboardResponse{
		IdeaCount:     len(ideas),
		AnalysisCount: len(analyses),
	}

	var latest *entity.Idea
	for i := range ideas {
		if latest == nil || ideas[i].CreatedAt.After(latest.CreatedAt) {
			latest = &ideas[i]
		}
	}
	if latest != nil {
		resp.LatestIdea = &entity.IdeaResponse{
			ID:          latest.ID,
			Title:       latest.Title,
			Description: latest.Description,
			CreatedAt:   latest.CreatedAt.Format(time.RFC3339),
		}
	}

	return resp, nil
}

func (uc *Usecase) suggestTitle(ctx context.Context, description string) string {
	title, err := uc.titler.GenerateTitle(ctx, description)
	if err != nil || strings.TrimSpace(title) == "" {
		ctxzap.Info(ctx, "title generation unavailable, using fallback", zap.Error(err))
		return FallbackTitle
	}
	return title
}
