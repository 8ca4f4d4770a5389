package idea

import (
	"context"

	"github.com/ideasage/backend/internal/entity"
)

type IdeaUsecase interface {
	Create(ctx context.Context, req *entity.CreateIdeaRequest) (*entity.Idea, error)
	List(ctx context.Context) ([]entity.Idea, error)
	Get(ctx context.Context, id string) (*entity.Idea, error)
	Delete(ctx context.Context, id string) error
	Dashboard(ctx context.Context) (*entity.DashboardResponse, error)
}

type DraftTracker interface {
	UpdateDescription(description string)
	SetTitle(title string)
	Snapshot() *entity.DraftResponse
}
