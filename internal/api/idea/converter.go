package idea

import (
	"time"

	"github.com/ideasage/backend/internal/entity"
)

// toIdeaResponse converts Idea entity to IdeaResponse DTO
func toIdeaResponse(i *entity.Idea) *entity.IdeaResponse {
	return &entity.IdeaResponse{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		CreatedAt:   i.CreatedAt.Format(time.RFC3339),
	}
}
