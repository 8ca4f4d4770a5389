package chat

import (
	"context"

	"github.com/ideasage/backend/internal/entity"
)

type ChatUsecase interface {
	Agents() []entity.Agent
	History(ctx context.Context, ideaID string, agentID entity.AgentID) ([]entity.ChatMessage, error)
	Send(ctx context.Context, ideaID string, agentID entity.AgentID, message string, onChunk func(string)) (*entity.ChatMessage, error)
}
