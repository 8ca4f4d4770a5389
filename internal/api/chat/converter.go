package chat

import (
	"time"

	"github.com/ideasage/backend/internal/entity"
)

// toMessageResponse converts ChatMessage entity to ChatMessageResponse DTO
func toMessageResponse(m *entity.ChatMessage) *entity.ChatMessageResponse {
	return &entity.ChatMessageResponse{
		ID:        m.ID,
		IdeaID:    m.IdeaID,
		AgentID:   string(m.AgentID),
		Content:   m.Content,
		IsUser:    m.IsUser,
		Timestamp: m.Timestamp.Format(time.RFC3339),
	}
}

// toAgentResponse converts Agent entity to AgentResponse DTO. The
// persona text stays server-side.
func toAgentResponse(a *entity.Agent) *entity.AgentResponse {
	return &entity.AgentResponse{
		ID:          string(a.ID),
		Name:        a.Name,
		Description: a.Description,
	}
}
