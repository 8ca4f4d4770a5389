package entity

type SendMessageRequest struct {
	Message string `json:"message"`
}

type ChatMessageResponse struct {
	ID        string `json:"id"`
	IdeaID    string `json:"idea_id"`
	AgentID   string `json:"agent_id"`
	Content   string `json:"content"`
	IsUser    bool   `json:"is_user"`
	Timestamp string `json:"timestamp"`
}

type AgentResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
