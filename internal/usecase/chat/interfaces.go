package chat

import (
	"context"

	"github.com/ideasage/backend/internal/entity"
)

// ChatGenerator is the slice of the generative connector used for
// persona-conditioned replies.
type ChatGenerator interface {
	GenerateChat(ctx context.Context, prompt *entity.ChatPrompt) (string, error)
}
