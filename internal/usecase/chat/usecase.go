package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ideasage/backend/internal/entity"
	"github.com/ideasage/backend/internal/pkg/stream"
	"github.com/ideasage/backend/internal/repository"
	"go.uber.org/zap"
)

// turnState tracks where a conversation is inside a single exchange.
type turnState string

const (
	stateIdle      turnState = "idle"
	stateAwaiting  turnState = "awaiting_response"
	stateStreaming turnState = "streaming"
)

// Usecase orchestrates per-(idea, agent) conversations. Each
// conversation admits one turn at a time: a turn moves through
// awaiting_response while the reply is generated, streaming while it is
// delivered, and back to idle. A second Send against a busy
// conversation is rejected rather than queued.
type Usecase struct {
	store     repository.CollectionStore
	generator ChatGenerator
	simulator *stream.Simulator
	logger    *zap.Logger

	mu    sync.Mutex
	turns map[string]turnState
}

func NewUsecase(
	store repository.CollectionStore,
	generator ChatGenerator,
	simulator *stream.Simulator,
	logger *zap.Logger,
) *Usecase {
	return &Usecase{
		store:     store,
		generator: generator,
		simulator: simulator,
		logger:    logger,
		turns:     make(map[string]turnState),
	}
}

// Agents returns the persona catalog in display order.
func (uc *Usecase) Agents() []entity.Agent {
	return entity.Agents
}

// History returns the conversation for an idea and agent, oldest first.
// An empty conversation is seeded with the agent's welcome message,
// which is persisted so every later read sees the same opening.
func (uc *Usecase) History(ctx context.Context, ideaID string, agentID entity.AgentID) ([]entity.ChatMessage, error) {
	idea, err := uc.store.Idea(ctx, ideaID)
	if err != nil {
		return nil, err
	}
	agent := entity.ResolveAgent(agentID)

	history, err := uc.store.ChatHistory(ctx, ideaID, agent.ID)
	if err != nil {
		return nil, err
	}
	if len(history) > 0 {
		return history, nil
	}

	welcome := entity.ChatMessage{
		ID:        uuid.New().String(),
		IdeaID:    ideaID,
		AgentID:   agent.ID,
		Content:   agent.WelcomeMessage(idea.Title),
		IsUser:    false,
		Timestamp: time.Now().UTC(),
	}
	if err := uc.store.SaveChatMessage(ctx, welcome); err != nil {
		return nil, fmt.Errorf("save welcome message: %w", err)
	}

	ctxzap.Info(ctx, "conversation opened",
		zap.String("idea_id", ideaID),
		zap.String("agent_id", string(agent.ID)),
	)

	return []entity.ChatMessage{welcome}, nil
}

// Send runs one full conversational turn: the user message is
// persisted, a reply is generated against the history that preceded it,
// and the reply is delivered through onChunk before being persisted
// with its delivery-completion timestamp. Generation failures degrade
// to an apology reply so the conversation never dead-ends; a canceled
// delivery persists nothing for the agent side and returns the context
// error.
func (uc *Usecase) Send(
	ctx context.Context,
	ideaID string,
	agentID entity.AgentID,
	message string,
	onChunk func(string),
) (*entity.ChatMessage, error) {
	if strings.TrimSpace(message) == "" {
		return nil, entity.ErrBlankMessage
	}

	idea, err := uc.store.Idea(ctx, ideaID)
	if err != nil {
		return nil, err
	}
	agent := entity.ResolveAgent(agentID)

	key := turnKey(ideaID, agent.ID)
	if err := uc.begin(ctx, key); err != nil {
		return nil, err
	}
	defer uc.finish(ctx, key)

	// History is captured before the new message is stored: the
	// generative request carries the prior turns, and the new message
	// rides separately as the prompt.
	history, err := uc.store.ChatHistory(ctx, ideaID, agent.ID)
	if err != nil {
		return nil, err
	}

	userMsg := entity.ChatMessage{
		ID:        uuid.New().String(),
		IdeaID:    ideaID,
		AgentID:   agent.ID,
		Content:   message,
		IsUser:    true,
		Timestamp: time.Now().UTC(),
	}
	if err := uc.store.SaveChatMessage(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("save user message: %w", err)
	}

	reply := uc.generateReply(ctx, idea, agent, history, message)

	uc.transition(ctx, key, stateStreaming)

	var agentMsg *entity.ChatMessage
	streamErr := uc.simulator.Run(ctx, reply, onChunk, func() {
		agentMsg = &entity.ChatMessage{
			ID:        uuid.New().String(),
			IdeaID:    ideaID,
			AgentID:   agent.ID,
			Content:   reply,
			IsUser:    false,
			Timestamp: time.Now().UTC(),
		}
	})
	if streamErr != nil {
		ctxzap.Info(ctx, "delivery canceled, reply discarded",
			zap.String("idea_id", ideaID),
			zap.String("agent_id", string(agent.ID)),
		)
		return nil, streamErr
	}

	if err := uc.store.SaveChatMessage(ctx, *agentMsg); err != nil {
		return nil, fmt.Errorf("save agent message: %w", err)
	}

	return agentMsg, nil
}

// generateReply asks the connector for a reply and substitutes an
// apology on any failure. The user message is already persisted by the
// time this runs, so the turn always produces a visible reply.
func (uc *Usecase) generateReply(
	ctx context.Context,
	idea *entity.Idea,
	agent entity.Agent,
	history []entity.ChatMessage,
	message string,
) string {
	turns := make([]entity.ChatTurn, 0, len(history))
	for _, m := range history {
		turns = append(turns, entity.ChatTurn{Content: m.Content, IsUser: m.IsUser})
	}

	reply, err := uc.generator.GenerateChat(ctx, &entity.ChatPrompt{
		IdeaTitle:       idea.Title,
		IdeaDescription: idea.Description,
		Agent:           agent,
		History:         turns,
		Message:         message,
	})
	if err != nil {
		ctxzap.Warn(ctx, "chat generation failed, sending apology",
			zap.String("idea_id", idea.ID),
			zap.String("agent_id", string(agent.ID)),
			zap.Error(err),
		)
		return fmt.Sprintf("I'm sorry, I encountered an error: %s. Please try again.", err)
	}
	return reply
}

func (uc *Usecase) begin(ctx context.Context, key string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if state, ok := uc.turns[key]; ok && state != stateIdle {
		return entity.ErrTurnInProgress
	}
	uc.turns[key] = stateAwaiting
	ctxzap.Info(ctx, "turn state changed",
		zap.String("conversation", key),
		zap.String("state", string(stateAwaiting)),
	)
	return nil
}

func (uc *Usecase) transition(ctx context.Context, key string, next turnState) {
	uc.mu.Lock()
	uc.turns[key] = next
	uc.mu.Unlock()

	ctxzap.Info(ctx, "turn state changed",
		zap.String("conversation", key),
		zap.String("state", string(next)),
	)
}

func (uc *Usecase) finish(ctx context.Context, key string) {
	uc.transition(ctx, key, stateIdle)
}

func turnKey(ideaID string, agentID entity.AgentID) string {
	return ideaID + "/" + string(agentID)
}
