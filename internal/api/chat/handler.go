package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ideasage/backend/internal/entity"
	"github.com/ideasage/backend/internal/pkg/logger"
	"github.com/ideasage/backend/internal/pkg/response"
	"github.com/ideasage/backend/internal/pkg/validator"
	"go.uber.org/zap"
)

type Handler struct {
	usecase ChatUsecase
}

func NewHandler(usecase ChatUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// ListAgents handles GET /agents
func (h *Handler) ListAgents(w http.ResponseWriter, r *http.Request) {
	agents := h.usecase.Agents()

	resp := make([]*entity.AgentResponse, 0, len(agents))
	for i := range agents {
		resp = append(resp, toAgentResponse(&agents[i]))
	}

	response.Success(w, resp)
}

// GetHistory handles GET /ideas/{idea_id}/chat/{agent_id}
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ideaID := chi.URLParam(r, "idea_id")
	agentID := entity.AgentID(chi.URLParam(r, "agent_id"))
	ctx := logger.AddFields(r.Context(),
		zap.String("idea_id", ideaID),
		zap.String("agent_id", string(agentID)),
		zap.String("action", "GetHistory"),
	)

	history, err := h.usecase.History(ctx, ideaID, agentID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	resp := make([]*entity.ChatMessageResponse, 0, len(history))
	for i := range history {
		resp = append(resp, toMessageResponse(&history[i]))
	}

	response.Success(w, resp)
}

// SendMessage handles POST /ideas/{idea_id}/chat/{agent_id}. The reply
// is delivered incrementally as plain text chunks; the connection stays
// open until the last chunk is flushed.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ideaID := chi.URLParam(r, "idea_id")
	agentID := entity.AgentID(chi.URLParam(r, "agent_id"))
	ctx := logger.AddFields(r.Context(),
		zap.String("idea_id", ideaID),
		zap.String("agent_id", string(agentID)),
		zap.String("action", "SendMessage"),
	)

	var req entity.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validator.ValidateSendMessage(&req); err != nil {
		ctxzap.Warn(ctx, "message validation failed", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	flusher, _ := w.(http.Flusher)
	started := false
	onChunk := func(chunk string) {
		if !started {
			started = true
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Header().Set("X-Accel-Buffering", "no")
			w.WriteHeader(http.StatusOK)
		}
		w.Write([]byte(chunk))
		if flusher != nil {
			flusher.Flush()
		}
	}

	if _, err := h.usecase.Send(ctx, ideaID, agentID, req.Message, onChunk); err != nil {
		if started {
			// Headers are gone; the truncated stream is the signal.
			ctxzap.Warn(ctx, "stream interrupted", zap.Error(err))
			return
		}
		h.handleUsecaseError(ctx, w, err)
	}
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrIdeaNotFound):
		ctxzap.Warn(ctx, "idea not found", zap.Error(err))
		response.Error(w, http.StatusNotFound, "idea not found")
	case errors.Is(err, entity.ErrBlankMessage):
		ctxzap.Warn(ctx, "blank message rejected", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, entity.ErrTurnInProgress):
		ctxzap.Warn(ctx, "turn already in progress", zap.Error(err))
		response.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, context.Canceled):
		// Client went away before the stream opened; nothing to send.
		ctxzap.Info(ctx, "request canceled")
	default:
		ctxzap.Error(ctx, "internal error", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
