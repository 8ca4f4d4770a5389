package idea

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
	usecase IdeaUsecase
	draft   DraftTracker
}

func NewHandler(usecase IdeaUsecase, draft DraftTracker) *Handler {
	return &Handler{
		usecase: usecase,
		draft:   draft,
	}
}

// CreateIdea handles POST /ideas
func (h *Handler) CreateIdea(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CreateIdea")

	var req entity.CreateIdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validator.ValidateCreateIdea(&req); err != nil {
		ctxzap.Warn(ctx, "idea validation failed", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.usecase.Create(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Created(w, toIdeaResponse(created))
}

// ListIdeas handles GET /ideas
func (h *Handler) ListIdeas(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListIdeas")

	ideas, err := h.usecase.List(ctx)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	resp := make([]*entity.IdeaResponse, 0, len(ideas))
	for i := range ideas {
		resp = append(resp, toIdeaResponse(&ideas[i]))
	}

	ctxzap.Info(ctx, "ideas listed", zap.Int("count", len(resp)))
	response.Success(w, resp)
}

// GetIdea handles GET /ideas/{idea_id}
func (h *Handler) GetIdea(w http.ResponseWriter, r *http.Request) {
	ctx := logger.AddFields(r.Context(),
		zap.String("idea_id", chi.URLParam(r, "idea_id")),
		zap.String("action", "GetIdea"),
	)

	found, err := h.usecase.Get(ctx, chi.URLParam(r, "idea_id"))
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, toIdeaResponse(found))
}

// DeleteIdea handles DELETE /ideas/{idea_id}
func (h *Handler) DeleteIdea(w http.ResponseWriter, r *http.Request) {
	ctx := logger.AddFields(r.Context(),
		zap.String("idea_id", chi.URLParam(r, "idea_id")),
		zap.String("action", "DeleteIdea"),
	)

	if err := h.usecase.Delete(ctx, chi.URLParam(r, "idea_id")); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "idea deleted")
	response.NoContent(w)
}

// GetDashboard handles GET /dashboard
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GetDashboard")

	summary, err := h.usecase.Dashboard(ctx)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, summary)
}

// UpdateDraft handles PUT /ideas/draft
func (h *Handler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "UpdateDraft")

	var req entity.UpdateDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.draft.UpdateDescription(req.Description)
	response.Success(w, h.draft.Snapshot())
}

// GetDraft handles GET /ideas/draft
func (h *Handler) GetDraft(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.draft.Snapshot())
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrIdeaNotFound):
		ctxzap.Warn(ctx, "idea not found", zap.Error(err))
		response.Error(w, http.StatusNotFound, "idea not found")
	case errors.Is(err, entity.ErrMissingField):
		ctxzap.Warn(ctx, "invalid parameter", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
	default:
		ctxzap.Error(ctx, "internal error", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
