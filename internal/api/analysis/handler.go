package analysis

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ideasage/backend/internal/entity"
	"github.com/ideasage/backend/internal/pkg/logger"
	"github.com/ideasage/backend/internal/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	usecase AnalysisUsecase
}

func NewHandler(usecase AnalysisUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// GenerateAnalysis handles POST /ideas/{idea_id}/analysis
func (h *Handler) GenerateAnalysis(w http.ResponseWriter, r *http.Request) {
	ideaID := chi.URLParam(r, "idea_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("idea_id", ideaID),
		zap.String("action", "GenerateAnalysis"),
	)

	result, extraction, err := h.usecase.Generate(ctx, ideaID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Created(w, toGenerateResponse(result, extraction))
}

// GetAnalysis handles GET /ideas/{idea_id}/analysis
func (h *Handler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	ideaID := chi.URLParam(r, "idea_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("idea_id", ideaID),
		zap.String("action", "GetAnalysis"),
	)

	found, err := h.usecase.ForIdea(ctx, ideaID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, toAnalysisResponse(found))
}

// ExportAnalysis handles GET /ideas/{idea_id}/analysis/export?format=pdf
func (h *Handler) ExportAnalysis(w http.ResponseWriter, r *http.Request) {
	ideaID := chi.URLParam(r, "idea_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("idea_id", ideaID),
		zap.String("action", "ExportAnalysis"),
	)

	format := entity.ReportFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = entity.FormatMarkdown
	}
	if !format.IsValid() {
		ctxzap.Warn(ctx, "unsupported export format", zap.String("format", string(format)))
		response.Error(w, http.StatusBadRequest, "unsupported export format")
		return
	}

	data, contentType, filename, err := h.usecase.ExportReport(ctx, ideaID, format)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrIdeaNotFound):
		ctxzap.Warn(ctx, "idea not found", zap.Error(err))
		response.Error(w, http.StatusNotFound, "idea not found")
	case errors.Is(err, entity.ErrAnalysisNotFound):
		ctxzap.Warn(ctx, "analysis not found", zap.Error(err))
		response.Error(w, http.StatusNotFound, "analysis not found")
	case errors.Is(err, entity.ErrCredentialMissing):
		ctxzap.Warn(ctx, "credential not configured", zap.Error(err))
		response.Error(w, http.StatusPreconditionFailed, "api credential not configured")
	case errors.Is(err, entity.ErrUnknownFormat):
		ctxzap.Warn(ctx, "unsupported export format", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "unsupported export format")
	default:
		ctxzap.Error(ctx, "internal error", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
