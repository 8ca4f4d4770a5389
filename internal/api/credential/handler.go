package credential

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ideasage/backend/internal/entity"
	"github.com/ideasage/backend/internal/pkg/logger"
	"github.com/ideasage/backend/internal/pkg/response"
	"github.com/ideasage/backend/internal/pkg/validator"
	"go.uber.org/zap"
)

type Handler struct {
	store CredentialStore
}

func NewHandler(store CredentialStore) *Handler {
	return &Handler{store: store}
}

// SetCredential handles PUT /credential
func (h *Handler) SetCredential(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "SetCredential")

	var req entity.SetCredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validator.ValidateSetCredential(&req); err != nil {
		ctxzap.Warn(ctx, "credential validation failed", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.Set(ctx, req.APIKey); err != nil {
		ctxzap.Error(ctx, "failed to store credential", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	// The key itself is never logged.
	ctxzap.Info(ctx, "credential updated")
	response.Success(w, &entity.CredentialStatusResponse{Configured: true})
}

// GetCredentialStatus handles GET /credential. Only presence is
// reported; the stored key is never returned.
func (h *Handler) GetCredentialStatus(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GetCredentialStatus")

	_, err := h.store.Get(ctx)
	if err != nil && !errors.Is(err, entity.ErrCredentialMissing) {
		ctxzap.Error(ctx, "failed to read credential", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	response.Success(w, &entity.CredentialStatusResponse{Configured: err == nil})
}
