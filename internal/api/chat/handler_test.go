package chat

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/ideasage/backend/internal/entity"
)

type fakeUsecase struct {
	sendErr error
	reply   string
	history []entity.ChatMessage
}

func (f *fakeUsecase) Agents() []entity.Agent { return entity.Agents }

func (f *fakeUsecase) History(_ context.Context, _ string, _ entity.AgentID) ([]entity.ChatMessage, error) {
	return f.history, nil
}

func (f *fakeUsecase) Send(_ context.Context, _ string, _ entity.AgentID, _ string, onChunk func(string)) (*entity.ChatMessage, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	for _, word := range strings.Fields(f.reply) {
		onChunk(word + " ")
	}
	return &entity.ChatMessage{Content: f.reply}, nil
}

func newTestRouter(uc ChatUsecase) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(uc))
	return r
}

func TestSendMessageStreamsChunks(t *testing.T) {
	router := newTestRouter(&fakeUsecase{reply: "hello streaming world"})

	req := httptest.NewRequest(http.MethodPost, "/ideas/idea-1/chat/pitch/",
		strings.NewReader(`{"message": "hi"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q", ct)
	}
	if got := rec.Body.String(); got != "hello streaming world " {
		t.Errorf("body = %q", got)
	}
}

func TestSendMessageTurnConflict(t *testing.T) {
	router := newTestRouter(&fakeUsecase{sendErr: entity.ErrTurnInProgress})

	req := httptest.NewRequest(http.MethodPost, "/ideas/idea-1/chat/pitch/",
		strings.NewReader(`{"message": "hi"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestSendMessageBlankRejected(t *testing.T) {
	router := newTestRouter(&fakeUsecase{reply: "unused"})

	req := httptest.NewRequest(http.MethodPost, "/ideas/idea-1/chat/pitch/",
		strings.NewReader(`{"message": "   "}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestListAgents(t *testing.T) {
	router := newTestRouter(&fakeUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/agents", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, a := range entity.Agents {
		if !strings.Contains(body, string(a.ID)) {
			t.Errorf("agent %q missing from listing", a.ID)
		}
	}
	if strings.Contains(body, "You are a") {
		t.Error("persona text leaked into the public listing")
	}
}
