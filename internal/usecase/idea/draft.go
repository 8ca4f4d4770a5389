package idea

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/ideasage/backend/internal/config"
	"github.com/ideasage/backend/internal/entity"
	"github.com/ideasage/backend/internal/pkg/debounce"
	"go.uber.org/zap"
)

// DraftTracker watches a single in-progress idea draft and suggests a
// title once the author has paused typing. Each description update
// restarts the debounce window; the suggestion request fires only when
// the window elapses with no title set and a long-enough description.
// Only one suggestion request runs at a time, and a result is discarded
// if the description changed while the request was in flight.
type DraftTracker struct {
	titler TitleGenerator
	logger *zap.Logger

	minLength int
	task      *debounce.Task

	mu          sync.Mutex
	description string
	title       string
	inFlight    bool
}

func NewDraftTracker(cfg config.DraftConfig, titler TitleGenerator, logger *zap.Logger) *DraftTracker {
	t := &DraftTracker{
		titler:    titler,
		logger:    logger,
		minLength: cfg.MinDescriptionLength,
	}
	t.task = debounce.New(cfg.DebounceDelay, t.fire)
	return t
}

// UpdateDescription records the latest draft text and re-arms the
// suggestion timer. Short descriptions cancel any pending suggestion
// instead of arming one.
func (t *DraftTracker) UpdateDescription(description string) {
	t.mu.Lock()
	t.description = description
	armed := t.title == "" && len(strings.TrimSpace(description)) >= t.minLength
	t.mu.Unlock()

	if armed {
		t.task.Restart()
	} else {
		t.task.Cancel()
	}
}

// SetTitle records a user-chosen title and stops suggesting one.
func (t *DraftTracker) SetTitle(title string) {
	t.mu.Lock()
	t.title = title
	t.mu.Unlock()

	if title != "" {
		t.task.Cancel()
	}
}

// Snapshot returns the current draft state.
func (t *DraftTracker) Snapshot() *entity.DraftResponse {
	t.mu.Lock()
	defer t.mu.Unlock()

	return &entity.DraftResponse{
		Description:    t.description,
		SuggestedTitle: t.title,
	}
}

// Close stops the tracker; no suggestion fires after it returns.
func (t *DraftTracker) Close() {
	t.task.Close()
}

func (t *DraftTracker) fire() {
	t.mu.Lock()
	if t.inFlight || t.title != "" {
		t.mu.Unlock()
		return
	}
	t.inFlight = true
	description := t.description
	t.mu.Unlock()

	go t.suggest(description)
}

func (t *DraftTracker) suggest(description string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	title, err := t.titler.GenerateTitle(ctx, description)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.inFlight = false

	if err != nil {
		// Suggestions are best-effort; the draft stays untitled.
		t.logger.Info("title suggestion failed", zap.Error(err))
		return
	}
	if t.description != description || t.title != "" {
		// The draft moved on while we were waiting.
		return
	}

	t.title = strings.TrimSpace(title)
	t.logger.Info("title suggested", zap.String("title", t.title))
}
