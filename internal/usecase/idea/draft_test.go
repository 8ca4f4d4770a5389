package idea

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ideasage/backend/internal/config"
	"go.uber.org/zap"
)

type countingTitler struct {
	mu    sync.Mutex
	title string
	err   error
	calls int
}

func (c *countingTitler) GenerateTitle(_ context.Context, _ string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return c.title, c.err
}

func (c *countingTitler) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func testDraftConfig() config.DraftConfig {
	return config.DraftConfig{
		DebounceDelay:        15 * time.Millisecond,
		MinDescriptionLength: 20,
	}
}

func waitForSuggestion(t *testing.T, tracker *DraftTracker) string {
	t.Helper()
	deadline := time.Now().Add(500 * time.Millisecond)
	for time.Now().Before(deadline) {
		if title := tracker.Snapshot().SuggestedTitle; title != "" {
			return title
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("no title suggested before deadline")
	return ""
}

func TestDraftSuggestsTitleAfterPause(t *testing.T) {
	titler := &countingTitler{title: "Climbing Meal Kits"}
	tracker := NewDraftTracker(testDraftConfig(), titler, zap.NewNop())
	defer tracker.Close()

	tracker.UpdateDescription("meal kits delivered straight to climbing gyms")

	if got := waitForSuggestion(t, tracker); got != "Climbing Meal Kits" {
		t.Errorf("SuggestedTitle = %q", got)
	}
}

func TestDraftRapidEditsOneRequest(t *testing.T) {
	titler := &countingTitler{title: "Final Title"}
	tracker := NewDraftTracker(testDraftConfig(), titler, zap.NewNop())
	defer tracker.Close()

	description := "meal kits delivered straight to climbing gyms"
	for i := 25; i <= len(description); i++ {
		tracker.UpdateDescription(description[:i])
		time.Sleep(time.Millisecond)
	}

	waitForSuggestion(t, tracker)
	time.Sleep(50 * time.Millisecond)

	if got := titler.callCount(); got != 1 {
		t.Errorf("title generator called %d times across rapid edits, want 1", got)
	}
}

func TestDraftShortDescriptionNeverFires(t *testing.T) {
	titler := &countingTitler{title: "Unwanted"}
	tracker := NewDraftTracker(testDraftConfig(), titler, zap.NewNop())
	defer tracker.Close()

	tracker.UpdateDescription("too short")

	time.Sleep(60 * time.Millisecond)
	if got := titler.callCount(); got != 0 {
		t.Errorf("title generator called %d times below the length gate, want 0", got)
	}
	if title := tracker.Snapshot().SuggestedTitle; title != "" {
		t.Errorf("SuggestedTitle = %q, want empty", title)
	}
}

func TestDraftUserTitleSuppressesSuggestion(t *testing.T) {
	titler := &countingTitler{title: "Unwanted"}
	tracker := NewDraftTracker(testDraftConfig(), titler, zap.NewNop())
	defer tracker.Close()

	tracker.SetTitle("Chosen By Hand")
	tracker.UpdateDescription("a perfectly long description of the concept here")

	time.Sleep(60 * time.Millisecond)
	if got := titler.callCount(); got != 0 {
		t.Errorf("title generator called %d times with a user title set, want 0", got)
	}
	if title := tracker.Snapshot().SuggestedTitle; title != "Chosen By Hand" {
		t.Errorf("SuggestedTitle = %q", title)
	}
}

func TestDraftGenerationFailureLeavesUntitled(t *testing.T) {
	titler := &countingTitler{err: errors.New("endpoint down")}
	tracker := NewDraftTracker(testDraftConfig(), titler, zap.NewNop())
	defer tracker.Close()

	tracker.UpdateDescription("a perfectly long description of the concept here")

	deadline := time.Now().Add(500 * time.Millisecond)
	for titler.callCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if titler.callCount() == 0 {
		t.Fatal("title generator never called")
	}

	time.Sleep(20 * time.Millisecond)
	if title := tracker.Snapshot().SuggestedTitle; title != "" {
		t.Errorf("SuggestedTitle = %q after a failed request, want empty", title)
	}
}

func TestDraftStaleSuggestionDiscarded(t *testing.T) {
	titler := &countingTitler{title: "Stale"}
	tracker := NewDraftTracker(testDraftConfig(), titler, zap.NewNop())

	tracker.UpdateDescription("a perfectly long description of the concept here")
	tracker.Close()

	time.Sleep(60 * time.Millisecond)
	if title := tracker.Snapshot().SuggestedTitle; title != "" {
		t.Errorf("SuggestedTitle = %q after close, want empty", title)
	}
}
