package idea

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ideasage/backend/internal/entity"
	"github.com/ideasage/backend/internal/repository"
	"go.uber.org/zap"
)

type fakeTitler struct {
	title string
	err   error
	calls int
}

func (f *fakeTitler) GenerateTitle(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.title, f.err
}

func newTestUsecase(titler TitleGenerator) (*Usecase, repository.CollectionStore) {
	store := repository.NewStore(repository.NewKVMemory(), zap.NewNop())
	return NewUsecase(store, titler, zap.NewNop()), store
}

func TestCreateKeepsProvidedTitle(t *testing.T) {
	titler := &fakeTitler{title: "Generated"}
	uc, _ := newTestUsecase(titler)

	created, err := uc.Create(context.Background(), &entity.CreateIdeaRequest{
		Title:       "My Own Title",
		Description: "A description",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Title != "My Own Title" {
		t.Errorf("Title = %q, want the provided one", created.Title)
	}
	if titler.calls != 0 {
		t.Errorf("title generator called %d times for a titled idea, want 0", titler.calls)
	}
}

func TestCreateGeneratesMissingTitle(t *testing.T) {
	uc, _ := newTestUsecase(&fakeTitler{title: "Smart Meal Kits"})

	created, err := uc.Create(context.Background(), &entity.CreateIdeaRequest{
		Description: "Meal kits for climbing gyms",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Title != "Smart Meal Kits" {
		t.Errorf("Title = %q, want the generated one", created.Title)
	}
}

func TestCreateTitleFailureUsesFallback(t *testing.T) {
	tests := []struct {
		name   string
		titler *fakeTitler
	}{
		{"generator error", &fakeTitler{err: errors.New("endpoint down")}},
		{"credential missing", &fakeTitler{err: entity.ErrCredentialMissing}},
		{"blank result", &fakeTitler{title: "   "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUsecase(tt.titler)

			created, err := uc.Create(context.Background(), &entity.CreateIdeaRequest{
				Description: "Some promising concept",
			})
			if err != nil {
				t.Fatalf("Create must not fail on title generation, got %v", err)
			}
			if created.Title != FallbackTitle {
				t.Errorf("Title = %q, want fallback %q", created.Title, FallbackTitle)
			}
		})
	}
}

func TestDeleteCascadesThroughStore(t *testing.T) {
	ctx := context.Background()
	uc, store := newTestUsecase(&fakeTitler{title: "T"})

	created, err := uc.Create(ctx, &entity.CreateIdeaRequest{Title: "Doomed", Description: "d"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := store.SaveAnalysis(ctx, entity.Analysis{ID: "a-1", IdeaID: created.ID}); err != nil {
		t.Fatalf("SaveAnalysis: %v", err)
	}

	if err := uc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.AnalysisForIdea(ctx, created.ID); !errors.Is(err, entity.ErrAnalysisNotFound) {
		t.Errorf("analysis survived delete, err = %v", err)
	}
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	uc, store := newTestUsecase(&fakeTitler{title: "T"})

	empty, err := uc.Dashboard(ctx)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if empty.IdeaCount != 0 || empty.LatestIdea != nil {
		t.Errorf("empty dashboard = %+v", empty)
	}

	older := entity.Idea{ID: "old", Title: "Older", CreatedAt: time.Now().UTC().Add(-time.Hour)}
	newer := entity.Idea{ID: "new", Title: "Newer", CreatedAt: time.Now().UTC()}
	for _, i := range []entity.Idea{newer, older} {
		if _, err := store.SaveIdea(ctx, i); err != nil {
			t.Fatalf("SaveIdea: %v", err)
		}
	}
	if err := store.SaveAnalysis(ctx, entity.Analysis{ID: "a-1", IdeaID: "old"}); err != nil {
		t.Fatalf("SaveAnalysis: %v", err)
	}

	got, err := uc.Dashboard(ctx)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if got.IdeaCount != 2 || got.AnalysisCount != 1 {
		t.Errorf("counts = %d/%d, want 2/1", got.IdeaCount, got.AnalysisCount)
	}
	if got.LatestIdea == nil || got.LatestIdea.ID != "new" {
		t.Errorf("LatestIdea = %+v, want the newer idea", got.LatestIdea)
	}
}
