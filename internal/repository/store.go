package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ideasage/backend/internal/entity"
	"go.uber.org/zap"
)

// CollectionStore is the persistence surface for the three entity
// collections. All writes go through it; callers receive copies and
// never mutate stored records in place.
type CollectionStore interface {
	AllIdeas(ctx context.Context) ([]entity.Idea, error)
	Idea(ctx context.Context, id string) (*entity.Idea, error)
	SaveIdea(ctx context.Context, idea entity.Idea) (string, error)
	DeleteIdea(ctx context.Context, id string) error

	AllAnalyses(ctx context.Context) ([]entity.Analysis, error)
	AnalysisForIdea(ctx context.Context, ideaID string) (*entity.Analysis, error)
	SaveAnalysis(ctx context.Context, analysis entity.Analysis) error

	ChatHistory(ctx context.Context, ideaID string, agentID entity.AgentID) ([]entity.ChatMessage, error)
	SaveChatMessage(ctx context.Context, msg entity.ChatMessage) error
}

var _ CollectionStore = &Store{}

// Store keeps each collection as one JSON array under a fixed logical
// key in the KV substrate. Reads of corrupt payloads degrade to an
// empty collection rather than failing.
type Store struct {
	kv     KV
	logger *zap.Logger
}

func NewStore(kv KV, logger *zap.Logger) *Store {
	return &Store{kv: kv, logger: logger}
}

// readCollection unmarshals the stored array for key into out. A
// missing key or unparseable payload leaves out untouched (empty).
func (s *Store) readCollection(ctx context.Context, key string, out any) error {
	data, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("read collection %q: %w", key, err)
	}
	if !ok || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		// Corrupt collections read as empty, never fatal.
		s.logger.Warn("corrupt collection payload, treating as empty",
			zap.String("key", key),
			zap.Error(err),
		)
	}
	return nil
}

func (s *Store) writeCollection(ctx context.Context, key string, in any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal collection %q: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("write collection %q: %w", key, err)
	}
	return nil
}

func (s *Store) AllIdeas(ctx context.Context) ([]entity.Idea, error) {
	var ideas []entity.Idea
	if err := s.readCollection(ctx, keyIdeas, &ideas); err != nil {
		return nil, err
	}
	return ideas, nil
}

func (s *Store) Idea(ctx context.Context, id string) (*entity.Idea, error) {
	ideas, err := s.AllIdeas(ctx)
	if err != nil {
		return nil, err
	}
	for i := range ideas {
		if ideas[i].ID == id {
			idea := ideas[i]
			return &idea, nil
		}
	}
	return nil, entity.ErrIdeaNotFound
}

func (s *Store) SaveIdea(ctx context.Context, idea entity.Idea) (string, error) {
	ideas, err := s.AllIdeas(ctx)
	if err != nil {
		return "", err
	}
	ideas = append(ideas, idea)
	if err := s.writeCollection(ctx, keyIdeas, ideas); err != nil {
		return "", err
	}
	return idea.ID, nil
}

// DeleteIdea removes the idea and cascades to its analysis and chat
// messages. The cascade is three independent collection rewrites, not
// a transaction: an interruption between writes can leave orphaned
// analysis/chat records. Accepted for a single-writer substrate.
func (s *Store) DeleteIdea(ctx context.Context, id string) error {
	ideas, err := s.AllIdeas(ctx)
	if err != nil {
		return err
	}

	kept := ideas[:0]
	found := false
	for _, idea := range ideas {
		if idea.ID == id {
			found = true
			continue
		}
		kept = append(kept, idea)
	}
	if !found {
		return entity.ErrIdeaNotFound
	}
	if err := s.writeCollection(ctx, keyIdeas, kept); err != nil {
		return err
	}

	analyses, err := s.AllAnalyses(ctx)
	if err != nil {
		return err
	}
	keptAnalyses := analyses[:0]
	for _, a := range analyses {
		if a.IdeaID != id {
			keptAnalyses = append(keptAnalyses, a)
		}
	}
	if err := s.writeCollection(ctx, keyAnalyses, keptAnalyses); err != nil {
		return err
	}

	var msgs []entity.ChatMessage
	if err := s.readCollection(ctx, keyChats, &msgs); err != nil {
		return err
	}
	keptMsgs := msgs[:0]
	for _, m := range msgs {
		if m.IdeaID != id {
			keptMsgs = append(keptMsgs, m)
		}
	}
	if err := s.writeCollection(ctx, keyChats, keptMsgs); err != nil {
		return err
	}

	ctxzap.Info(ctx, "idea deleted with cascade",
		zap.String("idea_id", id),
		zap.Int("analyses_removed", len(analyses)-len(keptAnalyses)),
		zap.Int("messages_removed", len(msgs)-len(keptMsgs)),
	)

	return nil
}

func (s *Store) AllAnalyses(ctx context.Context) ([]entity.Analysis, error) {
	var analyses []entity.Analysis
	if err := s.readCollection(ctx, keyAnalyses, &analyses); err != nil {
		return nil, err
	}
	return analyses, nil
}

func (s *Store) AnalysisForIdea(ctx context.Context, ideaID string) (*entity.Analysis, error) {
	analyses, err := s.AllAnalyses(ctx)
	if err != nil {
		return nil, err
	}
	for i := range analyses {
		if analyses[i].IdeaID == ideaID {
			analysis := analyses[i]
			return &analysis, nil
		}
	}
	return nil, entity.ErrAnalysisNotFound
}

// SaveAnalysis upserts keyed by IdeaID: an existing record for the
// same idea is replaced in place, keeping the invariant of at most one
// analysis per idea.
func (s *Store) SaveAnalysis(ctx context.Context, analysis entity.Analysis) error {
	analyses, err := s.AllAnalyses(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range analyses {
		if analyses[i].IdeaID == analysis.IdeaID {
			analyses[i] = analysis
			replaced = true
			break
		}
	}
	if !replaced {
		analyses = append(analyses, analysis)
	}

	return s.writeCollection(ctx, keyAnalyses, analyses)
}

// ChatHistory returns the conversation for (ideaID, agentID) sorted by
// timestamp ascending regardless of insertion order.
func (s *Store) ChatHistory(ctx context.Context, ideaID string, agentID entity.AgentID) ([]entity.ChatMessage, error) {
	var msgs []entity.ChatMessage
	if err := s.readCollection(ctx, keyChats, &msgs); err != nil {
		return nil, err
	}

	var history []entity.ChatMessage
	for _, m := range msgs {
		if m.IdeaID == ideaID && m.AgentID == agentID {
			history = append(history, m)
		}
	}

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Timestamp.Before(history[j].Timestamp)
	})

	return history, nil
}

func (s *Store) SaveChatMessage(ctx context.Context, msg entity.ChatMessage) error {
	var msgs []entity.ChatMessage
	if err := s.readCollection(ctx, keyChats, &msgs); err != nil {
		return err
	}
	msgs = append(msgs, msg)
	return s.writeCollection(ctx, keyChats, msgs)
}
