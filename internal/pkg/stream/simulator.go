// Package stream simulates incremental delivery of an already-complete
// response. The full text is in hand before Run starts; chunking on a
// fixed cadence exists purely so the consumer perceives streaming.
package stream

import (
	"context"
	"strings"
	"time"
)

// DefaultInterval matches the pacing of one word per 30ms.
const DefaultInterval = 30 * time.Millisecond

// Simulator chunks text into whitespace-separated tokens and emits one
// token (plus a trailing space) per tick.
type Simulator struct {
	interval time.Duration
}

func NewSimulator(interval time.Duration) *Simulator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Simulator{interval: interval}
}

// Run delivers text to onChunk token by token, then calls onComplete
// exactly once. Cancellation via ctx is checked before every emission:
// a canceled run stops delivery immediately, never calls onComplete,
// and returns the context error. Run blocks until done or canceled.
func (s *Simulator) Run(ctx context.Context, text string, onChunk func(string), onComplete func()) error {
	tokens := strings.Fields(text)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for _, token := range tokens {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			onChunk(token + " ")
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	onComplete()
	return nil
}
