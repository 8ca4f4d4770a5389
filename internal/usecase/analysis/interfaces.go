package analysis

import "context"

// GeminiConnector is the slice of the generative connector this
// usecase needs.
type GeminiConnector interface {
	GenerateAnalysis(ctx context.Context, title, description string) (string, error)
}
