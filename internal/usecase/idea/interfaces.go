package idea

import "context"

// TitleGenerator is the slice of the generative connector used for
// title suggestions.
type TitleGenerator interface {
	GenerateTitle(ctx context.Context, description string) (string, error)
}
