package credential

import "context"

type CredentialStore interface {
	Set(ctx context.Context, apiKey string) error
	Get(ctx context.Context) (string, error)
}
