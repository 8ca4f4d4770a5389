package repository

import (
	"context"
	"fmt"

	"github.com/ideasage/backend/internal/entity"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// CredentialStore holds the single API credential. Reads are served
// from the in-process cache when possible; writes always persist
// synchronously. Absence is a normal state, reported as
// entity.ErrCredentialMissing, that callers check before issuing any
// generative request.
type CredentialStore interface {
	Set(ctx context.Context, key string) error
	Get(ctx context.Context) (string, error)
}

var _ CredentialStore = &Credential{}

type Credential struct {
	kv     KV
	cache  *gocache.Cache
	logger *zap.Logger
}

// cacheKey is the single entry the credential occupies in the cache.
const cacheKey = "api-credential"

func NewCredential(kv KV, logger *zap.Logger) *Credential {
	return &Credential{
		kv:     kv,
		cache:  gocache.New(gocache.NoExpiration, 0),
		logger: logger,
	}
}

func (c *Credential) Set(ctx context.Context, key string) error {
	c.cache.Set(cacheKey, key, gocache.NoExpiration)

	if err := c.kv.Set(ctx, keyCredential, []byte(key)); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}

	c.logger.Info("api credential updated")
	return nil
}

func (c *Credential) Get(ctx context.Context) (string, error) {
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.(string), nil
	}

	// Read-through from the durable store, populating the cache.
	data, ok, err := c.kv.Get(ctx, keyCredential)
	if err != nil {
		return "", fmt.Errorf("read credential: %w", err)
	}
	if !ok || len(data) == 0 {
		return "", entity.ErrCredentialMissing
	}

	key := string(data)
	c.cache.Set(cacheKey, key, gocache.NoExpiration)
	return key, nil
}
