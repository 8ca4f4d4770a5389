package retry

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
)

const (
	defaultAttempts = 3
	defaultDelay    = 100 * time.Millisecond
	defaultMaxDelay = 2 * time.Second
)

type RetryConfig struct {
	Attempts uint          `env:"ATTEMPTS" envDefault:"3"`
	Delay    time.Duration `env:"DELAY" envDefault:"100ms"`
	MaxDelay time.Duration `env:"MAX_DELAY" envDefault:"2s"`
}

func (rc *RetryConfig) ToRetryOptions() []retry.Option {
	return []retry.Option{
		retry.Attempts(rc.Attempts),
		retry.Delay(rc.Delay),
		retry.MaxDelay(rc.MaxDelay),
	}
}

func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		Attempts: defaultAttempts,
		Delay:    defaultDelay,
		MaxDelay: defaultMaxDelay,
	}
}

// Do runs op with the configured backoff, honoring ctx between
// attempts and returning the last error instead of an aggregate.
// retryIf may be nil, in which case every error is retried.
func Do(ctx context.Context, cfg *RetryConfig, retryIf func(error) bool, op func() error) error {
	opts := append(cfg.ToRetryOptions(),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if retryIf != nil {
		opts = append(opts, retry.RetryIf(retryIf))
	}
	return retry.Do(op, opts...)
}
