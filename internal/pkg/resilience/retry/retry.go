// Package retry runs operations that may fail transiently with exponential
// backoff. It wraps avast/retry-go behind a small interface so callers can be
// tested with a mock.
//
//	r := retry.New(
//	    retry.WithAttempts(4),
//	    retry.WithRetryIf(func(err error) bool { return !errors.Is(err, ErrDecode) }),
//	)
//	err := r.Execute(ctx, func() error { return refresh(ctx) })
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes an operation until it succeeds, the attempts are exhausted,
// the error is deemed permanent or ctx is done.
type Retry interface {
	// Execute runs operation, retrying on error. The operation must be
	// idempotent. It returns nil on success and otherwise the last error
	// (or the context error when ctx ended first).
	Execute(ctx context.Context, operation func() error) error
}

// config holds internal settings for the retry mechanism.
type config struct {
	attempts uint                          // total attempts including the first
	delay    time.Duration                 // base delay, doubled per attempt
	maxDelay time.Duration                 // cap on a single delay
	retryIf  func(error) bool              // false means the error is permanent
	onRetry  func(attempt uint, err error) // hook invoked before each retry
}

// Option configures a Retry built by New.
type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New builds a Retry. Defaults:
//   - attempts: 3
//   - delay:    1 second
//   - maxDelay: 5 seconds
//   - retryIf:  every error is retried
func New(opts ...Option) Retry {
	cfg := config{
		attempts: 3,
		delay:    1 * time.Second,
		maxDelay: 5 * time.Second,
		retryIf:  func(error) bool { return true },
		onRetry:  func(uint, error) {},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	return retry.Do(operation,
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(r.cfg.retryIf),
		retry.OnRetry(r.cfg.onRetry),
		retry.Context(ctx),
	)
}

// WithAttempts sets the total number of attempts. Zero means retry
// until ctx is done.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay between attempts.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps a single backoff delay.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithRetryIf sets the predicate deciding whether an error is worth another
// attempt. Errors rejected by it are returned immediately.
func WithRetryIf(fn func(error) bool) Option {
	return func(c *config) {
		c.retryIf = fn
	}
}

// WithOnRetry registers a hook called with the zero-based attempt number and
// its error before each retry.
func WithOnRetry(fn func(attempt uint, err error)) Option {
	return func(c *config) {
		c.onRetry = fn
	}
}
