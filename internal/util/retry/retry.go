package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrExhausted is returned when every attempt failed.
var ErrExhausted = errors.New("attempts exhausted")

// Config holds poll configuration.
type Config struct {
	MaxAttempts int
	Interval    time.Duration

	// OnAttempt is called after every attempt with its 1-based index and
	// the attempt's error (nil on success).
	OnAttempt func(attempt, maxAttempts int, err error)

	// Sleep pauses between attempts. It must return early with ctx.Err()
	// when ctx is done.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Option is a functional option for poll configuration.
type Option func(*Config)

// Poll runs operation up to MaxAttempts times with a constant pause of
// Interval after each failed attempt. It returns nil on the first success.
// Errors wrapped with Fatal() stop the loop immediately. Context
// cancellation is respected while pausing.
func Poll(ctx context.Context, operation func(ctx context.Context) error, opts ...Option) error {
	cfg := &Config{
		MaxAttempts: 180,
		Interval:    10 * time.Second,
		Sleep:       sleepContext,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.MaxAttempts < 1 {
		return fmt.Errorf("invalid max attempts %d", cfg.MaxAttempts)
	}

	var lastErr error

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		err := operation(ctx)
		if cfg.OnAttempt != nil {
			cfg.OnAttempt(attempt, cfg.MaxAttempts, err)
		}
		if err == nil {
			return nil
		}

		lastErr = err

		if IsFatal(err) {
			return fmt.Errorf("fatal error (not retrying): %w", err)
		}

		if attempt < cfg.MaxAttempts {
			if err := cfg.Sleep(ctx, cfg.Interval); err != nil {
				return fmt.Errorf("context cancelled after %d attempts: %w", attempt, err)
			}
		}
	}

	return fmt.Errorf("%w after %d attempts: %w", ErrExhausted, cfg.MaxAttempts, lastErr)
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// WithMaxAttempts sets the maximum number of attempts.
func WithMaxAttempts(n int) Option {
	return func(c *Config) {
		c.MaxAttempts = n
	}
}

// WithInterval sets the pause between attempts.
func WithInterval(d time.Duration) Option {
	return func(c *Config) {
		c.Interval = d
	}
}

// WithOnAttempt registers a progress callback.
func WithOnAttempt(fn func(attempt, maxAttempts int, err error)) Option {
	return func(c *Config) {
		c.OnAttempt = fn
	}
}

// WithSleep replaces the pause implementation (useful for testing).
func WithSleep(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(c *Config) {
		c.Sleep = fn
	}
}

// FatalError wraps an error to mark it as fatal (non-retryable).
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string {
	return e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// Fatal marks an error as fatal (non-retryable).
// Operations that encounter fatal errors will not be retried.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &FatalError{Err: err}
}

// IsFatal checks if an error is fatal (non-retryable).
func IsFatal(err error) bool {
	var fatalErr *FatalError
	return errors.As(err, &fatalErr)
}
