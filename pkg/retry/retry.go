// Package retry repeats an operation with exponential backoff.
// It is used when opening backends (PostgreSQL, Redis, SQLite) at startup.
package retry

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"
)

// PermanentError stops the retry loop immediately.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }

func (e *PermanentError) Unwrap() error { return e.Err }

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Err: err}
}

// IsPermanent reports whether err was marked with Permanent.
func IsPermanent(err error) bool {
	var p *PermanentError
	return errors.As(err, &p)
}

// Policy holds the backoff parameters.
type Policy struct {
	// MaxAttempts includes the first attempt.
	MaxAttempts int

	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64

	// Jitter is the +/- fraction applied to each delay.
	Jitter float64

	// OnRetry is called before sleeping.
	OnRetry func(attempt int, err error, delay time.Duration)
}

// DefaultPolicy returns the policy used for backend connections.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:  3,
		InitialDelay: 200 * time.Millisecond,
		MaxDelay:     2 * time.Second,
		Multiplier:   2.0,
		Jitter:       0.1,
	}
}

// Option adjusts a Policy.
type Option func(*Policy)

// WithMaxAttempts sets the attempt limit. Values below 1 mean one attempt.
func WithMaxAttempts(n int) Option {
	return func(p *Policy) {
		if n < 1 {
			n = 1
		}
		p.MaxAttempts = n
	}
}

// WithInitialDelay sets the first delay.
func WithInitialDelay(d time.Duration) Option {
	return func(p *Policy) { p.InitialDelay = d }
}

// WithMaxDelay caps every delay.
func WithMaxDelay(d time.Duration) Option {
	return func(p *Policy) { p.MaxDelay = d }
}

// WithJitter sets the jitter fraction.
func WithJitter(j float64) Option {
	return func(p *Policy) { p.Jitter = j }
}

// WithOnRetry installs a callback run before each retry.
func WithOnRetry(fn func(attempt int, err error, delay time.Duration)) Option {
	return func(p *Policy) { p.OnRetry = fn }
}

// Do runs op until it succeeds, returns a permanent error, the attempts run
// out or ctx is done. The last operation error is returned.
func Do(ctx context.Context, op func(ctx context.Context) error, opts ...Option) error {
	p := DefaultPolicy()
	for _, opt := range opts {
		opt(&p)
	}

	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return lastErr
			}
			return err
		}

		err := op(ctx)
		if err == nil {
			return nil
		}
		if IsPermanent(err) {
			return errors.Unwrap(err)
		}
		lastErr = err

		if attempt == p.MaxAttempts {
			break
		}

		delay := p.delay(attempt)
		if p.OnRetry != nil {
			p.OnRetry(attempt, err, delay)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return lastErr
		case <-timer.C:
		}
	}
	return lastErr
}

// Value is Do for operations that produce a result.
func Value[T any](ctx context.Context, op func(ctx context.Context) (T, error), opts ...Option) (T, error) {
	var result T
	err := Do(ctx, func(ctx context.Context) error {
		var opErr error
		result, opErr = op(ctx)
		return opErr
	}, opts...)
	return result, err
}

func (p Policy) delay(attempt int) time.Duration {
	d := float64(p.InitialDelay) * math.Pow(p.Multiplier, float64(attempt-1))
	if ceiling := float64(p.MaxDelay); p.MaxDelay > 0 && d > ceiling {
		d = ceiling
	}
	if p.Jitter > 0 {
		d += d * p.Jitter * (rand.Float64()*2 - 1)
	}
	if d < 0 {
		d = 0
	}
	return time.Duration(d)
}
