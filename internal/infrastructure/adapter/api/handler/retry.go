package handler

import (
	"context"
	"errors"
	"math/rand"
	"time"

	errs "github.com/amirhossein-jamali/sip-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sip-processor/internal/domain/port/core"
)

// RetryPolicy holds configuration for retrying lifecycle operations
type RetryPolicy struct {
	MaxRetries   int
	BaseDelay    time.Duration
	MaxDelay     time.Duration
	JitterFactor float64 // 0.0-1.0
}

// DefaultRetryPolicy returns the default retry policy
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:   3,
		BaseDelay:    20 * time.Millisecond,
		MaxDelay:     500 * time.Millisecond,
		JitterFactor: 0.2,
	}
}

// Retrier re-runs an operation with exponential backoff while its error is retryable
type Retrier struct {
	policy RetryPolicy
	logger coreport.Logger
}

// NewRetrier creates a new retrier
func NewRetrier(policy RetryPolicy, logger coreport.Logger) *Retrier {
	return &Retrier{policy: policy, logger: logger}
}

// isLostRace matches a concurrent update that lost the version check.
// A PortfolioLinkError is also a conflict but re-running creation would insert a second transaction.
func isLostRace(err error) bool {
	var linkErr *errs.PortfolioLinkError
	return errs.IsConflictError(err) && !errors.As(err, &linkErr)
}

// isTransientLinkFailure matches append failures worth retrying during reconciliation
func isTransientLinkFailure(err error) bool {
	return !errs.IsNotFoundError(err) && !errs.IsValidationError(err)
}

// Do runs operation until it succeeds, fails with a non-retryable error, or the retries are spent
func (r *Retrier) Do(ctx context.Context, name string, retryable func(error) bool, operation func() error) error {
	var err error

	for attempt := 0; ; attempt++ {
		err = operation()
		if err == nil || !retryable(err) || attempt >= r.policy.MaxRetries {
			break
		}

		backoff := r.backoff(attempt)
		r.logger.Warn("Retrying operation", map[string]any{
			"operation":   name,
			"attempt":     attempt + 1,
			"max_retries": r.policy.MaxRetries,
			"error":       err.Error(),
			"retry_after": backoff.String(),
		})

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return err
}

// backoff computes baseDelay * 2^attempt, capped and jittered
func (r *Retrier) backoff(attempt int) time.Duration {
	backoff := r.policy.MaxDelay
	if attempt < 30 {
		backoff = r.policy.BaseDelay << uint(attempt)
	}
	if backoff > r.policy.MaxDelay || backoff <= 0 {
		backoff = r.policy.MaxDelay
	}

	if r.policy.JitterFactor > 0 {
		backoff += time.Duration(float64(backoff) * r.policy.JitterFactor * rand.Float64())
	}

	return backoff
}
