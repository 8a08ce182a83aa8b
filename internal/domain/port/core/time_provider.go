package core

import (
	"context"
	"time"
)

// TimeProvider abstracts the clock for the domain.
// Scheduling functions never read it directly; callers pass its Now() in.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
