package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter paces sequential work items. It replaces fixed sleeps so batch
// throughput is configurable and tests run without wall-clock delays.
type Limiter interface {
	// Wait blocks until the next item may proceed or the context is done.
	Wait(ctx context.Context) error
}

// NewInterval returns a token-bucket limiter releasing one item per interval.
// A non-positive interval disables pacing.
func NewInterval(interval time.Duration) Limiter {
	if interval <= 0 {
		return None()
	}
	return &intervalLimiter{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

type intervalLimiter struct {
	limiter *rate.Limiter
}

func (l *intervalLimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// None returns a limiter that never blocks beyond a context check.
func None() Limiter {
	return noopLimiter{}
}

type noopLimiter struct{}

func (noopLimiter) Wait(ctx context.Context) error {
	return ctx.Err()
}
