// Package ratelimit paces probe dispatch with a token bucket.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter wraps rate.Limiter with a nil-safe Wait. A nil *Limiter means
// unpaced dispatch.
type Limiter struct {
	limiter *rate.Limiter
}

// New creates a Limiter for rps requests per second, or nil when rps <= 0.
func New(rps int) *Limiter {
	if rps <= 0 {
		return nil
	}
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(rps), 1)}
}

// Wait blocks until the next probe may be sent or the context ends.
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil {
		return nil
	}
	return l.limiter.Wait(ctx)
}
