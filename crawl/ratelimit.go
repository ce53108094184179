// Package crawl implements the discovery/download pipeline: the
// paginated walker, the courtesy rate limiter, the seen-URL frontier,
// and the orchestration that turns search results into files on disk.
// All network traffic is strictly sequential; the limiter is a
// politeness throttle, not a correctness mechanism.
package crawl

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter paces successive portal requests.
type Limiter interface {
	// Wait blocks until the next request is allowed.
	// Returns an error if the context is canceled before then.
	Wait(ctx context.Context) error
}

// Ensure CourtesyLimiter implements Limiter at compile time.
var _ Limiter = (*CourtesyLimiter)(nil)

// CourtesyLimiter enforces a fixed delay between successive requests
// using a token bucket with burst 1: the first request is immediate,
// every later one waits out the remainder of the delay.
type CourtesyLimiter struct {
	limiter *rate.Limiter
}

// NewCourtesyLimiter creates a limiter that allows one request per
// delay interval. A non-positive delay disables throttling.
func NewCourtesyLimiter(delay time.Duration) *CourtesyLimiter {
	if delay <= 0 {
		return &CourtesyLimiter{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &CourtesyLimiter{limiter: rate.NewLimiter(rate.Every(delay), 1)}
}

// Wait blocks until the rate limit allows the next request.
func (l *CourtesyLimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
