package s3

import (
	"context"

	"golang.org/x/time/rate"
)

const (
	// DefaultRate is the sustained request rate (requests per second).
	DefaultRate = 10

	// DefaultBurst is the number of requests allowed in a burst.
	DefaultBurst = 20
)

// RateLimiter throttles requests to the object store with a token bucket.
type RateLimiter struct {
	bucket *rate.Limiter
}

// NewRateLimiter creates a limiter allowing perSecond requests with the given burst.
// A non-positive rate disables limiting.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{bucket: rate.NewLimiter(limit, burst)}
}

// Wait blocks until a request may be made or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.bucket.Wait(ctx)
}

// Allow reports whether a request may be made right now without waiting.
func (r *RateLimiter) Allow() bool {
	return r.bucket.Allow()
}
