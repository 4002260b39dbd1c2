package newsapi

import (
	"context"

	"golang.org/x/time/rate"
)

// DefaultRateLimit is the default requests per second against the server.
const DefaultRateLimit = 5

// RateLimiter is shared by every client built for one account so that
// sync and API handlers draw from the same budget.
type RateLimiter struct {
	limiter *rate.Limiter
}

func NewRateLimiter(qps int) *RateLimiter {
	if qps <= 0 {
		qps = DefaultRateLimit
	}
	return &RateLimiter{limiter: rate.NewLimiter(rate.Limit(qps), qps)}
}

// Wait blocks until a token is available or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}
