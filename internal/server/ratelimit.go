package server

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimiter wraps a token bucket rate limiter guarding the HTTP API —
// adapted from the scraper's outbound limiter, now applied inbound per
// server instead of per outbound request.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a limiter that allows rps requests per second,
// bursting up to burst requests.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Middleware rejects requests with 429 Too Many Requests once the bucket
// is exhausted, rather than blocking — an inbound HTTP handler cannot hold
// the connection open indefinitely the way an outbound scraper client can.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.limiter.Allow() {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
