package services

import (
	"sync"
	"time"
)

// RateLimiter enforces a minimum interval between outbound LLM calls. Calls
// arriving too soon are rejected, not queued; callers get back how long to
// wait. A single instance is shared by the chat and vision controllers.
type RateLimiter struct {
	mu          sync.Mutex
	minInterval time.Duration
	last        time.Time
	now         func() time.Time
}

func NewRateLimiter(minInterval time.Duration) *RateLimiter {
	return &RateLimiter{minInterval: minInterval, now: time.Now}
}

// Allow reports whether a call may proceed now. On success the last-call
// timestamp is advanced immediately so concurrent requests cannot burst. On
// rejection it returns the remaining wait.
func (r *RateLimiter) Allow() (bool, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	wait := r.last.Add(r.minInterval).Sub(now)
	if wait > 0 {
		return false, wait
	}
	r.last = now
	return true, 0
}

// Penalize pushes the next allowed call out by d, used when the upstream
// API answers 429 with a Retry-After.
func (r *RateLimiter) Penalize(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Next call is allowed at last+minInterval, so shift last accordingly.
	r.last = r.now().Add(d - r.minInterval)
}
