package services

import (
	"testing"
	"time"
)

// fakeClock drives a RateLimiter deterministically.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(interval time.Duration) (*RateLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	r := NewRateLimiter(interval)
	r.now = clock.now
	return r, clock
}

func TestRateLimiter_RejectsWithinInterval(t *testing.T) {
	r, clock := newTestLimiter(5 * time.Second)

	ok, _ := r.Allow()
	if !ok {
		t.Fatal("first call should be allowed")
	}

	clock.advance(2 * time.Second)
	ok, wait := r.Allow()
	if ok {
		t.Fatal("call within the interval should be rejected")
	}
	if wait != 3*time.Second {
		t.Errorf("remaining wait = %v, want 3s", wait)
	}

	clock.advance(3 * time.Second)
	if ok, _ := r.Allow(); !ok {
		t.Error("call after the interval should be allowed")
	}
}

func TestRateLimiter_RejectionDoesNotAdvance(t *testing.T) {
	r, clock := newTestLimiter(5 * time.Second)

	r.Allow()
	clock.advance(time.Second)
	r.Allow() // rejected
	clock.advance(4 * time.Second)

	// 5s since the only successful call; the rejection must not have reset
	// the window.
	if ok, _ := r.Allow(); !ok {
		t.Error("rejected calls should not extend the window")
	}
}

func TestRateLimiter_Penalize(t *testing.T) {
	r, clock := newTestLimiter(5 * time.Second)

	r.Allow()
	clock.advance(10 * time.Second)
	r.Penalize(30 * time.Second)

	if ok, wait := r.Allow(); ok || wait != 30*time.Second {
		t.Errorf("after penalty Allow() = (%v, %v), want rejection with 30s wait", ok, wait)
	}

	clock.advance(30 * time.Second)
	if ok, _ := r.Allow(); !ok {
		t.Error("call after the penalty window should be allowed")
	}
}
