package controllers

import (
	"testing"
	"time"
)

func TestRateLimitWaitMessage(t *testing.T) {
	tests := []struct {
		name string
		wait time.Duration
		want string
	}{
		{"sub-second rounds up", 300 * time.Millisecond, "Rate limit: Please wait 1 second before sending another message."},
		{"exactly one second", time.Second, "Rate limit: Please wait 1 second before sending another message."},
		{"fraction over a second", 1200 * time.Millisecond, "Rate limit: Please wait 2 seconds before sending another message."},
		{"whole seconds", 5 * time.Second, "Rate limit: Please wait 5 seconds before sending another message."},
		{"zero still says one", 0, "Rate limit: Please wait 1 second before sending another message."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rateLimitWaitMessage(tt.wait); got != tt.want {
				t.Errorf("rateLimitWaitMessage(%v) = %q, want %q", tt.wait, got, tt.want)
			}
		})
	}
}
