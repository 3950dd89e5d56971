package http

import (
	"fmt"
	"testing"
	"time"
)

func TestRateLimiterAllowsUpToLimit(t *testing.T) {
	rl := newRateLimiter()
	defer rl.stop()

	for i := 0; i < requestsPerMinute; i++ {
		if !rl.allow("10.0.0.1") {
			t.Fatalf("request %d denied, want first %d allowed", i+1, requestsPerMinute)
		}
	}
	if rl.allow("10.0.0.1") {
		t.Errorf("request %d allowed, want denied", requestsPerMinute+1)
	}
}

func TestRateLimiterTracksClientsIndependently(t *testing.T) {
	rl := newRateLimiter()
	defer rl.stop()

	for i := 0; i <= requestsPerMinute; i++ {
		rl.allow("10.0.0.1")
	}
	if !rl.allow("10.0.0.2") {
		t.Error("second client denied by first client's usage")
	}
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	rl := newRateLimiter()
	defer rl.stop()

	for i := 0; i <= requestsPerMinute; i++ {
		rl.allow("10.0.0.1")
	}
	if rl.allow("10.0.0.1") {
		t.Fatal("expected client to be limited")
	}

	rl.mu.Lock()
	rl.clients["10.0.0.1"].lastRequest = time.Now().Add(-2 * time.Minute)
	rl.mu.Unlock()

	if !rl.allow("10.0.0.1") {
		t.Error("client still limited after window elapsed")
	}
}

func TestRateLimiterCleanupRemovesStaleEntries(t *testing.T) {
	rl := newRateLimiter()
	defer rl.stop()

	for i := 0; i < 5; i++ {
		rl.allow(fmt.Sprintf("10.0.0.%d", i))
	}

	rl.mu.Lock()
	for _, client := range rl.clients {
		client.lastRequest = time.Now().Add(-15 * time.Minute)
	}
	rl.mu.Unlock()

	rl.cleanupStaleEntries()

	rl.mu.Lock()
	remaining := len(rl.clients)
	rl.mu.Unlock()
	if remaining != 0 {
		t.Errorf("clients remaining after cleanup = %d, want 0", remaining)
	}
}
