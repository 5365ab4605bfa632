package signal

import (
	"testing"
	"time"
)

// TestFrameRateLimiterBlocksOverBudget verifies frames beyond the window
// budget are rejected while other connections stay unaffected.
func TestFrameRateLimiterBlocksOverBudget(t *testing.T) {
	rl := NewFrameRateLimiter(2, time.Minute)

	if !rl.Allow("c1") || !rl.Allow("c1") {
		t.Fatal("first two frames should pass")
	}
	if rl.Allow("c1") {
		t.Fatal("third frame within the window should be blocked")
	}
	if !rl.Allow("c2") {
		t.Fatal("other connection must not share the budget")
	}
}

// TestFrameRateLimiterWindowSlides verifies old attempts age out of the
// sliding window.
func TestFrameRateLimiterWindowSlides(t *testing.T) {
	rl := NewFrameRateLimiter(1, 10*time.Millisecond)

	if !rl.Allow("c1") {
		t.Fatal("first frame should pass")
	}
	if rl.Allow("c1") {
		t.Fatal("second immediate frame should be blocked")
	}
	time.Sleep(20 * time.Millisecond)
	if !rl.Allow("c1") {
		t.Fatal("frame after the window elapsed should pass")
	}
}

// TestFrameRateLimiterForget verifies a forgotten connection starts with a
// fresh window.
func TestFrameRateLimiterForget(t *testing.T) {
	rl := NewFrameRateLimiter(1, time.Minute)

	rl.Allow("c1")
	rl.Forget("c1")
	if !rl.Allow("c1") {
		t.Fatal("forgotten connection should get a fresh budget")
	}
}
