package resilience

import (
	"testing"
	"time"
)

func TestRateLimiter_BurstThenReject(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Rate: 0.001, Burst: 3})

	for i := 0; i < 3; i++ {
		if !rl.Allow() {
			t.Fatalf("call %d within burst must be admitted", i+1)
		}
	}
	if rl.Allow() {
		t.Error("call past the burst must be rejected")
	}
}

func TestRateLimiter_RefillsOverTime(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Rate: 100, Burst: 1})

	if !rl.Allow() {
		t.Fatal("first call must be admitted")
	}
	if rl.Allow() {
		t.Fatal("bucket must be empty right after the burst")
	}

	time.Sleep(50 * time.Millisecond) // ~5 tokens at 100/s, capped at burst 1
	if !rl.Allow() {
		t.Error("bucket must refill from elapsed time")
	}
}

func TestRateLimiter_RefillCappedAtBurst(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Rate: 1000, Burst: 2})

	time.Sleep(20 * time.Millisecond) // would be ~20 tokens uncapped

	if !rl.AllowN(2) {
		t.Fatal("a full bucket must admit the burst")
	}
	if rl.Allow() {
		t.Error("refill must not stack past the burst size")
	}
}

func TestRateLimiter_RejectedCallConsumesNothing(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Rate: 0.001, Burst: 2})

	if rl.AllowN(5) {
		t.Fatal("AllowN beyond the burst must be rejected")
	}
	if !rl.AllowN(2) {
		t.Error("a rejected AllowN must leave the bucket untouched")
	}
}

func TestRateLimiter_Defaults(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{})

	for i := 0; i < 10; i++ {
		if !rl.Allow() {
			t.Fatalf("call %d within the default burst must be admitted", i+1)
		}
	}
	if rl.Allow() {
		t.Error("call past the default burst must be rejected")
	}
}
