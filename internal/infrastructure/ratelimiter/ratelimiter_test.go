package ratelimiter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestAllow_BurstThenRefused(t *testing.T) {
	rl := New(Options{
		MaxRatePerSecond: 1,
		MaxBurst:         2,
		CacheTTL:         time.Minute,
	})

	if !rl.Allow("a") {
		t.Fatal("expected first request to pass")
	}
	if !rl.Allow("a") {
		t.Fatal("expected second request to pass within burst")
	}
	if rl.Allow("a") {
		t.Error("expected third immediate request to be refused")
	}
}

func TestAllow_SourcesAreIndependent(t *testing.T) {
	rl := New(Options{
		MaxRatePerSecond: 1,
		MaxBurst:         1,
		CacheTTL:         time.Minute,
	})

	if !rl.Allow("a") {
		t.Fatal("expected first source to pass")
	}
	if !rl.Allow("b") {
		t.Error("expected a different source to have its own bucket")
	}
}

func TestGetSourceKey(t *testing.T) {
	rl := New(Options{
		MaxRatePerSecond: 1,
		MaxBurst:         1,
		CacheTTL:         time.Minute,
		SourceHeaderKey:  "X-Forwarded-For",
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	if got := rl.GetSourceKey(r); got != "203.0.113.7" {
		t.Errorf("expected first forwarded address, got %q", got)
	}

	r.Header.Del("X-Forwarded-For")
	if got := rl.GetSourceKey(r); got != r.RemoteAddr {
		t.Errorf("expected remote addr fallback, got %q", got)
	}
}

func TestRemaining_DecreasesWithUse(t *testing.T) {
	rl := New(Options{
		MaxRatePerSecond: 1,
		MaxBurst:         5,
		CacheTTL:         time.Minute,
	})

	rl.Allow("a")
	rl.Allow("a")

	if remaining := rl.Remaining("a"); remaining > 3 {
		t.Errorf("expected at most 3 tokens left, got %d", remaining)
	}
}
