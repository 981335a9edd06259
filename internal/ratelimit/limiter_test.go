package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestNew_ZeroRPSIsNil(t *testing.T) {
	if New(0) != nil {
		t.Error("expected nil limiter for rps 0")
	}
	if New(-5) != nil {
		t.Error("expected nil limiter for negative rps")
	}
}

func TestNilLimiter_WaitReturnsImmediately(t *testing.T) {
	var l *Limiter

	start := time.Now()
	if err := l.Wait(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if time.Since(start) > 10*time.Millisecond {
		t.Error("nil limiter must not block")
	}
}

func TestLimiter_PacesWaits(t *testing.T) {
	l := New(100)

	start := time.Now()
	for i := 0; i < 5; i++ {
		if err := l.Wait(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	elapsed := time.Since(start)

	// 5 waits at 100 rps need roughly 40ms of pacing after the first token.
	if elapsed < 30*time.Millisecond {
		t.Errorf("expected pacing, 5 waits took %v", elapsed)
	}
}

func TestLimiter_WaitHonorsCancellation(t *testing.T) {
	l := New(1)

	// Consume the single available token.
	if err := l.Wait(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx); err == nil {
		t.Error("expected error when context ends before the next token")
	}
}
