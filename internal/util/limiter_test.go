// # internal/util/limiter_test.go
package util

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_Allow(t *testing.T) {
	l := NewLimiter(1, 2)

	if !l.Allow(1) {
		t.Error("first event should pass")
	}
	if !l.Allow(1) {
		t.Error("burst capacity should allow a second event")
	}
	if l.Allow(1) {
		t.Error("third immediate event should be limited")
	}
}

func TestLimiter_Wait(t *testing.T) {
	l := NewLimiter(100, 1)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := l.Wait(ctx, 1); err != nil {
		t.Errorf("Wait failed: %v", err)
	}
}
