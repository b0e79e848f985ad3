// File: poller/budget_test.go
// Author: solarobot <solarobot@gmail.com>

package poller

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
)

func TestBudgetConsume(t *testing.T) {
	mock := clock.NewMock()
	old := SetClock(mock)
	defer SetClock(old)

	b := newBudget(100 * time.Millisecond)
	b.arm()
	mock.Add(30 * time.Millisecond)
	b.consume()
	if got := b.millis(); got != 70 {
		t.Fatalf("millis() after 30ms of 100ms = %d, want 70", got)
	}

	b.arm()
	mock.Add(200 * time.Millisecond)
	b.consume()
	if got := b.millis(); got != 0 {
		t.Fatalf("millis() after overrun = %d, want 0", got)
	}
}

func TestBudgetNeverGoesNegative(t *testing.T) {
	mock := clock.NewMock()
	old := SetClock(mock)
	defer SetClock(old)

	b := newBudget(10 * time.Millisecond)
	for i := 0; i < 5; i++ {
		b.arm()
		mock.Add(7 * time.Millisecond)
		b.consume()
	}
	if b.remaining != 0 {
		t.Fatalf("remaining = %v, want 0", b.remaining)
	}
	if got := b.millis(); got != 0 {
		t.Fatalf("millis() = %d, want 0", got)
	}
}

func TestBudgetInfinite(t *testing.T) {
	mock := clock.NewMock()
	old := SetClock(mock)
	defer SetClock(old)

	b := newBudget(-1)
	if got := b.millis(); got != -1 {
		t.Fatalf("millis() = %d, want -1", got)
	}
	b.arm()
	mock.Add(time.Hour)
	b.consume()
	if got := b.millis(); got != -1 {
		t.Fatalf("millis() after consume = %d, want -1", got)
	}
}

func TestBudgetSubMillisecondRemainderRoundsUp(t *testing.T) {
	b := newBudget(500 * time.Microsecond)
	if got := b.millis(); got != 1 {
		t.Fatalf("millis() for 500us = %d, want 1", got)
	}
}

func TestBudgetZero(t *testing.T) {
	b := newBudget(0)
	if got := b.millis(); got != 0 {
		t.Fatalf("millis() for 0 = %d, want 0", got)
	}
}
