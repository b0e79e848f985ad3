// File: poller/poller.go
// Author: solarobot <solarobot@gmail.com>
//
// One-shot readiness wait over a native descriptor. Exactly one OS
// strategy is compiled per build target (epoll on Linux, poll on the
// other unixes, select on Windows); all strategies expose identical
// behavior through Wait.
//
// Each call builds and tears down its own polling context, so
// unrelated calls from different goroutines on different descriptors
// never share state.

package poller

import (
	"time"

	"github.com/benbjohnson/clock"

	"github.com/solarobot/sockio/api"
)

var sysClock = clock.New()

// SetClock swaps the wall clock used for wait-budget bookkeeping and
// returns the previous one. Intended for tests.
func SetClock(c clock.Clock) (old clock.Clock) {
	old = sysClock
	sysClock = c
	return old
}

// Wait blocks until fd satisfies one of the conditions in mode or the
// timeout elapses. It returns true when the descriptor is ready and
// false on timeout. A negative timeout waits indefinitely.
//
// Interrupted waits are re-armed with the wall time already spent
// subtracted from the budget, so the cumulative wait never exceeds the
// caller's timeout no matter how many signals arrive.
func Wait(fd uintptr, mode api.PollMode, timeout time.Duration) (bool, error) {
	return wait(fd, mode, timeout)
}

// Strategy returns the name of the compiled readiness strategy.
func Strategy() string { return strategy }

// budget tracks the remaining wait time across interrupted waits.
type budget struct {
	remaining time.Duration
	infinite  bool
	started   time.Time
}

func newBudget(d time.Duration) *budget {
	if d < 0 {
		return &budget{infinite: true}
	}
	return &budget{remaining: d}
}

// arm records the wall time immediately before a wait.
func (b *budget) arm() { b.started = sysClock.Now() }

// consume subtracts the time since arm from the remaining budget,
// flooring at zero.
func (b *budget) consume() {
	if b.infinite {
		return
	}
	waited := sysClock.Since(b.started)
	if waited < b.remaining {
		b.remaining -= waited
	} else {
		b.remaining = 0
	}
}

// millis returns the remaining budget in milliseconds for the OS wait
// call: -1 for an indefinite wait, and at least 1 while any fraction
// of the budget is left so a sub-millisecond remainder cannot spin.
func (b *budget) millis() int {
	if b.infinite {
		return -1
	}
	ms := int(b.remaining / time.Millisecond)
	if ms == 0 && b.remaining > 0 {
		ms = 1
	}
	return ms
}
