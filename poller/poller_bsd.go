// File: poller/poller_bsd.go
//go:build unix && !linux

// Author: solarobot <solarobot@gmail.com>
// License: Apache-2.0
//
// poll(2) readiness strategy for the non-Linux unixes.

package poller

import (
	"time"

	"golang.org/x/sys/unix"

	"github.com/solarobot/sockio/api"
)

const strategy = "poll"

func wait(fd uintptr, mode api.PollMode, timeout time.Duration) (bool, error) {
	var events int16
	if mode.Has(api.PollRead) {
		events |= unix.POLLIN
	}
	if mode.Has(api.PollWrite) {
		events |= unix.POLLOUT
	}
	// POLLERR is reported unconditionally; no need to request it.
	fds := []unix.PollFd{{Fd: int32(fd), Events: events}}

	b := newBudget(timeout)
	for {
		b.arm()
		n, err := unix.Poll(fds, b.millis())
		if err == unix.EINTR {
			b.consume()
			continue
		}
		if err != nil {
			return false, translate(err)
		}
		return n > 0, nil
	}
}

func translate(err error) error {
	if no, ok := err.(unix.Errno); ok {
		return api.Translate(int(no), "")
	}
	return err
}
