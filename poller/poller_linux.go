// File: poller/poller_linux.go
//go:build linux

// Author: solarobot <solarobot@gmail.com>
// License: Apache-2.0
//
// Linux epoll(7) readiness strategy. A throwaway epoll instance is
// created per call and closed before returning.

package poller

import (
	"time"

	"golang.org/x/sys/unix"

	"github.com/solarobot/sockio/api"
)

const strategy = "epoll"

func wait(fd uintptr, mode api.PollMode, timeout time.Duration) (bool, error) {
	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return false, translate(err)
	}
	defer unix.Close(epfd)

	var ev unix.EpollEvent
	if mode.Has(api.PollRead) {
		ev.Events |= unix.EPOLLIN
	}
	if mode.Has(api.PollWrite) {
		ev.Events |= unix.EPOLLOUT
	}
	if mode.Has(api.PollError) {
		ev.Events |= unix.EPOLLERR
	}
	ev.Fd = int32(fd)
	if err := unix.EpollCtl(epfd, unix.EPOLL_CTL_ADD, int(fd), &ev); err != nil {
		return false, translate(err)
	}

	b := newBudget(timeout)
	events := make([]unix.EpollEvent, 1)
	for {
		b.arm()
		n, err := unix.EpollWait(epfd, events, b.millis())
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
