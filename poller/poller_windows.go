// File: poller/poller_windows.go
//go:build windows

// Author: solarobot <solarobot@gmail.com>
// License: Apache-2.0
//
// Winsock select readiness strategy, called through a lazily loaded
// ws2_32.dll proc. Only one descriptor is ever polled per call, so the
// fixed single-slot fd_set is sufficient.

package poller

import (
	"syscall"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/solarobot/sockio/api"
)

const strategy = "select"

var (
	modws2_32  = windows.NewLazySystemDLL("ws2_32.dll")
	procSelect = modws2_32.NewProc("select")
)

const socketError = ^uintptr(0) // SOCKET_ERROR (-1)

type fdSet struct {
	count uint32
	array [1]uintptr
}

type timeval struct {
	sec  int32
	usec int32
}

func wait(fd uintptr, mode api.PollMode, timeout time.Duration) (bool, error) {
	b := newBudget(timeout)
	for {
		var rd, wr, ex fdSet
		var prd, pwr, pex *fdSet
		if mode.Has(api.PollRead) {
			rd = fdSet{count: 1, array: [1]uintptr{fd}}
			prd = &rd
		}
		if mode.Has(api.PollWrite) {
			wr = fdSet{count: 1, array: [1]uintptr{fd}}
			pwr = &wr
		}
		if mode.Has(api.PollError) {
			ex = fdSet{count: 1, array: [1]uintptr{fd}}
			pex = &ex
		}

		var ptv *timeval
		var tv timeval
		if ms := b.millis(); ms >= 0 {
			tv = timeval{sec: int32(ms / 1000), usec: int32(ms%1000) * 1000}
			ptv = &tv
		}

		b.arm()
		r1, _, e1 := procSelect.Call(
			0, // nfds is ignored by Winsock
			uintptr(unsafe.Pointer(prd)),
			uintptr(unsafe.Pointer(pwr)),
			uintptr(unsafe.Pointer(pex)),
			uintptr(unsafe.Pointer(ptv)),
		)
		if r1 == socketError {
			if e1 == syscall.WSAEINTR {
				b.consume()
				continue
			}
			if no, ok := e1.(syscall.Errno); ok {
				return false, api.Translate(int(no), "")
			}
			return false, e1
		}
		return r1 > 0, nil
	}
}
