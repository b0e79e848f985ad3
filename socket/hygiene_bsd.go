// File: socket/hygiene_bsd.go
//go:build darwin || dragonfly || freebsd

// Author: solarobot <solarobot@gmail.com>
//
// On the BSDs a write to a dead peer raises SIGPIPE, which kills the
// process by default. Linux suppresses it per send with MSG_NOSIGNAL
// instead, so the same condition surfaces as EPIPE everywhere.

package socket

import "golang.org/x/sys/unix"

func postCreate(fd sysfd) {
	_ = unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_NOSIGPIPE, 1)
}

const defaultSendFlags = 0

// Datagram byte counts from FIONREAD include header overhead here, so
// the next datagram must be sized with a peek.
const peekDatagramSize = true

// x/sys exports no FIONREAD name for these targets.
const fionread = 0x4004667f // FIONREAD
