// File: socket/hygiene_linux.go
//go:build linux

// Author: solarobot <solarobot@gmail.com>

package socket

import "golang.org/x/sys/unix"

func postCreate(fd sysfd) {}

// MSG_NOSIGNAL turns a dead-peer write into EPIPE instead of SIGPIPE.
const defaultSendFlags = unix.MSG_NOSIGNAL

// The readable-byte ioctl reports the exact next-datagram size on
// Linux, so no peek is needed.
const peekDatagramSize = false

// x/sys spells the readable-byte ioctl TIOCINQ on Linux; there is no
// FIONREAD name here.
const fionread = unix.TIOCINQ
