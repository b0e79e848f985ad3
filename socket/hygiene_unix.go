// File: socket/hygiene_unix.go
//go:build unix && !linux && !darwin && !dragonfly && !freebsd && !solaris

// Author: solarobot <solarobot@gmail.com>

package socket

func postCreate(fd sysfd) {}

const defaultSendFlags = 0

const peekDatagramSize = true

// x/sys exports no FIONREAD name for these targets.
const fionread = 0x4004667f // FIONREAD
