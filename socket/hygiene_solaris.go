// File: socket/hygiene_solaris.go
//go:build solaris

// Author: solarobot <solarobot@gmail.com>

package socket

func postCreate(fd sysfd) {}

const defaultSendFlags = 0

const peekDatagramSize = true

// Solaris ioctl numbers carry no size bits; x/sys exports no FIONREAD
// name for it.
const fionread = 0x667f // FIONREAD
