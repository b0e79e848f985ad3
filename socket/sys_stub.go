// File: socket/sys_stub.go
//go:build !unix && !windows

// Author: solarobot <solarobot@gmail.com>
// License: Apache-2.0
//
// Stub syscall surface for targets without BSD sockets or Winsock.
// Every operation reports ErrNotImplemented.

package socket

import (
	"time"

	"github.com/solarobot/sockio/api"
	"github.com/solarobot/sockio/sockaddr"
)

type sysfd = int

const invalidFD sysfd = -1

const (
	hasIPv6       = false
	hasUnixDomain = false

	msgOOB  = 0
	msgPeek = 0

	sdReceive = 0
	sdSend    = 1
	sdBoth    = 2

	defaultSendFlags = 0
	peekDatagramSize = false

	lvlSocket = 0
	lvlTCP    = 0

	optSndBuf    = 0
	optRcvBuf    = 0
	optKeepAlive = 0
	optBroadcast = 0
	optOOBInline = 0
	optNoDelay   = 0
	optError     = 0
	optSndTimeo  = 0
	optRcvTimeo  = 0
)

func postCreate(fd sysfd) {}

func sysSocket(f sockaddr.Family, datagram bool) (sysfd, error) {
	return invalidFD, api.ErrNotImplemented
}

func sysClose(fd sysfd) error { return nil }

func sysSetNonblock(fd sysfd, nonblocking bool) error { return api.ErrNotImplemented }

func sysConnect(fd sysfd, addr sockaddr.Addr) error { return api.ErrNotImplemented }

func sysBind(fd sysfd, addr sockaddr.Addr) error { return api.ErrNotImplemented }

func sysListen(fd sysfd, backlog int) error { return api.ErrNotImplemented }

func sysAccept(fd sysfd) (sysfd, sockaddr.Addr, error) {
	return invalidFD, sockaddr.Addr{}, api.ErrNotImplemented
}

func sysShutdown(fd sysfd, how int) error { return api.ErrNotImplemented }

func sysSend(fd sysfd, p []byte, flags int) (int, error) { return 0, api.ErrNotImplemented }

func sysRecv(fd sysfd, p []byte, flags int) (int, error) { return 0, api.ErrNotImplemented }

func sysSendV(fd sysfd, bufs [][]byte, flags int) (int, error) { return 0, api.ErrNotImplemented }

func sysRecvV(fd sysfd, bufs [][]byte, flags int) (int, error) { return 0, api.ErrNotImplemented }

func sysSendTo(fd sysfd, p []byte, flags int, addr sockaddr.Addr) (int, error) {
	return 0, api.ErrNotImplemented
}

func sysRecvFrom(fd sysfd, p []byte, flags int) (int, sockaddr.Addr, error) {
	return 0, sockaddr.Addr{}, api.ErrNotImplemented
}

func sysSendToV(fd sysfd, bufs [][]byte, flags int, addr sockaddr.Addr) (int, error) {
	return 0, api.ErrNotImplemented
}

func sysRecvFromV(fd sysfd, bufs [][]byte, flags int) (int, sockaddr.Addr, error) {
	return 0, sockaddr.Addr{}, api.ErrNotImplemented
}

func sysGetsockname(fd sysfd) (sockaddr.Addr, error) {
	return sockaddr.Addr{}, api.ErrNotImplemented
}

func sysGetpeername(fd sysfd) (sockaddr.Addr, error) {
	return sockaddr.Addr{}, api.ErrNotImplemented
}

func sysAvailable(fd sysfd) (int, error) { return 0, api.ErrNotImplemented }

func sysSetsockoptInt(fd sysfd, level, opt, value int) error { return api.ErrNotImplemented }

func sysGetsockoptInt(fd sysfd, level, opt int) (int, error) { return 0, api.ErrNotImplemented }

func sysSetReuseAddr(fd sysfd, flag bool) error { return api.ErrNotImplemented }

func sysGetReuseAddr(fd sysfd) (bool, error) { return false, api.ErrNotImplemented }

func sysSetReusePort(fd sysfd, flag bool) error { return nil }

func sysGetReusePort(fd sysfd) (bool, error) { return false, nil }

func sysSetIPv6Only(fd sysfd, flag bool) error { return api.ErrNotImplemented }

func sysSetLinger(fd sysfd, on bool, seconds int) error { return api.ErrNotImplemented }

func sysGetLinger(fd sysfd) (bool, int, error) { return false, 0, api.ErrNotImplemented }

func sysSetSockTimeout(fd sysfd, opt int, d time.Duration) error { return api.ErrNotImplemented }

func sysGetSockTimeout(fd sysfd, opt int) (time.Duration, error) {
	return 0, api.ErrNotImplemented
}

func errnoCode(err error) int { return 0 }

func isEINTR(err error) bool { return false }

func isWouldBlock(err error) bool { return false }

func isInProgress(err error) bool { return false }

func isTimedOut(err error) bool { return false }
