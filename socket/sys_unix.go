// File: socket/sys_unix.go
//go:build unix

// Author: solarobot <solarobot@gmail.com>
// License: Apache-2.0
//
// BSD socket syscall surface shared by the unix targets. Everything
// here returns raw errno failures; translation happens in the portable
// callers.

package socket

import (
	"errors"
	"time"

	"golang.org/x/sys/unix"

	"github.com/solarobot/sockio/sockaddr"
)

type sysfd = int

const invalidFD sysfd = -1

const (
	hasIPv6       = true
	hasUnixDomain = true

	msgOOB  = unix.MSG_OOB
	msgPeek = unix.MSG_PEEK

	sdReceive = unix.SHUT_RD
	sdSend    = unix.SHUT_WR
	sdBoth    = unix.SHUT_RDWR
)

func afOf(f sockaddr.Family) int {
	switch f {
	case sockaddr.IPv4:
		return unix.AF_INET
	case sockaddr.IPv6:
		return unix.AF_INET6
	case sockaddr.Local:
		return unix.AF_UNIX
	default:
		return unix.AF_UNSPEC
	}
}

func sysSocket(f sockaddr.Family, datagram bool) (sysfd, error) {
	typ := unix.SOCK_STREAM
	if datagram {
		typ = unix.SOCK_DGRAM
	}
	fd, err := unix.Socket(afOf(f), typ, 0)
	if err != nil {
		return invalidFD, err
	}
	unix.CloseOnExec(fd)
	postCreate(fd)
	return fd, nil
}

func sysClose(fd sysfd) error { return unix.Close(fd) }

func sysSetNonblock(fd sysfd, nonblocking bool) error {
	return unix.SetNonblock(fd, nonblocking)
}

func sysConnect(fd sysfd, addr sockaddr.Addr) error {
	sa, err := addr.Sockaddr()
	if err != nil {
		return err
	}
	return unix.Connect(fd, sa)
}

func sysBind(fd sysfd, addr sockaddr.Addr) error {
	sa, err := addr.Sockaddr()
	if err != nil {
		return err
	}
	return unix.Bind(fd, sa)
}

func sysListen(fd sysfd, backlog int) error { return unix.Listen(fd, backlog) }

func sysAccept(fd sysfd) (sysfd, sockaddr.Addr, error) {
	nfd, sa, err := unix.Accept(fd)
	if err != nil {
		return invalidFD, sockaddr.Addr{}, err
	}
	unix.CloseOnExec(nfd)
	peer, _ := sockaddr.FromSockaddr(sa)
	return nfd, peer, nil
}

func sysShutdown(fd sysfd, how int) error { return unix.Shutdown(fd, how) }

func sysSend(fd sysfd, p []byte, flags int) (int, error) {
	return unix.SendmsgN(fd, p, nil, nil, flags)
}

func sysRecv(fd sysfd, p []byte, flags int) (int, error) {
	n, _, err := unix.Recvfrom(fd, p, flags)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func sysSendV(fd sysfd, bufs [][]byte, flags int) (int, error) {
	return unix.SendmsgBuffers(fd, bufs, nil, nil, flags)
}

func sysRecvV(fd sysfd, bufs [][]byte, flags int) (int, error) {
	n, _, _, _, err := unix.RecvmsgBuffers(fd, bufs, nil, flags)
	return n, err
}

func sysSendTo(fd sysfd, p []byte, flags int, addr sockaddr.Addr) (int, error) {
	sa, err := addr.Sockaddr()
	if err != nil {
		return 0, err
	}
	return unix.SendmsgN(fd, p, nil, sa, flags)
}

func sysRecvFrom(fd sysfd, p []byte, flags int) (int, sockaddr.Addr, error) {
	n, sa, err := unix.Recvfrom(fd, p, flags)
	if err != nil {
		return 0, sockaddr.Addr{}, err
	}
	peer, _ := sockaddr.FromSockaddr(sa)
	return n, peer, nil
}

func sysSendToV(fd sysfd, bufs [][]byte, flags int, addr sockaddr.Addr) (int, error) {
	sa, err := addr.Sockaddr()
	if err != nil {
		return 0, err
	}
	return unix.SendmsgBuffers(fd, bufs, nil, sa, flags)
}

func sysRecvFromV(fd sysfd, bufs [][]byte, flags int) (int, sockaddr.Addr, error) {
	n, _, _, sa, err := unix.RecvmsgBuffers(fd, bufs, nil, flags)
	if err != nil {
		return 0, sockaddr.Addr{}, err
	}
	peer, _ := sockaddr.FromSockaddr(sa)
	return n, peer, nil
}

func sysGetsockname(fd sysfd) (sockaddr.Addr, error) {
	sa, err := unix.Getsockname(fd)
	if err != nil {
		return sockaddr.Addr{}, err
	}
	a, _ := sockaddr.FromSockaddr(sa)
	return a, nil
}

func sysGetpeername(fd sysfd) (sockaddr.Addr, error) {
	sa, err := unix.Getpeername(fd)
	if err != nil {
		return sockaddr.Addr{}, err
	}
	a, _ := sockaddr.FromSockaddr(sa)
	return a, nil
}

func sysAvailable(fd sysfd) (int, error) {
	return unix.IoctlGetInt(fd, fionread)
}

// Socket option plumbing.

func sysSetsockoptInt(fd sysfd, level, opt, value int) error {
	return unix.SetsockoptInt(fd, level, opt, value)
}

func sysGetsockoptInt(fd sysfd, level, opt int) (int, error) {
	return unix.GetsockoptInt(fd, level, opt)
}

const (
	lvlSocket = unix.SOL_SOCKET
	lvlTCP    = unix.IPPROTO_TCP

	optSndBuf    = unix.SO_SNDBUF
	optRcvBuf    = unix.SO_RCVBUF
	optKeepAlive = unix.SO_KEEPALIVE
	optBroadcast = unix.SO_BROADCAST
	optOOBInline = unix.SO_OOBINLINE
	optNoDelay   = unix.TCP_NODELAY
	optError     = unix.SO_ERROR
)

func sysSetReuseAddr(fd sysfd, flag bool) error {
	return unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, boolInt(flag))
}

func sysGetReuseAddr(fd sysfd) (bool, error) {
	v, err := unix.GetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR)
	return v != 0, err
}

// sysSetReusePort ignores rejection: not every kernel honors
// SO_REUSEPORT even where the constant exists.
func sysSetReusePort(fd sysfd, flag bool) error {
	_ = unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEPORT, boolInt(flag))
	return nil
}

func sysGetReusePort(fd sysfd) (bool, error) {
	v, err := unix.GetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEPORT)
	if err != nil {
		return false, nil
	}
	return v != 0, nil
}

func sysSetIPv6Only(fd sysfd, flag bool) error {
	return unix.SetsockoptInt(fd, unix.IPPROTO_IPV6, unix.IPV6_V6ONLY, boolInt(flag))
}

func sysSetLinger(fd sysfd, on bool, seconds int) error {
	l := unix.Linger{Linger: int32(seconds)}
	if on {
		l.Onoff = 1
	}
	return unix.SetsockoptLinger(fd, unix.SOL_SOCKET, unix.SO_LINGER, &l)
}

func sysGetLinger(fd sysfd) (bool, int, error) {
	l, err := unix.GetsockoptLinger(fd, unix.SOL_SOCKET, unix.SO_LINGER)
	if err != nil {
		return false, 0, err
	}
	return l.Onoff != 0, int(l.Linger), nil
}

const (
	optSndTimeo = unix.SO_SNDTIMEO
	optRcvTimeo = unix.SO_RCVTIMEO
)

func sysSetSockTimeout(fd sysfd, opt int, d time.Duration) error {
	tv := unix.NsecToTimeval(d.Nanoseconds())
	return unix.SetsockoptTimeval(fd, unix.SOL_SOCKET, opt, &tv)
}

func sysGetSockTimeout(fd sysfd, opt int) (time.Duration, error) {
	tv, err := unix.GetsockoptTimeval(fd, unix.SOL_SOCKET, opt)
	if err != nil {
		return 0, err
	}
	return time.Duration(tv.Nano()), nil
}

// Errno classification.

func errnoCode(err error) int {
	var no unix.Errno
	if errors.As(err, &no) {
		return int(no)
	}
	return 0
}

func isEINTR(err error) bool { return errnoIs(err, unix.EINTR) }

func isWouldBlock(err error) bool {
	return errnoIs(err, unix.EAGAIN) || errnoIs(err, unix.EWOULDBLOCK)
}

func isInProgress(err error) bool { return errnoIs(err, unix.EINPROGRESS) }

func isTimedOut(err error) bool { return errnoIs(err, unix.ETIMEDOUT) }

func errnoIs(err error, target unix.Errno) bool {
	var no unix.Errno
	return errors.As(err, &no) && no == target
}
