// File: socket/sys_windows.go
//go:build windows

// Author: solarobot <solarobot@gmail.com>
// License: Apache-2.0
//
// Winsock syscall surface. Plain accept, ioctlsocket and a few option
// identifiers are not exported by x/sys/windows, so those go through
// lazily loaded ws2_32.dll procs and a local constant table.

package socket

import (
	"errors"
	"syscall"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/solarobot/sockio/sockaddr"
)

type sysfd = windows.Handle

const invalidFD sysfd = windows.InvalidHandle

const (
	hasIPv6       = true
	hasUnixDomain = true

	msgOOB  = windows.MSG_OOB
	msgPeek = windows.MSG_PEEK

	sdReceive = 0 // SD_RECEIVE
	sdSend    = 1 // SD_SEND
	sdBoth    = 2 // SD_BOTH
)

func postCreate(fd sysfd) {}

const defaultSendFlags = 0

const peekDatagramSize = true

// Winsock identifiers missing from x/sys/windows.
const (
	soError            = 0x1007 // SO_ERROR
	soSndTimeo         = 0x1005 // SO_SNDTIMEO
	soOOBInline        = 0x0100 // SO_OOBINLINE
	soExclusiveAddrUse = ^4     // SO_EXCLUSIVEADDRUSE, bitwise NOT of SO_REUSEADDR

	fionbio  = 0x8004667e // FIONBIO
	fionread = 0x4004667f // FIONREAD
)

var (
	modws2_32       = windows.NewLazySystemDLL("ws2_32.dll")
	procAccept      = modws2_32.NewProc("accept")
	procIoctlsocket = modws2_32.NewProc("ioctlsocket")
)

const socketError = ^uintptr(0) // SOCKET_ERROR / INVALID_SOCKET (-1)

func afOf(f sockaddr.Family) int {
	switch f {
	case sockaddr.IPv4:
		return windows.AF_INET
	case sockaddr.IPv6:
		return windows.AF_INET6
	case sockaddr.Local:
		return windows.AF_UNIX
	default:
		return windows.AF_UNSPEC
	}
}

func sysSocket(f sockaddr.Family, datagram bool) (sysfd, error) {
	typ := windows.SOCK_STREAM
	if datagram {
		typ = windows.SOCK_DGRAM
	}
	fd, err := windows.Socket(afOf(f), typ, 0)
	if err != nil {
		return invalidFD, err
	}
	postCreate(fd)
	return fd, nil
}

func sysClose(fd sysfd) error { return windows.Closesocket(fd) }

func sysSetNonblock(fd sysfd, nonblocking bool) error {
	arg := uint32(0)
	if nonblocking {
		arg = 1
	}
	return ioctlsocket(fd, fionbio, &arg)
}

func ioctlsocket(fd sysfd, cmd uint32, arg *uint32) error {
	r1, _, e1 := procIoctlsocket.Call(uintptr(fd), uintptr(cmd), uintptr(unsafe.Pointer(arg)))
	if r1 == socketError {
		return e1
	}
	return nil
}

func sysConnect(fd sysfd, addr sockaddr.Addr) error {
	sa, err := addr.Sockaddr()
	if err != nil {
		return err
	}
	return windows.Connect(fd, sa)
}

func sysBind(fd sysfd, addr sockaddr.Addr) error {
	sa, err := addr.Sockaddr()
	if err != nil {
		return err
	}
	return windows.Bind(fd, sa)
}

func sysListen(fd sysfd, backlog int) error { return windows.Listen(fd, backlog) }

func sysAccept(fd sysfd) (sysfd, sockaddr.Addr, error) {
	var rsa windows.RawSockaddrAny
	rsaLen := int32(unsafe.Sizeof(rsa))
	r1, _, e1 := procAccept.Call(
		uintptr(fd),
		uintptr(unsafe.Pointer(&rsa)),
		uintptr(unsafe.Pointer(&rsaLen)),
	)
	if r1 == socketError {
		return invalidFD, sockaddr.Addr{}, e1
	}
	sa, err := rsa.Sockaddr()
	if err != nil {
		return sysfd(r1), sockaddr.Addr{}, nil
	}
	peer, _ := sockaddr.FromSockaddr(sa)
	return sysfd(r1), peer, nil
}

func sysShutdown(fd sysfd, how int) error { return windows.Shutdown(fd, how) }

func wsaBufs(bufs [][]byte) []windows.WSABuf {
	out := make([]windows.WSABuf, len(bufs))
	for i, b := range bufs {
		out[i].Len = uint32(len(b))
		if len(b) > 0 {
			out[i].Buf = &b[0]
		}
	}
	return out
}

func sysSend(fd sysfd, p []byte, flags int) (int, error) {
	return sysSendV(fd, [][]byte{p}, flags)
}

func sysRecv(fd sysfd, p []byte, flags int) (int, error) {
	return sysRecvV(fd, [][]byte{p}, flags)
}

func sysSendV(fd sysfd, bufs [][]byte, flags int) (int, error) {
	wb := wsaBufs(bufs)
	var sent uint32
	if err := windows.WSASend(fd, &wb[0], uint32(len(wb)), &sent, uint32(flags), nil, nil); err != nil {
		return 0, err
	}
	return int(sent), nil
}

func sysRecvV(fd sysfd, bufs [][]byte, flags int) (int, error) {
	wb := wsaBufs(bufs)
	var recvd uint32
	dwFlags := uint32(flags)
	if err := windows.WSARecv(fd, &wb[0], uint32(len(wb)), &recvd, &dwFlags, nil, nil); err != nil {
		return 0, err
	}
	return int(recvd), nil
}

func sysSendTo(fd sysfd, p []byte, flags int, addr sockaddr.Addr) (int, error) {
	return sysSendToV(fd, [][]byte{p}, flags, addr)
}

func sysSendToV(fd sysfd, bufs [][]byte, flags int, addr sockaddr.Addr) (int, error) {
	sa, err := addr.Sockaddr()
	if err != nil {
		return 0, err
	}
	wb := wsaBufs(bufs)
	var sent uint32
	if err := windows.WSASendto(fd, &wb[0], uint32(len(wb)), &sent, uint32(flags), sa, nil, nil); err != nil {
		return 0, err
	}
	return int(sent), nil
}

func sysRecvFrom(fd sysfd, p []byte, flags int) (int, sockaddr.Addr, error) {
	n, peer, err := sysRecvFromV(fd, [][]byte{p}, flags)
	return n, peer, err
}

func sysRecvFromV(fd sysfd, bufs [][]byte, flags int) (int, sockaddr.Addr, error) {
	wb := wsaBufs(bufs)
	var recvd uint32
	dwFlags := uint32(flags)
	var rsa windows.RawSockaddrAny
	rsaLen := int32(unsafe.Sizeof(rsa))
	err := windows.WSARecvFrom(fd, &wb[0], uint32(len(wb)), &recvd, &dwFlags, &rsa, &rsaLen, nil, nil)
	if err != nil {
		return 0, sockaddr.Addr{}, err
	}
	var peer sockaddr.Addr
	if sa, serr := rsa.Sockaddr(); serr == nil {
		peer, _ = sockaddr.FromSockaddr(sa)
	}
	return int(recvd), peer, nil
}

func sysGetsockname(fd sysfd) (sockaddr.Addr, error) {
	sa, err := windows.Getsockname(fd)
	if err != nil {
		return sockaddr.Addr{}, err
	}
	a, _ := sockaddr.FromSockaddr(sa)
	return a, nil
}

func sysGetpeername(fd sysfd) (sockaddr.Addr, error) {
	sa, err := windows.Getpeername(fd)
	if err != nil {
		return sockaddr.Addr{}, err
	}
	a, _ := sockaddr.FromSockaddr(sa)
	return a, nil
}

func sysAvailable(fd sysfd) (int, error) {
	var n uint32
	if err := ioctlsocket(fd, fionread, &n); err != nil {
		return 0, err
	}
	return int(n), nil
}

// Socket option plumbing.

func sysSetsockoptInt(fd sysfd, level, opt, value int) error {
	return windows.SetsockoptInt(fd, level, opt, value)
}

func sysGetsockoptInt(fd sysfd, level, opt int) (int, error) {
	return windows.GetsockoptInt(fd, level, opt)
}

const (
	lvlSocket = windows.SOL_SOCKET
	lvlTCP    = windows.IPPROTO_TCP

	optSndBuf    = windows.SO_SNDBUF
	optRcvBuf    = windows.SO_RCVBUF
	optKeepAlive = windows.SO_KEEPALIVE
	optBroadcast = windows.SO_BROADCAST
	optOOBInline = soOOBInline
	optNoDelay   = windows.TCP_NODELAY
	optError     = soError
)

// sysSetReuseAddr also toggles SO_EXCLUSIVEADDRUSE inversely: Winsock
// address reuse is only effective with exclusive use disabled.
func sysSetReuseAddr(fd sysfd, flag bool) error {
	if err := windows.SetsockoptInt(fd, windows.SOL_SOCKET, windows.SO_REUSEADDR, boolInt(flag)); err != nil {
		return err
	}
	return windows.SetsockoptInt(fd, windows.SOL_SOCKET, soExclusiveAddrUse, boolInt(!flag))
}

func sysGetReuseAddr(fd sysfd) (bool, error) {
	v, err := windows.GetsockoptInt(fd, windows.SOL_SOCKET, windows.SO_REUSEADDR)
	if err != nil {
		return false, err
	}
	x, err := windows.GetsockoptInt(fd, windows.SOL_SOCKET, soExclusiveAddrUse)
	if err != nil {
		return false, err
	}
	return v != 0 && x == 0, nil
}

// SO_REUSEPORT does not exist on Winsock; requesting it is silently
// accepted for cross-platform callers.
func sysSetReusePort(fd sysfd, flag bool) error { return nil }

func sysGetReusePort(fd sysfd) (bool, error) { return false, nil }

func sysSetIPv6Only(fd sysfd, flag bool) error {
	return windows.SetsockoptInt(fd, windows.IPPROTO_IPV6, windows.IPV6_V6ONLY, boolInt(flag))
}

func sysSetLinger(fd sysfd, on bool, seconds int) error {
	l := windows.Linger{Linger: int32(seconds)}
	if on {
		l.Onoff = 1
	}
	return windows.SetsockoptLinger(fd, windows.SOL_SOCKET, windows.SO_LINGER, &l)
}

func sysGetLinger(fd sysfd) (bool, int, error) {
	var l windows.Linger
	llen := int32(unsafe.Sizeof(l))
	err := windows.Getsockopt(fd, windows.SOL_SOCKET, windows.SO_LINGER,
		(*byte)(unsafe.Pointer(&l)), &llen)
	if err != nil {
		return false, 0, err
	}
	return l.Onoff != 0, int(l.Linger), nil
}

const (
	optSndTimeo = soSndTimeo
	optRcvTimeo = windows.SO_RCVTIMEO
)

// Winsock socket timeouts are integer milliseconds.

func sysSetSockTimeout(fd sysfd, opt int, d time.Duration) error {
	return windows.SetsockoptInt(fd, windows.SOL_SOCKET, opt, int(d/time.Millisecond))
}

func sysGetSockTimeout(fd sysfd, opt int) (time.Duration, error) {
	ms, err := windows.GetsockoptInt(fd, windows.SOL_SOCKET, opt)
	if err != nil {
		return 0, err
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// Errno classification.

func errnoCode(err error) int {
	var no syscall.Errno
	if errors.As(err, &no) {
		return int(no)
	}
	return 0
}

func isEINTR(err error) bool { return errnoIs(err, syscall.WSAEINTR) }

func isWouldBlock(err error) bool { return errnoIs(err, syscall.WSAEWOULDBLOCK) }

// A non-blocking Winsock connect reports in-progress as WSAEWOULDBLOCK.
func isInProgress(err error) bool {
	return errnoIs(err, syscall.WSAEINPROGRESS) || errnoIs(err, syscall.WSAEWOULDBLOCK)
}

func isTimedOut(err error) bool { return errnoIs(err, syscall.WSAETIMEDOUT) }

func errnoIs(err error, target syscall.Errno) bool {
	var no syscall.Errno
	return errors.As(err, &no) && no == target
}
