// File: api/errno_windows.go
//go:build windows

// Author: solarobot <solarobot@gmail.com>
// License: Apache-2.0
//
// Translation of Winsock error codes into the error taxonomy.

package api

import (
	"strconv"
	"syscall"
)

// Translate maps a raw Winsock error code to a taxonomy error. A zero
// code means no error and translates to nil. addr is attached as
// diagnostic context where the taxonomy carries an attempted address.
//
// Translate is pure: the same (code, addr) pair always produces an
// identical result.
func Translate(code int, addr string) error {
	if code == 0 {
		return nil
	}
	errno := syscall.Errno(code)
	switch errno {
	case syscall.WSASYSNOTREADY:
		return NewError(ErrIO, code, "network subsystem not ready", addr)
	case syscall.WSANOTINITIALISED:
		return NewError(ErrIO, code, "network subsystem not initialized", addr)
	case syscall.WSAEINTR:
		return NewError(ErrIO, code, "interrupted", addr)
	case syscall.WSAEACCES:
		return NewError(ErrIO, code, "permission denied", addr)
	case syscall.WSAEFAULT:
		return NewError(ErrIO, code, "bad address", addr)
	case syscall.WSAEINVAL:
		return NewError(ErrInvalidArgument, code, "invalid argument", addr)
	case syscall.WSAEMFILE:
		return NewError(ErrIO, code, "too many open files", addr)
	case syscall.WSAEWOULDBLOCK:
		return NewError(ErrIO, code, "operation would block", addr)
	case syscall.WSAEINPROGRESS:
		return NewError(ErrIO, code, "operation now in progress", addr)
	case syscall.WSAEALREADY:
		return NewError(ErrIO, code, "operation already in progress", addr)
	case syscall.WSAENOTSOCK:
		return NewError(ErrIO, code, "socket operation attempted on non-socket", addr)
	case syscall.WSAEDESTADDRREQ:
		return NewError(ErrIO, code, "destination address required", addr)
	case syscall.WSAEMSGSIZE:
		return NewError(ErrIO, code, "message too long", addr)
	case syscall.WSAEPROTOTYPE:
		return NewError(ErrIO, code, "wrong protocol type", addr)
	case syscall.WSAENOPROTOOPT:
		return NewError(ErrIO, code, "protocol not available", addr)
	case syscall.WSAEPROTONOSUPPORT:
		return NewError(ErrIO, code, "protocol not supported", addr)
	case syscall.WSAESOCKTNOSUPPORT:
		return NewError(ErrIO, code, "socket type not supported", addr)
	case syscall.WSAEOPNOTSUPP:
		return NewError(ErrNotImplemented, code, "operation not supported", addr)
	case syscall.WSAEPFNOSUPPORT:
		return NewError(ErrIO, code, "protocol family not supported", addr)
	case syscall.WSAEAFNOSUPPORT:
		return NewError(ErrIO, code, "address family not supported", addr)
	case syscall.WSAEADDRINUSE:
		return NewError(ErrAddressInUse, code, "address already in use", addr)
	case syscall.WSAEADDRNOTAVAIL:
		return NewError(ErrAddressNotAvailable, code, "cannot assign requested address", addr)
	case syscall.WSAENETDOWN:
		return NewError(ErrNetworkDown, code, "network is down", addr)
	case syscall.WSAENETUNREACH:
		return NewError(ErrNetworkUnreachable, code, "network is unreachable", addr)
	case syscall.WSAENETRESET:
		return NewError(ErrNetworkReset, code, "network dropped connection on reset", addr)
	case syscall.WSAECONNABORTED:
		return NewError(ErrConnectionAborted, code, "connection aborted", addr)
	case syscall.WSAECONNRESET:
		return NewError(ErrConnectionReset, code, "connection reset by peer", addr)
	case syscall.WSAENOBUFS:
		return NewError(ErrIO, code, "no buffer space available", addr)
	case syscall.WSAEISCONN:
		return NewError(ErrIO, code, "socket is already connected", addr)
	case syscall.WSAENOTCONN:
		return NewError(ErrIO, code, "socket is not connected", addr)
	case syscall.WSAESHUTDOWN:
		return NewError(ErrIO, code, "cannot send after socket shutdown", addr)
	case syscall.WSAETIMEDOUT:
		return NewError(ErrTimeout, code, "operation timed out", addr)
	case syscall.WSAECONNREFUSED:
		return NewError(ErrConnectionRefused, code, "connection refused", addr)
	case syscall.WSAEHOSTDOWN:
		return NewError(ErrHostDown, code, "host is down", addr)
	case syscall.WSAEHOSTUNREACH:
		return NewError(ErrHostUnreachable, code, "no route to host", addr)
	default:
		return NewError(ErrIO, code, strconv.Itoa(code)+": "+errno.Error(), addr)
	}
}
