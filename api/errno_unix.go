// File: api/errno_unix.go
//go:build unix

// Author: solarobot <solarobot@gmail.com>
// License: Apache-2.0
//
// Translation of BSD socket errno values into the error taxonomy.

package api

import (
	"strconv"

	"golang.org/x/sys/unix"
)

// Translate maps a raw errno to a taxonomy error. A zero code means no
// error and translates to nil. addr is attached as diagnostic context
// where the taxonomy carries an attempted address.
//
// Translate is pure: the same (code, addr) pair always produces an
// identical result.
func Translate(code int, addr string) error {
	if code == 0 {
		return nil
	}
	errno := unix.Errno(code)
	switch errno {
	case unix.EINTR:
		return NewError(ErrIO, code, "interrupted", addr)
	case unix.EACCES:
		return NewError(ErrIO, code, "permission denied", addr)
	case unix.EFAULT:
		return NewError(ErrIO, code, "bad address", addr)
	case unix.EINVAL:
		return NewError(ErrInvalidArgument, code, "invalid argument", addr)
	case unix.EMFILE:
		return NewError(ErrIO, code, "too many open files", addr)
	case unix.EWOULDBLOCK:
		return NewError(ErrIO, code, "operation would block", addr)
	case unix.EINPROGRESS:
		return NewError(ErrIO, code, "operation now in progress", addr)
	case unix.EALREADY:
		return NewError(ErrIO, code, "operation already in progress", addr)
	case unix.ENOTSOCK:
		return NewError(ErrIO, code, "socket operation attempted on non-socket", addr)
	case unix.EDESTADDRREQ:
		return NewError(ErrIO, code, "destination address required", addr)
	case unix.EMSGSIZE:
		return NewError(ErrIO, code, "message too long", addr)
	case unix.EPROTOTYPE:
		return NewError(ErrIO, code, "wrong protocol type", addr)
	case unix.ENOPROTOOPT:
		return NewError(ErrIO, code, "protocol not available", addr)
	case unix.EPROTONOSUPPORT:
		return NewError(ErrIO, code, "protocol not supported", addr)
	case unix.ESOCKTNOSUPPORT:
		return NewError(ErrIO, code, "socket type not supported", addr)
	case unix.EOPNOTSUPP:
		return NewError(ErrNotImplemented, code, "operation not supported", addr)
	case unix.EPFNOSUPPORT:
		return NewError(ErrIO, code, "protocol family not supported", addr)
	case unix.EAFNOSUPPORT:
		return NewError(ErrIO, code, "address family not supported", addr)
	case unix.EADDRINUSE:
		return NewError(ErrAddressInUse, code, "address already in use", addr)
	case unix.EADDRNOTAVAIL:
		return NewError(ErrAddressNotAvailable, code, "cannot assign requested address", addr)
	case unix.ENETDOWN:
		return NewError(ErrNetworkDown, code, "network is down", addr)
	case unix.ENETUNREACH:
		return NewError(ErrNetworkUnreachable, code, "network is unreachable", addr)
	case unix.ENETRESET:
		return NewError(ErrNetworkReset, code, "network dropped connection on reset", addr)
	case unix.ECONNABORTED:
		return NewError(ErrConnectionAborted, code, "connection aborted", addr)
	case unix.ECONNRESET:
		return NewError(ErrConnectionReset, code, "connection reset by peer", addr)
	case unix.ENOBUFS:
		return NewError(ErrIO, code, "no buffer space available", addr)
	case unix.EISCONN:
		return NewError(ErrIO, code, "socket is already connected", addr)
	case unix.ENOTCONN:
		return NewError(ErrIO, code, "socket is not connected", addr)
	case unix.ESHUTDOWN:
		return NewError(ErrIO, code, "cannot send after socket shutdown", addr)
	case unix.ETIMEDOUT:
		return NewError(ErrTimeout, code, "operation timed out", addr)
	case unix.ECONNREFUSED:
		return NewError(ErrConnectionRefused, code, "connection refused", addr)
	case unix.EHOSTDOWN:
		return NewError(ErrHostDown, code, "host is down", addr)
	case unix.EHOSTUNREACH:
		return NewError(ErrHostUnreachable, code, "no route to host", addr)
	case unix.EPIPE:
		return NewError(ErrIO, code, "broken pipe", addr)
	case unix.EBADF:
		return NewError(ErrIO, code, "bad socket descriptor", addr)
	case unix.ENOENT:
		return NewError(ErrIO, code, "not found", addr)
	default:
		return NewError(ErrIO, code, strconv.Itoa(code)+": "+errno.Error(), addr)
	}
}
