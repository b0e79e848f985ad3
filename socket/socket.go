// File: socket/socket.go
// Author: solarobot <solarobot@gmail.com>
//
// Descriptor ownership and lifecycle. A Socket owns at most one native
// descriptor; once closed the descriptor is reset to the invalid
// sentinel and never reused by this handle.

package socket

import (
	"runtime"
	"time"

	"github.com/solarobot/sockio/api"
	"github.com/solarobot/sockio/poller"
	"github.com/solarobot/sockio/sockaddr"
)

// Socket wraps a native socket descriptor.
type Socket struct {
	fd            sysfd
	blocking      bool
	datagram      bool
	secure        bool
	brokenTimeout bool

	// Cached timeouts, consulted only while brokenTimeout is set.
	sndTimeout time.Duration
	rcvTimeout time.Duration
}

// New returns a Socket with no descriptor. The descriptor is created
// lazily by Open or by the first Connect/Bind-style call.
func New() *Socket {
	return &Socket{fd: invalidFD, blocking: true, brokenTimeout: brokenTimeoutProbe()}
}

// FromDescriptor adopts an externally created descriptor, e.g. one
// produced by accept in another component. The new Socket assumes
// ownership and considers the descriptor blocking.
func FromDescriptor(fd uintptr) *Socket {
	s := New()
	s.fd = sysfd(fd)
	return s
}

// Open creates a stream socket of the given family. It fails with
// ErrInvalidArgument if the handle already owns a descriptor.
func (s *Socket) Open(f sockaddr.Family) error {
	return s.open(f, false)
}

// OpenDatagram creates a datagram socket of the given family.
func (s *Socket) OpenDatagram(f sockaddr.Family) error {
	return s.open(f, true)
}

func (s *Socket) open(f sockaddr.Family, datagram bool) error {
	if s.fd != invalidFD {
		return api.NewError(api.ErrInvalidArgument, 0, "socket already open", "")
	}
	fd, err := sysSocket(f, datagram)
	if err != nil {
		return translateSys(err, "")
	}
	s.fd = fd
	s.datagram = datagram
	return nil
}

// Adopt installs an externally created descriptor into an otherwise
// unset handle. Installing over an owned descriptor is a caller error.
func (s *Socket) Adopt(fd uintptr) error {
	if s.fd != invalidFD {
		return api.NewError(api.ErrInvalidArgument, 0, "socket already owns a descriptor", "")
	}
	s.fd = sysfd(fd)
	return nil
}

// Close releases the descriptor. It is idempotent: repeated calls are
// no-ops and never affect other handles.
func (s *Socket) Close() error {
	if s.fd == invalidFD {
		return nil
	}
	err := sysClose(s.fd)
	s.fd = invalidFD
	if err != nil {
		return translateSys(err, "")
	}
	return nil
}

// Ok reports whether the handle currently owns a descriptor.
func (s *Socket) Ok() bool { return s.fd != invalidFD }

// Descriptor exposes the native descriptor for external collaborators
// such as TLS layers. Ownership stays with the Socket.
func (s *Socket) Descriptor() uintptr { return uintptr(s.fd) }

// sock returns the descriptor or ErrInvalidSocket before any OS call.
func (s *Socket) sock() (sysfd, error) {
	if s.fd == invalidFD {
		return invalidFD, api.ErrInvalidSocket
	}
	return s.fd, nil
}

// SetBlocking toggles the descriptor between blocking and
// non-blocking mode.
func (s *Socket) SetBlocking(block bool) error {
	fd, err := s.sock()
	if err != nil {
		return err
	}
	if err := sysSetNonblock(fd, !block); err != nil {
		return translateSys(err, "")
	}
	s.blocking = block
	return nil
}

// Blocking reports the last mode set through SetBlocking. A freshly
// created or adopted descriptor is assumed blocking.
func (s *Socket) Blocking() bool { return s.blocking }

// Secure reports whether an encryption layer sits above this
// descriptor. SendFile refuses the kernel zero-copy path on a secure
// transport because it would bypass that layer.
func (s *Socket) Secure() bool { return s.secure }

// SetSecure records the external encryption capability.
func (s *Socket) SetSecure(secure bool) { s.secure = secure }

// Poll blocks until the descriptor satisfies mode or the timeout
// elapses, returning true when ready.
func (s *Socket) Poll(timeout time.Duration, mode api.PollMode) (bool, error) {
	fd, err := s.sock()
	if err != nil {
		return false, err
	}
	return poller.Wait(uintptr(fd), mode, timeout)
}

// Features reports the transport capabilities of this build target.
func Features() api.Features {
	return api.Features{
		OS:             runtime.GOOS,
		PollStrategy:   poller.Strategy(),
		NativeSendfile: hasNativeSendfile,
		BrokenTimeout:  brokenTimeoutProbe(),
		IPv6:           hasIPv6,
		UnixDomain:     hasUnixDomain,
	}
}

// translateSys folds a raw syscall failure into the error taxonomy,
// attaching addr as context when known. Non-errno errors pass through.
func translateSys(err error, addr string) error {
	if code := errnoCode(err); code != 0 {
		return api.Translate(code, addr)
	}
	return err
}
