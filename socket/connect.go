// File: socket/connect.go
// Author: solarobot <solarobot@gmail.com>
//
// Connection establishment, bind/listen and shutdown. The descriptor
// is created lazily on the first connect or bind when the handle is
// still unset.

package socket

import (
	"time"

	"github.com/solarobot/sockio/api"
	"github.com/solarobot/sockio/sockaddr"
)

// Connect establishes a blocking connection to addr, retrying the
// syscall when a signal interrupts it. Failures carry addr as context.
func (s *Socket) Connect(addr sockaddr.Addr) error {
	if s.fd == invalidFD {
		if err := s.open(addr.Family(), s.datagram); err != nil {
			return err
		}
	}
	for {
		err := sysConnect(s.fd, addr)
		if err == nil {
			return nil
		}
		if isEINTR(err) {
			continue
		}
		return translateSys(err, addr.String())
	}
}

// ConnectTimeout performs a non-blocking connect and waits up to
// timeout for it to finish. The handle's pre-call blocking mode is
// restored on every exit path.
func (s *Socket) ConnectTimeout(addr sockaddr.Addr, timeout time.Duration) (err error) {
	if s.fd == invalidFD {
		if err := s.open(addr.Family(), s.datagram); err != nil {
			return err
		}
	}
	if err := s.SetBlocking(false); err != nil {
		return err
	}
	defer func() {
		if rerr := s.SetBlocking(true); rerr != nil && err == nil {
			err = rerr
		}
	}()

	cerr := sysConnect(s.fd, addr)
	if cerr == nil {
		return nil
	}
	if !isInProgress(cerr) && !isWouldBlock(cerr) {
		return translateSys(cerr, addr.String())
	}
	ready, perr := s.Poll(timeout, api.PollRead|api.PollWrite|api.PollError)
	if perr != nil {
		return perr
	}
	if !ready {
		return api.NewError(api.ErrTimeout, 0, "connect timed out", addr.String())
	}
	// The wake may signal an asynchronous failure; SO_ERROR tells.
	code, gerr := s.PendingError()
	if gerr != nil {
		return gerr
	}
	if code != 0 {
		return api.Translate(code, addr.String())
	}
	return nil
}

// ConnectNonBlocking fires a connect and returns immediately, leaving
// the handle non-blocking. An in-progress result is not an error.
func (s *Socket) ConnectNonBlocking(addr sockaddr.Addr) error {
	if s.fd == invalidFD {
		if err := s.open(addr.Family(), s.datagram); err != nil {
			return err
		}
	}
	if err := s.SetBlocking(false); err != nil {
		return err
	}
	err := sysConnect(s.fd, addr)
	if err == nil || isInProgress(err) || isWouldBlock(err) {
		return nil
	}
	return translateSys(err, addr.String())
}

// Bind assigns the local address. Reuse options are applied before
// the OS bind for non-local families; an unsupported reuse-port
// request is silently accepted.
func (s *Socket) Bind(addr sockaddr.Addr, reuseAddr, reusePort bool) error {
	if s.fd == invalidFD {
		if err := s.open(addr.Family(), s.datagram); err != nil {
			return err
		}
	}
	if addr.Family() != sockaddr.Local {
		if err := s.SetReuseAddress(reuseAddr); err != nil {
			return err
		}
		if err := s.SetReusePort(reusePort); err != nil {
			return err
		}
	}
	if err := sysBind(s.fd, addr); err != nil {
		return translateSys(err, addr.String())
	}
	return nil
}

// Bind6 binds an IPv6 address with explicit control over dual-stack
// behavior. A non-IPv6 address is rejected with ErrInvalidArgument.
func (s *Socket) Bind6(addr sockaddr.Addr, reuseAddr, reusePort, ipv6Only bool) error {
	if !hasIPv6 {
		return api.NewError(api.ErrNotImplemented, 0, "no IPv6 support available", "")
	}
	if addr.Family() != sockaddr.IPv6 {
		return api.NewError(api.ErrInvalidArgument, 0, "address must be IPv6", addr.String())
	}
	if s.fd == invalidFD {
		if err := s.open(addr.Family(), s.datagram); err != nil {
			return err
		}
	}
	if err := sysSetIPv6Only(s.fd, ipv6Only); err != nil {
		return translateSys(err, "")
	}
	if err := s.SetReuseAddress(reuseAddr); err != nil {
		return err
	}
	if err := s.SetReusePort(reusePort); err != nil {
		return err
	}
	if err := sysBind(s.fd, addr); err != nil {
		return translateSys(err, addr.String())
	}
	return nil
}

// Listen marks the socket passive with the given backlog.
func (s *Socket) Listen(backlog int) error {
	fd, err := s.sock()
	if err != nil {
		return err
	}
	if err := sysListen(fd, backlog); err != nil {
		return translateSys(err, "")
	}
	return nil
}

// Accept waits for an incoming connection, retrying on interruption.
// The accepted descriptor is owned by the returned Socket; the peer
// address comes from the OS-filled address storage.
func (s *Socket) Accept() (*Socket, sockaddr.Addr, error) {
	fd, err := s.sock()
	if err != nil {
		return nil, sockaddr.Addr{}, err
	}
	for {
		nfd, peer, err := sysAccept(fd)
		if err == nil {
			ns := New()
			ns.fd = nfd
			return ns, peer, nil
		}
		if isEINTR(err) {
			continue
		}
		return nil, sockaddr.Addr{}, translateSys(err, "")
	}
}

// ShutdownReceive disables further receives.
func (s *Socket) ShutdownReceive() error { return s.shutdown(sdReceive) }

// ShutdownSend disables further sends.
func (s *Socket) ShutdownSend() error { return s.shutdown(sdSend) }

// Shutdown disables both directions.
func (s *Socket) Shutdown() error { return s.shutdown(sdBoth) }

func (s *Socket) shutdown(how int) error {
	fd, err := s.sock()
	if err != nil {
		return err
	}
	if err := sysShutdown(fd, how); err != nil {
		return translateSys(err, "")
	}
	return nil
}
