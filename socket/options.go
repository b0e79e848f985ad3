// File: socket/options.go
// Author: solarobot <solarobot@gmail.com>
//
// Socket option accessors: thin pass-throughs to the per-target
// option table. Identifiers are OS-defined; nothing here embeds a
// numeric constant directly.

package socket

import "github.com/solarobot/sockio/sockaddr"

// SetOptionInt sets an arbitrary integer socket option. The level and
// option identifiers are the OS-defined constants for this target.
func (s *Socket) SetOptionInt(level, opt, value int) error {
	fd, err := s.sock()
	if err != nil {
		return err
	}
	if err := sysSetsockoptInt(fd, level, opt, value); err != nil {
		return translateSys(err, "")
	}
	return nil
}

// OptionInt reads an arbitrary integer socket option.
func (s *Socket) OptionInt(level, opt int) (int, error) {
	fd, err := s.sock()
	if err != nil {
		return 0, err
	}
	v, err := sysGetsockoptInt(fd, level, opt)
	if err != nil {
		return 0, translateSys(err, "")
	}
	return v, nil
}

func (s *Socket) setBoolOption(level, opt int, flag bool) error {
	return s.SetOptionInt(level, opt, boolInt(flag))
}

func (s *Socket) boolOption(level, opt int) (bool, error) {
	v, err := s.OptionInt(level, opt)
	return v != 0, err
}

// SetSendBufferSize sets the kernel send buffer size in bytes.
func (s *Socket) SetSendBufferSize(size int) error {
	return s.SetOptionInt(lvlSocket, optSndBuf, size)
}

// SendBufferSize returns the kernel send buffer size in bytes.
func (s *Socket) SendBufferSize() (int, error) {
	return s.OptionInt(lvlSocket, optSndBuf)
}

// SetReceiveBufferSize sets the kernel receive buffer size in bytes.
func (s *Socket) SetReceiveBufferSize(size int) error {
	return s.SetOptionInt(lvlSocket, optRcvBuf, size)
}

// ReceiveBufferSize returns the kernel receive buffer size in bytes.
func (s *Socket) ReceiveBufferSize() (int, error) {
	return s.OptionInt(lvlSocket, optRcvBuf)
}

// SetKeepAlive toggles periodic liveness probes on the connection.
func (s *Socket) SetKeepAlive(flag bool) error {
	return s.setBoolOption(lvlSocket, optKeepAlive, flag)
}

// KeepAlive reports whether keep-alive probes are enabled.
func (s *Socket) KeepAlive() (bool, error) {
	return s.boolOption(lvlSocket, optKeepAlive)
}

// SetBroadcast permits sending to broadcast addresses.
func (s *Socket) SetBroadcast(flag bool) error {
	return s.setBoolOption(lvlSocket, optBroadcast, flag)
}

// Broadcast reports whether broadcast sends are permitted.
func (s *Socket) Broadcast() (bool, error) {
	return s.boolOption(lvlSocket, optBroadcast)
}

// SetOOBInline delivers out-of-band data in the normal stream.
func (s *Socket) SetOOBInline(flag bool) error {
	return s.setBoolOption(lvlSocket, optOOBInline, flag)
}

// OOBInline reports whether out-of-band data is delivered inline.
func (s *Socket) OOBInline() (bool, error) {
	return s.boolOption(lvlSocket, optOOBInline)
}

// SetNoDelay disables the Nagle algorithm.
func (s *Socket) SetNoDelay(flag bool) error {
	return s.setBoolOption(lvlTCP, optNoDelay, flag)
}

// NoDelay reports whether the Nagle algorithm is disabled.
func (s *Socket) NoDelay() (bool, error) {
	return s.boolOption(lvlTCP, optNoDelay)
}

// SetLinger controls whether Close blocks until unsent data is
// delivered or discarded, for up to the given seconds.
func (s *Socket) SetLinger(on bool, seconds int) error {
	fd, err := s.sock()
	if err != nil {
		return err
	}
	if err := sysSetLinger(fd, on, seconds); err != nil {
		return translateSys(err, "")
	}
	return nil
}

// Linger returns the linger configuration.
func (s *Socket) Linger() (on bool, seconds int, err error) {
	fd, err := s.sock()
	if err != nil {
		return false, 0, err
	}
	on, seconds, err = sysGetLinger(fd)
	if err != nil {
		return false, 0, translateSys(err, "")
	}
	return on, seconds, nil
}

// SetReuseAddress permits binding to an address in TIME_WAIT.
func (s *Socket) SetReuseAddress(flag bool) error {
	fd, err := s.sock()
	if err != nil {
		return err
	}
	if err := sysSetReuseAddr(fd, flag); err != nil {
		return translateSys(err, "")
	}
	return nil
}

// ReuseAddress reports whether address reuse is enabled.
func (s *Socket) ReuseAddress() (bool, error) {
	fd, err := s.sock()
	if err != nil {
		return false, err
	}
	v, err := sysGetReuseAddr(fd)
	if err != nil {
		return false, translateSys(err, "")
	}
	return v, nil
}

// SetReusePort permits multiple sockets to bind the same port where
// the platform supports it. Unsupported platforms accept the request
// silently so cross-platform callers need no special casing.
func (s *Socket) SetReusePort(flag bool) error {
	fd, err := s.sock()
	if err != nil {
		return err
	}
	return sysSetReusePort(fd, flag)
}

// ReusePort reports whether port reuse is enabled; false where the
// platform has no such option.
func (s *Socket) ReusePort() (bool, error) {
	fd, err := s.sock()
	if err != nil {
		return false, err
	}
	return sysGetReusePort(fd)
}

// PendingError reads and clears the descriptor's pending error code,
// as left behind by an asynchronous connect failure.
func (s *Socket) PendingError() (int, error) {
	return s.OptionInt(lvlSocket, optError)
}

// Available returns the number of bytes that can be read without
// blocking. On platforms where the queued byte count of a datagram
// socket includes overhead, the next datagram is sized with a peek.
func (s *Socket) Available() (int, error) {
	fd, err := s.sock()
	if err != nil {
		return 0, err
	}
	n, err := sysAvailable(fd)
	if err != nil {
		return 0, translateSys(err, "")
	}
	if peekDatagramSize && s.datagram && n > 0 {
		buf := make([]byte, n)
		n, _, err = sysRecvFrom(fd, buf, msgPeek)
		if err != nil {
			return 0, s.transferError(err)
		}
	}
	return n, nil
}

// LocalAddr returns the locally bound address.
func (s *Socket) LocalAddr() (sockaddr.Addr, error) {
	fd, err := s.sock()
	if err != nil {
		return sockaddr.Addr{}, err
	}
	a, err := sysGetsockname(fd)
	if err != nil {
		return sockaddr.Addr{}, translateSys(err, "")
	}
	return a, nil
}

// PeerAddr returns the connected peer's address.
func (s *Socket) PeerAddr() (sockaddr.Addr, error) {
	fd, err := s.sock()
	if err != nil {
		return sockaddr.Addr{}, err
	}
	a, err := sysGetpeername(fd)
	if err != nil {
		return sockaddr.Addr{}, translateSys(err, "")
	}
	return a, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
