// File: socket/transfer.go
// Author: solarobot <solarobot@gmail.com>
//
// Data transfer: single-buffer, scatter/gather, datagram and
// out-of-band forms. Blocking calls retry interrupted syscalls and
// pass through the timeout emulator; non-blocking calls report a
// would-block condition as the benign ErrWouldBlock outcome.

package socket

import (
	"time"

	"github.com/solarobot/sockio/api"
	"github.com/solarobot/sockio/sockaddr"
)

// Send writes p to the connected peer and returns the number of bytes
// actually queued, which may be less than len(p).
func (s *Socket) Send(p []byte) (int, error) {
	if s.blocking {
		if err := s.checkBrokenTimeout(api.PollWrite); err != nil {
			return 0, err
		}
	}
	for {
		fd, err := s.sock()
		if err != nil {
			return 0, err
		}
		n, err := sysSend(fd, p, defaultSendFlags)
		if err == nil {
			return n, nil
		}
		if s.blocking && isEINTR(err) {
			continue
		}
		return 0, s.transferError(err)
	}
}

// Recv reads up to len(p) bytes from the connected peer. A return of
// zero bytes with a nil error means the peer shut down its send side.
func (s *Socket) Recv(p []byte) (int, error) {
	if s.blocking {
		if err := s.checkBrokenTimeout(api.PollRead); err != nil {
			return 0, err
		}
	}
	for {
		fd, err := s.sock()
		if err != nil {
			return 0, err
		}
		n, err := sysRecv(fd, p, 0)
		if err == nil {
			return n, nil
		}
		if s.blocking && isEINTR(err) {
			continue
		}
		return 0, s.transferError(err)
	}
}

// SendV writes the buffers in one scatter/gather operation and
// returns the total bytes queued across them.
func (s *Socket) SendV(bufs [][]byte) (int, error) {
	if s.blocking {
		if err := s.checkBrokenTimeout(api.PollWrite); err != nil {
			return 0, err
		}
	}
	for {
		fd, err := s.sock()
		if err != nil {
			return 0, err
		}
		n, err := sysSendV(fd, bufs, defaultSendFlags)
		if err == nil {
			return n, nil
		}
		if s.blocking && isEINTR(err) {
			continue
		}
		return 0, s.transferError(err)
	}
}

// RecvV fills the buffers in order from one gather read and returns
// the total bytes received.
func (s *Socket) RecvV(bufs [][]byte) (int, error) {
	if s.blocking {
		if err := s.checkBrokenTimeout(api.PollRead); err != nil {
			return 0, err
		}
	}
	for {
		fd, err := s.sock()
		if err != nil {
			return 0, err
		}
		n, err := sysRecvV(fd, bufs, 0)
		if err == nil {
			return n, nil
		}
		if s.blocking && isEINTR(err) {
			continue
		}
		return 0, s.transferError(err)
	}
}

// SendTo writes a datagram to addr. An unset handle is opened lazily
// as a datagram socket of the target's family.
func (s *Socket) SendTo(p []byte, addr sockaddr.Addr) (int, error) {
	if s.fd == invalidFD {
		if err := s.open(addr.Family(), true); err != nil {
			return 0, err
		}
	}
	for {
		n, err := sysSendTo(s.fd, p, defaultSendFlags, addr)
		if err == nil {
			return n, nil
		}
		if s.blocking && isEINTR(err) {
			continue
		}
		return 0, s.transferError(err)
	}
}

// SendToV writes the buffers as one datagram to addr.
func (s *Socket) SendToV(bufs [][]byte, addr sockaddr.Addr) (int, error) {
	if s.fd == invalidFD {
		if err := s.open(addr.Family(), true); err != nil {
			return 0, err
		}
	}
	for {
		n, err := sysSendToV(s.fd, bufs, defaultSendFlags, addr)
		if err == nil {
			return n, nil
		}
		if s.blocking && isEINTR(err) {
			continue
		}
		return 0, s.transferError(err)
	}
}

// RecvFrom reads one datagram into p. The peer address is populated
// from OS-filled address storage only on a successful return.
func (s *Socket) RecvFrom(p []byte) (int, sockaddr.Addr, error) {
	if s.blocking {
		if err := s.checkBrokenTimeout(api.PollRead); err != nil {
			return 0, sockaddr.Addr{}, err
		}
	}
	for {
		fd, err := s.sock()
		if err != nil {
			return 0, sockaddr.Addr{}, err
		}
		n, peer, err := sysRecvFrom(fd, p, 0)
		if err == nil {
			return n, peer, nil
		}
		if s.blocking && isEINTR(err) {
			continue
		}
		return 0, sockaddr.Addr{}, s.transferError(err)
	}
}

// RecvFromV reads one datagram scattered across the buffers.
func (s *Socket) RecvFromV(bufs [][]byte) (int, sockaddr.Addr, error) {
	if s.blocking {
		if err := s.checkBrokenTimeout(api.PollRead); err != nil {
			return 0, sockaddr.Addr{}, err
		}
	}
	for {
		fd, err := s.sock()
		if err != nil {
			return 0, sockaddr.Addr{}, err
		}
		n, peer, err := sysRecvFromV(fd, bufs, 0)
		if err == nil {
			return n, peer, nil
		}
		if s.blocking && isEINTR(err) {
			continue
		}
		return 0, sockaddr.Addr{}, s.transferError(err)
	}
}

// SendUrgent sends one out-of-band byte immediately. Urgent data is
// not subject to timeout emulation.
func (s *Socket) SendUrgent(b byte) error {
	fd, err := s.sock()
	if err != nil {
		return err
	}
	if _, err := sysSend(fd, []byte{b}, msgOOB|defaultSendFlags); err != nil {
		return translateSys(err, "")
	}
	return nil
}

// RecvTimeout waits up to timeout for readability, sizes *buf to the
// bytes the OS reports available (growing, never shrinking below what
// is needed), performs one read and trims *buf to the bytes actually
// received. It returns 0 with *buf untouched when nothing arrives
// within the timeout.
func (s *Socket) RecvTimeout(buf *[]byte, timeout time.Duration) (int, error) {
	ready, err := s.Poll(timeout, api.PollRead)
	if err != nil {
		return 0, err
	}
	if !ready {
		return 0, nil
	}
	avail, err := s.Available()
	if err != nil {
		return 0, err
	}
	b := *buf
	if len(b) < avail {
		if cap(b) >= avail {
			b = b[:avail]
		} else {
			nb := make([]byte, avail)
			copy(nb, b)
			b = nb
		}
	}
	n, err := s.Recv(b)
	if err != nil {
		return 0, err
	}
	if n < len(b) {
		b = b[:n]
	}
	*buf = b
	return n, nil
}

// transferError folds the common failure tail of a transfer syscall:
// would-block is benign for a non-blocking handle, a native timeout
// expiry surfaces as ErrTimeout, everything else is translated.
func (s *Socket) transferError(err error) error {
	if !s.blocking && isWouldBlock(err) {
		return api.ErrWouldBlock
	}
	if isWouldBlock(err) || isTimedOut(err) {
		return api.NewError(api.ErrTimeout, errnoCode(err), "operation timed out", "")
	}
	return translateSys(err, "")
}
