// File: socket/timeout.go
// Author: solarobot <solarobot@gmail.com>
//
// Userspace timeout emulation. Platforms whose kernel socket timeouts
// are imprecise or absent are detected once per process; affected
// handles keep configured timeouts locally and drive blocking
// transfers through the readiness poller instead.

package socket

import (
	"sync"
	"time"

	"github.com/solarobot/sockio/api"
)

// brokenTimeoutProbe reports whether kernel socket timeouts can be
// trusted on this platform. The probe runs once and is cached; the
// result is threaded into each handle at construction.
var brokenTimeoutProbe func() bool = sync.OnceValue(probeBrokenTimeout)

// SetBrokenTimeoutProbe swaps the probe consulted when handles are
// created and returns the previous one. Intended for tests; handles
// that already exist keep the mode captured at construction.
func SetBrokenTimeoutProbe(probe func() bool) (old func() bool) {
	old = brokenTimeoutProbe
	brokenTimeoutProbe = probe
	return old
}

// checkBrokenTimeout gates a blocking transfer when emulation is
// active: the stored timeout is spent waiting for readiness, and
// expiry surfaces as ErrTimeout before any transfer syscall is made.
// A transparent no-op while emulation is inactive or no timeout is
// configured.
func (s *Socket) checkBrokenTimeout(mode api.PollMode) error {
	if !s.brokenTimeout {
		return nil
	}
	d := s.rcvTimeout
	if mode == api.PollWrite {
		d = s.sndTimeout
	}
	if d <= 0 {
		return nil
	}
	ready, err := s.Poll(d, mode)
	if err != nil {
		return err
	}
	if !ready {
		return api.NewError(api.ErrTimeout, 0, "operation timed out", "")
	}
	return nil
}

// SetSendTimeout bounds blocking sends. With emulation active the
// value is kept locally instead of relying on the OS option.
func (s *Socket) SetSendTimeout(d time.Duration) error {
	if s.brokenTimeout {
		s.sndTimeout = d
		return nil
	}
	fd, err := s.sock()
	if err != nil {
		return err
	}
	if err := sysSetSockTimeout(fd, optSndTimeo, d); err != nil {
		return translateSys(err, "")
	}
	return nil
}

// SendTimeout returns the configured send timeout.
func (s *Socket) SendTimeout() (time.Duration, error) {
	if s.brokenTimeout {
		return s.sndTimeout, nil
	}
	fd, err := s.sock()
	if err != nil {
		return 0, err
	}
	d, err := sysGetSockTimeout(fd, optSndTimeo)
	if err != nil {
		return 0, translateSys(err, "")
	}
	return d, nil
}

// SetReceiveTimeout bounds blocking receives. With emulation active
// the value is kept locally instead of relying on the OS option.
func (s *Socket) SetReceiveTimeout(d time.Duration) error {
	if s.brokenTimeout {
		s.rcvTimeout = d
		return nil
	}
	fd, err := s.sock()
	if err != nil {
		return err
	}
	if err := sysSetSockTimeout(fd, optRcvTimeo, d); err != nil {
		return translateSys(err, "")
	}
	return nil
}

// ReceiveTimeout returns the configured receive timeout.
func (s *Socket) ReceiveTimeout() (time.Duration, error) {
	if s.brokenTimeout {
		return s.rcvTimeout, nil
	}
	fd, err := s.sock()
	if err != nil {
		return 0, err
	}
	d, err := sysGetSockTimeout(fd, optRcvTimeo)
	if err != nil {
		return 0, translateSys(err, "")
	}
	return d, nil
}
