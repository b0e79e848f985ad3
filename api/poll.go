// File: api/poll.go
// Author: solarobot <solarobot@gmail.com>
//
// Readiness interest mask shared by the poller and the socket layer.

package api

// PollMode is a bitmask of readiness conditions a caller waits for.
type PollMode int

const (
	// PollRead waits until a read can complete without blocking.
	PollRead PollMode = 1 << iota
	// PollWrite waits until a write can complete without blocking.
	PollWrite
	// PollError waits for a pending error condition on the descriptor.
	PollError
)

// Has reports whether all bits of m are set in p.
func (p PollMode) Has(m PollMode) bool { return p&m == m }

// String returns a compact form such as "rw" or "rwe" for diagnostics.
func (p PollMode) String() string {
	buf := make([]byte, 0, 3)
	if p.Has(PollRead) {
		buf = append(buf, 'r')
	}
	if p.Has(PollWrite) {
		buf = append(buf, 'w')
	}
	if p.Has(PollError) {
		buf = append(buf, 'e')
	}
	if len(buf) == 0 {
		return "-"
	}
	return string(buf)
}
