// File: api/features.go
// Author: solarobot <solarobot@gmail.com>
//
// Capability report describing what the transport can do on the
// current build target.

package api

// Features advertises the detected capabilities of the transport for
// platform and runtime logic.
type Features struct {
	OS             string // build target operating system
	PollStrategy   string // "epoll", "poll" or "select"
	NativeSendfile bool   // kernel zero-copy file transmission available
	BrokenTimeout  bool   // socket timeouts emulated in userspace
	IPv6           bool   // IPv6 sockets supported
	UnixDomain     bool   // unix domain sockets supported
}
