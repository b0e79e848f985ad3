// File: socket/timeout_unix.go
//go:build !windows

// Author: solarobot <solarobot@gmail.com>

package socket

// Kernel socket timeouts are reliable on every supported unix.
func probeBrokenTimeout() bool { return false }
