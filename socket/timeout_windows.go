// File: socket/timeout_windows.go
//go:build windows

// Author: solarobot <solarobot@gmail.com>

package socket

import "golang.org/x/sys/windows"

// Before Windows 8 the SO_RCVTIMEO/SO_SNDTIMEO options are clamped to
// a 500ms floor, so timeouts below that silently stretch. Those
// builds get userspace emulation through the poller.
func probeBrokenTimeout() bool {
	v := windows.RtlGetVersion()
	return v.MajorVersion < 6 || (v.MajorVersion == 6 && v.MinorVersion < 2)
}
