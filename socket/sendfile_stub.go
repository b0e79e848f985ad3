// File: socket/sendfile_stub.go
//go:build !linux && !darwin && !dragonfly && !freebsd && !solaris && !windows

// Author: solarobot <solarobot@gmail.com>
// License: Apache-2.0

package socket

import "github.com/solarobot/sockio/api"

const hasNativeSendfile = false

// SendFile routes everything through the chunked fallback here; this
// is only reachable if the capability constant is ignored.
func (s *Socket) sendFileNative(f File, offset, count int64) (int64, error) {
	return 0, api.ErrNotImplemented
}
