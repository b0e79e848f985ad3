// File: poller/poller_stub.go
//go:build !unix && !windows

// Author: solarobot <solarobot@gmail.com>
// License: Apache-2.0

package poller

import (
	"time"

	"github.com/solarobot/sockio/api"
)

const strategy = "none"

func wait(fd uintptr, mode api.PollMode, timeout time.Duration) (bool, error) {
	return false, api.ErrNotImplemented
}
