// File: socket/sendfile_unix.go
//go:build linux || darwin || dragonfly || freebsd || solaris

// Author: solarobot <solarobot@gmail.com>
// License: Apache-2.0
//
// Kernel zero-copy file transmission. A single sendfile call may move
// fewer bytes than requested, so the transfer loops until the
// requested count is accumulated.

package socket

import "golang.org/x/sys/unix"

const hasNativeSendfile = true

func (s *Socket) sendFileNative(f File, offset, count int64) (int64, error) {
	fd, err := s.sock()
	if err != nil {
		return 0, err
	}
	count, err = remainderOf(f, offset, count)
	if err != nil {
		return 0, err
	}
	var total int64
	for total < count {
		off := offset + total
		n, err := unix.Sendfile(fd, int(f.Fd()), &off, int(count-total))
		if n > 0 {
			total += int64(n)
		}
		if err != nil {
			if isEINTR(err) {
				continue
			}
			return total, translateSys(err, "")
		}
		if n == 0 {
			break // file shorter than requested
		}
	}
	return total, nil
}
