// File: socket/sendfile_windows.go
//go:build windows

// Author: solarobot <solarobot@gmail.com>
// License: Apache-2.0
//
// TransmitFile-based zero-copy file transmission.

package socket

import (
	"golang.org/x/sys/windows"
)

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

	ev, err := windows.CreateEvent(nil, 1, 0, nil)
	if err != nil {
		return 0, translateSys(err, "")
	}
	defer windows.CloseHandle(ev)

	var ov windows.Overlapped
	ov.Offset = uint32(offset)
	ov.OffsetHigh = uint32(offset >> 32)
	ov.HEvent = ev

	err = windows.TransmitFile(fd, windows.Handle(f.Fd()), uint32(count), 0, &ov, nil, 0)
	if err != nil {
		// WSA_IO_PENDING and ERROR_IO_PENDING share the same code.
		if !errnoIs(err, windows.ERROR_IO_PENDING) {
			return 0, translateSys(err, "")
		}
		if _, werr := windows.WaitForSingleObject(ev, windows.INFINITE); werr != nil {
			return 0, translateSys(werr, "")
		}
	}
	return count, nil
}
