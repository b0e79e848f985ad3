// File: socket/sendfile.go
// Author: solarobot <solarobot@gmail.com>
//
// File transmission. The kernel zero-copy primitive is preferred; a
// chunked read-and-send fallback covers secure transports, where
// zero-copy would bypass the encryption layered above the descriptor
// and leak plaintext, and platforms without a native primitive.

package socket

import (
	"io"
	"os"

	"github.com/solarobot/sockio/api"
	"github.com/solarobot/sockio/pool"
)

// File is the file resource consumed by SendFile. *os.File satisfies
// it; the native handle feeds the zero-copy path, Read and Seek feed
// the fallback, Stat sizes a count==0 transmission.
type File interface {
	io.ReadSeeker
	Fd() uintptr
	Stat() (os.FileInfo, error)
}

// SendFile transmits count bytes of f starting at offset, or the
// remainder of the file from offset when count is zero, and returns
// the total bytes moved. It is blocking-only: a non-blocking handle
// is rejected before any syscall.
func (s *Socket) SendFile(f File, offset, count int64) (int64, error) {
	if _, err := s.sock(); err != nil {
		return 0, err
	}
	if !s.blocking {
		return 0, api.NewError(api.ErrInvalidArgument, 0, "sendfile requires a blocking socket", "")
	}
	if s.secure || !hasNativeSendfile {
		return s.sendFileChunked(f, offset, count)
	}
	return s.sendFileNative(f, offset, count)
}

// sendFileChunked seeks to offset and moves data through a pooled
// 8 KiB buffer, clipped to the remaining requested count, until the
// source is exhausted or count bytes have been sent.
func (s *Socket) sendFileChunked(f File, offset, count int64) (int64, error) {
	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return 0, err
	}
	chunk := pool.Default().Get()
	defer pool.Default().Put(chunk)

	var total int64
	for count == 0 || total < count {
		buf := chunk
		if count > 0 {
			if remaining := count - total; remaining < int64(len(buf)) {
				buf = buf[:remaining]
			}
		}
		n, rerr := f.Read(buf)
		if n > 0 {
			sent := 0
			for sent < n {
				m, serr := s.Send(buf[sent:n])
				if serr != nil {
					return total + int64(sent), serr
				}
				sent += m
			}
			total += int64(n)
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return total, rerr
		}
		if n == 0 {
			break
		}
	}
	return total, nil
}

// remainderOf resolves a count of zero to the bytes between offset
// and the end of the file.
func remainderOf(f File, offset, count int64) (int64, error) {
	if count != 0 {
		return count, nil
	}
	fi, err := f.Stat()
	if err != nil {
		return 0, err
	}
	return fi.Size() - offset, nil
}
