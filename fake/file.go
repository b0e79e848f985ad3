// Package fake
// Author: solarobot <solarobot@gmail.com>
//
// Fake implementations for testing and development.
// Provides predictable, controllable behavior without touching the OS.

package fake

import (
	"io"
	"os"
	"sync"
	"time"
)

// File is an in-memory file resource for exercising the chunked file
// transmission path. It has no native handle, so it must not be used
// with kernel zero-copy transmission.
type File struct {
	mu   sync.Mutex
	name string
	data []byte
	off  int64

	readErr error // injected failure for the next Read
}

// NewFile creates a fake file with the given contents.
func NewFile(name string, data []byte) *File {
	return &File{name: name, data: data}
}

// FailNextRead makes the next Read return err instead of data.
func (f *File) FailNextRead(err error) {
	f.mu.Lock()
	f.readErr = err
	f.mu.Unlock()
}

// Read implements io.Reader.
func (f *File) Read(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		err := f.readErr
		f.readErr = nil
		return 0, err
	}
	if f.off >= int64(len(f.data)) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.off:])
	f.off += int64(n)
	return n, nil
}

// Seek implements io.Seeker.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var base int64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = f.off
	case io.SeekEnd:
		base = int64(len(f.data))
	default:
		return 0, os.ErrInvalid
	}
	pos := base + offset
	if pos < 0 {
		return 0, os.ErrInvalid
	}
	f.off = pos
	return pos, nil
}

// Fd returns no handle: the fake has no kernel object behind it.
func (f *File) Fd() uintptr { return ^uintptr(0) }

// Stat implements the file resource contract.
func (f *File) Stat() (os.FileInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fileInfo{name: f.name, size: int64(len(f.data))}, nil
}

type fileInfo struct {
	name string
	size int64
}

func (fi fileInfo) Name() string       { return fi.name }
func (fi fileInfo) Size() int64        { return fi.size }
func (fi fileInfo) Mode() os.FileMode  { return 0 }
func (fi fileInfo) ModTime() time.Time { return time.Time{} }
func (fi fileInfo) IsDir() bool        { return false }
func (fi fileInfo) Sys() any           { return nil }
