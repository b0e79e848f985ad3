// File: fake/file_test.go
// Author: solarobot <solarobot@gmail.com>

package fake

import (
	"errors"
	"io"
	"testing"
)

func TestFileReadToEOF(t *testing.T) {
	f := NewFile("mem", []byte("abcdef"))
	buf := make([]byte, 4)

	n, err := f.Read(buf)
	if err != nil || n != 4 || string(buf[:n]) != "abcd" {
		t.Fatalf("first read: n=%d err=%v buf=%q", n, err, buf[:n])
	}
	n, err = f.Read(buf)
	if err != nil || n != 2 || string(buf[:n]) != "ef" {
		t.Fatalf("second read: n=%d err=%v buf=%q", n, err, buf[:n])
	}
	if _, err = f.Read(buf); err != io.EOF {
		t.Fatalf("read past end: %v, want io.EOF", err)
	}
}

func TestFileSeek(t *testing.T) {
	f := NewFile("mem", []byte("0123456789"))
	pos, err := f.Seek(4, io.SeekStart)
	if err != nil || pos != 4 {
		t.Fatalf("seek: pos=%d err=%v", pos, err)
	}
	buf := make([]byte, 2)
	if _, err := f.Read(buf); err != nil || string(buf) != "45" {
		t.Fatalf("read after seek: %q err=%v", buf, err)
	}
	pos, err = f.Seek(-3, io.SeekEnd)
	if err != nil || pos != 7 {
		t.Fatalf("seek from end: pos=%d err=%v", pos, err)
	}
	if _, err := f.Seek(-1, io.SeekStart); err == nil {
		t.Fatal("negative position must be rejected")
	}
}

func TestFileFailNextRead(t *testing.T) {
	f := NewFile("mem", []byte("data"))
	boom := errors.New("boom")
	f.FailNextRead(boom)

	if _, err := f.Read(make([]byte, 4)); !errors.Is(err, boom) {
		t.Fatalf("got %v, want the injected error", err)
	}
	// The failure is one-shot.
	n, err := f.Read(make([]byte, 4))
	if err != nil || n != 4 {
		t.Fatalf("read after failure: n=%d err=%v", n, err)
	}
}

func TestFileStat(t *testing.T) {
	f := NewFile("mem", []byte("abc"))
	fi, err := f.Stat()
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if fi.Name() != "mem" || fi.Size() != 3 || fi.IsDir() {
		t.Fatalf("stat = %q size %d", fi.Name(), fi.Size())
	}
}
