// File: socket/doc.go
// Author: solarobot <solarobot@gmail.com>
//
// Package socket wraps a native socket descriptor behind a uniform
// synchronous and non-blocking I/O contract over BSD sockets and
// Winsock. It owns the descriptor lifecycle, routes blocking transfers
// through userspace timeout emulation where the kernel's socket
// timeouts cannot be trusted, retries interrupted syscalls without
// extending caller deadlines, and folds platform error codes into the
// taxonomy of package api.
//
// A Socket performs no internal locking. Concurrent use of one Socket
// from multiple goroutines is safe only as one reader plus one writer;
// everything else must be serialized by the caller.

package socket
