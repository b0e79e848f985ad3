// File: api/errors.go
// Author: solarobot <solarobot@gmail.com>
//
// Error taxonomy of the library. Every failure surfaced by the socket
// layer unwraps to exactly one of the sentinel kinds below, so callers
// branch with errors.Is regardless of platform.

package api

import "fmt"

// Sentinel error kinds. These are the only failure categories the
// library reports; platform codes are folded into them by Translate.
var (
	ErrInvalidSocket       = fmt.Errorf("invalid socket")
	ErrTimeout             = fmt.Errorf("operation timed out")
	ErrConnectionRefused   = fmt.Errorf("connection refused")
	ErrConnectionReset     = fmt.Errorf("connection reset by peer")
	ErrConnectionAborted   = fmt.Errorf("connection aborted")
	ErrAddressInUse        = fmt.Errorf("address already in use")
	ErrAddressNotAvailable = fmt.Errorf("cannot assign requested address")
	ErrHostUnreachable     = fmt.Errorf("no route to host")
	ErrHostDown            = fmt.Errorf("host is down")
	ErrNetworkDown         = fmt.Errorf("network is down")
	ErrNetworkUnreachable  = fmt.Errorf("network is unreachable")
	ErrNetworkReset        = fmt.Errorf("network dropped connection on reset")
	ErrInvalidArgument     = fmt.Errorf("invalid argument")
	ErrNotImplemented      = fmt.Errorf("operation not implemented")
	ErrIO                  = fmt.Errorf("i/o error")
)

// ErrWouldBlock reports that a non-blocking operation cannot proceed
// right now. It is a state the caller must check, not a failure; it
// never unwraps to any of the kinds above.
var ErrWouldBlock = fmt.Errorf("operation would block")

// Error is a translated platform failure. It carries the raw OS code
// and message so nothing is lost even for codes the taxonomy does not
// enumerate, plus the target address when the operation had one.
type Error struct {
	Kind    error  // one of the sentinel kinds
	Code    int    // raw platform error code
	Message string // platform message for Code
	Addr    string // attempted address, empty if not applicable
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Addr != "" {
		return fmt.Sprintf("%s: %s [code %d]", e.Addr, e.Message, e.Code)
	}
	return fmt.Sprintf("%s [code %d]", e.Message, e.Code)
}

// Unwrap exposes the taxonomy kind to errors.Is.
func (e *Error) Unwrap() error { return e.Kind }

// NewError builds a translated error of the given kind.
func NewError(kind error, code int, message, addr string) *Error {
	return &Error{Kind: kind, Code: code, Message: message, Addr: addr}
}
