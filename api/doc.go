// File: api/doc.go
// Author: solarobot <solarobot@gmail.com>
//
// Package api defines the shared contracts of the sockio library:
// readiness poll modes, the recoverable error taxonomy, translation of
// raw platform error codes into that taxonomy, and the transport
// capability report.
//
// Every numeric OS error code produced by the lower layers is routed
// through Translate before it reaches a caller; no raw code escapes
// untranslated.

package api
