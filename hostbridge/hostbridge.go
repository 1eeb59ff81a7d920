package hostbridge

import (
	"fmt"
	"strconv"
	"strings"
)

// CanvasElementID is the identifier of the rendering surface queried by
// CanvasSize. It is fixed; the hosted program has exactly one surface.
const CanvasElementID = "canvas"

// Bridge is the typed entry point from application code into the host.
//
// Calls are synchronous and run to completion. Implementations hold no state
// and add no synchronization of their own.
type Bridge interface {
	// Log forwards message, unmodified, to the host's diagnostic output.
	Log(message string)

	// UserAgent returns the host's identifying string as reported.
	UserAgent() string

	// CanvasSize returns the current pixel size of the "canvas" surface
	// formatted as "<width>;<height>". If the surface does not exist the
	// host fails the call; no value is returned.
	CanvasSize() string
}

// FormatCanvasSize encodes a surface size the way CanvasSize reports it:
// ASCII decimal digits joined by a semicolon, with no whitespace or grouping.
func FormatCanvasSize(width, height int) string {
	return strconv.Itoa(width) + ";" + strconv.Itoa(height)
}

// HostLookupError is the panic value raised by hosts implemented in Go when
// an element referenced by a bridge call does not exist.
type HostLookupError struct {
	ID string
}

func (e *HostLookupError) Error() string {
	return fmt.Sprintf("hostbridge: no element with id %q", e.ID)
}

// Writer is an io.Writer forwarding every write to the bridge's Log.
//
// It is meant to be passed to log.SetOutput so that the standard logger ends
// up in the host console. One console record is one log record, so the
// newline log appends to every record is dropped before it reaches Log.
type Writer struct {
	Bridge Bridge
}

func (w *Writer) Write(p []byte) (n int, err error) {
	w.Bridge.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
