//go:build !js && !wasip1
// +build !js,!wasip1

package hostbridge

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
)

// Nominal cell size used when a terminal reports its size in cells only.
const (
	nominalCellWidth  = 8
	nominalCellHeight = 16
)

// Terminal is the Bridge of a native program attached to a terminal. The
// terminal window plays the role of the "canvas" surface.
type Terminal struct {
	// Output receives Log messages. Nil means os.Stderr.
	Output io.Writer
}

// Log writes message as one record: the message bytes followed by a newline,
// the way console.log puts each call on its own line.
func (t Terminal) Log(message string) {
	out := t.Output
	if out == nil {
		out = os.Stderr
	}
	io.WriteString(out, message+"\n")
}

// UserAgent identifies the program, the platform and the terminal, for
// example "go-puzli (linux; amd64) go1.23.0 TERM/xterm-kitty kitty".
func (Terminal) UserAgent() string {
	parts := []string{fmt.Sprintf("go-puzli (%s; %s) %s", runtime.GOOS, runtime.GOARCH, runtime.Version())}
	if term := os.Getenv("TERM"); term != "" {
		parts = append(parts, "TERM/"+term)
	}
	if g := terminalGraphics(); g != "" {
		parts = append(parts, g)
	}
	return strings.Join(parts, " ")
}

// CanvasSize reports the pixel size of the controlling terminal. Terminals
// that only know their size in cells are reported using a nominal 8x16 cell.
//
// Without a terminal there is no surface, and CanvasSize panics with a
// *HostLookupError.
func (Terminal) CanvasSize() string {
	sz, err := getTermSize()
	if err != nil {
		panic(&HostLookupError{ID: CanvasElementID})
	}
	w, h := int(sz.XPixel), int(sz.YPixel)
	if w == 0 && h == 0 {
		w, h = int(sz.Cols)*nominalCellWidth, int(sz.Rows)*nominalCellHeight
	}
	return FormatCanvasSize(w, h)
}

type termSize struct {
	Rows, Cols     uint
	XPixel, YPixel uint
}

// Default returns the terminal bridge writing to os.Stderr.
func Default() Bridge {
	return Terminal{}
}
