//go:build !js && !wasip1
// +build !js,!wasip1

package hostbridge

import (
	"bytes"
	"log"
	"runtime"
	"strings"
	"testing"

	"badc0de.net/pkg/go-puzli/ttesting"
)

func TestTerminalLog(t *testing.T) {
	for _, msg := range []string{"hello", "", "tab\there\r\n\x00\x1b[0m"} {
		buf := &bytes.Buffer{}
		Terminal{Output: buf}.Log(msg)
		ttesting.AssertEqualString(t, "log "+strings.TrimSpace(msg), buf.String(), msg+"\n")
	}
}

func TestTerminalLogRecords(t *testing.T) {
	buf := &bytes.Buffer{}
	l := log.New(&Writer{Bridge: Terminal{Output: buf}}, "", 0)
	l.Printf("UserAgent: x")
	l.Println("not mobile")

	ttesting.AssertEqualString(t, "one line per record", buf.String(), "UserAgent: x\nnot mobile\n")
}

func TestTerminalUserAgent(t *testing.T) {
	ua := Terminal{}.UserAgent()
	want := "go-puzli (" + runtime.GOOS + "; " + runtime.GOARCH + ") " + runtime.Version()
	if !strings.HasPrefix(ua, want) {
		t.Errorf("got %q; want prefix %q", ua, want)
	}
}

func TestTerminalCanvasSize(t *testing.T) {
	// Test runners often have no tty; either outcome must follow the contract.
	var size string
	p := ttesting.CapturePanic(func() { size = Terminal{}.CanvasSize() })
	if p != nil {
		lookupErr, ok := p.(*HostLookupError)
		if !ok {
			t.Fatalf("panicked with %T (%v); want *HostLookupError", p, p)
		}
		ttesting.AssertEqualString(t, "id", lookupErr.ID, CanvasElementID)
		return
	}
	parts := strings.Split(size, ";")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		t.Errorf("got %q; want <width>;<height>", size)
	}
}

func TestDefaultIsTerminal(t *testing.T) {
	if _, ok := Default().(Terminal); !ok {
		t.Errorf("got %T; want Terminal", Default())
	}
}
