package headless

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"badc0de.net/pkg/go-puzli/hostbridge"
	"badc0de.net/pkg/go-puzli/ttesting"
)

var _ hostbridge.Bridge = (*Host)(nil)

func TestLogIsVerbatim(t *testing.T) {
	for _, msg := range []string{"hello", "", "\x00\x07bell\r\nline", "ünïcödé"} {
		buf := &bytes.Buffer{}
		New(buf, "").Log(msg)
		if got := buf.String(); got != msg {
			t.Errorf("got %q; want %q", got, msg)
		}
	}
}

func TestUserAgentIsVerbatim(t *testing.T) {
	const ua = "  Mozilla/5.0 (X11; Linux x86_64)\t"
	ttesting.AssertEqualString(t, "ua", New(&bytes.Buffer{}, ua).UserAgent(), ua)
	ttesting.AssertEqualString(t, "empty", New(&bytes.Buffer{}, "").UserAgent(), "")
}

func TestCanvasSize(t *testing.T) {
	h := New(&bytes.Buffer{}, "")
	h.Document().AddSurface(hostbridge.CanvasElementID, 320, 240)
	ttesting.AssertEqualString(t, "320x240", h.CanvasSize(), "320;240")
}

func TestCanvasSizeIsNotCached(t *testing.T) {
	h := New(&bytes.Buffer{}, "")
	s := h.Document().AddSurface(hostbridge.CanvasElementID, 800, 600)

	first := h.CanvasSize()
	s.Resize(1024, 768)
	second := h.CanvasSize()

	ttesting.AssertEqualString(t, "first", first, "800;600")
	ttesting.AssertEqualString(t, "second", second, "1024;768")
}

func TestCanvasSizeIgnoresOtherElements(t *testing.T) {
	h := New(&bytes.Buffer{}, "")
	h.Document().AddSurface("minimap", 64, 64)

	p := ttesting.CapturePanic(func() { h.CanvasSize() })
	if _, ok := p.(*hostbridge.HostLookupError); !ok {
		t.Fatalf("got panic %v; want *hostbridge.HostLookupError", p)
	}
}

func TestMissingCanvasFailsAtHostBoundary(t *testing.T) {
	h := New(&bytes.Buffer{}, "")
	h.Document().AddSurface(hostbridge.CanvasElementID, 800, 600)
	h.Document().Remove(hostbridge.CanvasElementID)

	var got string
	p := ttesting.CapturePanic(func() { got = h.CanvasSize() })
	if p == nil {
		t.Fatalf("got %q; want a host lookup failure", got)
	}
	lookupErr, ok := p.(*hostbridge.HostLookupError)
	if !ok {
		t.Fatalf("panicked with %T; want *hostbridge.HostLookupError", p)
	}
	ttesting.AssertEqualString(t, "id", lookupErr.ID, "canvas")
}

func TestConcurrentResize(t *testing.T) {
	h := New(&bytes.Buffer{}, "")
	s := h.Document().AddSurface(hostbridge.CanvasElementID, 1, 1)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Resize(i, i)
			h.CanvasSize()
		}(i)
	}
	wg.Wait()
}

func ExampleHost() {
	h := New(os.Stdout, "Mozilla/5.0")
	canvas := h.Document().AddSurface("canvas", 800, 600)

	h.Log("size: " + h.CanvasSize() + "\n")
	canvas.Resize(1024, 768)
	h.Log("size: " + h.CanvasSize() + "\n")
	// Output:
	// size: 800;600
	// size: 1024;768
}
