package hostbridge

import (
	"log"
	"testing"

	"badc0de.net/pkg/go-puzli/ttesting"
)

type recordingBridge struct {
	logged []string
}

func (b *recordingBridge) Log(message string) { b.logged = append(b.logged, message) }
func (b *recordingBridge) UserAgent() string { return "" }
func (b *recordingBridge) CanvasSize() string { return "" }

func TestFormatCanvasSize(t *testing.T) {
	ttesting.AssertEqualString(t, "800x600", FormatCanvasSize(800, 600), "800;600")
	ttesting.AssertEqualString(t, "1024x768", FormatCanvasSize(1024, 768), "1024;768")
	ttesting.AssertEqualString(t, "320x240", FormatCanvasSize(320, 240), "320;240")
	ttesting.AssertEqualString(t, "no grouping", FormatCanvasSize(12000, 1), "12000;1")
	ttesting.AssertEqualString(t, "zero", FormatCanvasSize(0, 0), "0;0")
}

func TestHostLookupError(t *testing.T) {
	err := &HostLookupError{ID: CanvasElementID}
	ttesting.AssertEqualString(t, "message", err.Error(), `hostbridge: no element with id "canvas"`)
}

func TestWriter(t *testing.T) {
	b := &recordingBridge{}
	w := &Writer{Bridge: b}

	n, err := w.Write([]byte("hello"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	ttesting.AssertEqualInt(t, "n", n, 5)

	l := log.New(w, "", 0)
	l.Println("UserAgent: test")
	l.Printf("platform: %v\n", "DESKTOP")

	if len(b.logged) != 3 {
		t.Fatalf("got %d messages; want 3", len(b.logged))
	}
	ttesting.AssertEqualString(t, "first", b.logged[0], "hello")
	ttesting.AssertEqualString(t, "second", b.logged[1], "UserAgent: test")
	ttesting.AssertEqualString(t, "third", b.logged[2], "platform: DESKTOP")
}

func TestWriterKeepsInnerNewlines(t *testing.T) {
	b := &recordingBridge{}
	w := &Writer{Bridge: b}

	w.Write([]byte("a\nb\n\n"))
	w.Write([]byte("\n"))

	if len(b.logged) != 2 {
		t.Fatalf("got %d messages; want 2", len(b.logged))
	}
	ttesting.AssertEqualString(t, "one trailing newline dropped", b.logged[0], "a\nb\n")
	ttesting.AssertEqualString(t, "bare newline", b.logged[1], "")
}
