// Package headless implements a host entirely in memory: a console writer, a
// fixed user agent and a document holding named rendering surfaces.
//
// It serves as the host for runs without a browser or terminal and as the
// host under test.
package headless

import (
	"io"
	"sync"

	"badc0de.net/pkg/go-puzli/hostbridge"
)

// Host is a hostbridge.Bridge over an in-memory document.
type Host struct {
	console   io.Writer
	userAgent string
	document  *Document
}

// New creates a host with an empty document. Log messages are written to
// console; userAgent is reported as is.
func New(console io.Writer, userAgent string) *Host {
	return &Host{
		console:   console,
		userAgent: userAgent,
		document:  &Document{surfaces: make(map[string]*Surface)},
	}
}

// Document returns the host's surface registry.
func (h *Host) Document() *Document {
	return h.document
}

func (h *Host) Log(message string) {
	io.WriteString(h.console, message)
}

func (h *Host) UserAgent() string {
	return h.userAgent
}

// CanvasSize looks up the "canvas" surface at call time. A missing surface
// panics with *hostbridge.HostLookupError.
func (h *Host) CanvasSize() string {
	s := h.document.Surface(hostbridge.CanvasElementID)
	if s == nil {
		panic(&hostbridge.HostLookupError{ID: hostbridge.CanvasElementID})
	}
	w, hgt := s.Size()
	return hostbridge.FormatCanvasSize(w, hgt)
}

// Document is a registry of surfaces keyed by element ID.
type Document struct {
	mu       sync.Mutex
	surfaces map[string]*Surface
}

// AddSurface registers a surface of the given size under id, replacing any
// surface already registered there.
func (d *Document) AddSurface(id string, width, height int) *Surface {
	s := &Surface{width: width, height: height}
	d.mu.Lock()
	d.surfaces[id] = s
	d.mu.Unlock()
	return s
}

// Remove drops the surface registered under id, if any.
func (d *Document) Remove(id string) {
	d.mu.Lock()
	delete(d.surfaces, id)
	d.mu.Unlock()
}

// Surface returns the surface registered under id, or nil.
func (d *Document) Surface(id string) *Surface {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.surfaces[id]
}

// Surface is a rendering surface with pixel dimensions.
type Surface struct {
	mu            sync.Mutex
	width, height int
}

// Resize changes the surface's dimensions.
func (s *Surface) Resize(width, height int) {
	s.mu.Lock()
	s.width, s.height = width, height
	s.mu.Unlock()
}

// Size returns the current dimensions.
func (s *Surface) Size() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}
