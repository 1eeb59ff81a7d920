// Package hostmodule serves a hostbridge.Bridge to WebAssembly guests built
// with GOOS=wasip1, as the host module "puzli_host".
//
// All parameters and results are i32. Strings live in guest memory:
//
//	log(ptr, len)              the guest's message is passed to Bridge.Log
//	user_agent(ptr, cap) n     Bridge.UserAgent is written to ptr, at most cap bytes
//	canvas_size(ptr, cap) n    Bridge.CanvasSize, likewise
//
// The string-returning functions always return the full length, so a guest
// whose buffer was too small can call again with a larger one.
//
// Guests are run either on wazero (pure Go) or on wasmer (cgo).
package hostmodule

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"badc0de.net/pkg/go-puzli/hostbridge"
)

const (
	ModuleName = "puzli_host"

	FuncLog        = "log"
	FuncUserAgent  = "user_agent"
	FuncCanvasSize = "canvas_size"
)

var errNoMemory = errors.New("guest module exports no memory")

// Config describes how a guest program is started.
type Config struct {
	// Name is argv[0] of the guest. Defaults to "puzliguest".
	Name string
	// Args follow argv[0].
	Args []string
	// Stdout and Stderr of the guest. Nil means the process' own. Only wazero
	// honours writers other than os.Stdout and os.Stderr.
	Stdout, Stderr io.Writer
}

func (c Config) name() string {
	if c.Name == "" {
		return "puzliguest"
	}
	return c.Name
}

func (c Config) stdout() io.Writer {
	if c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}

func (c Config) stderr() io.Writer {
	if c.Stderr == nil {
		return os.Stderr
	}
	return c.Stderr
}

// memory is the guest linear memory as seen by a host function.
// wazero's api.Memory satisfies it directly.
type memory interface {
	Read(offset, byteCount uint32) ([]byte, bool)
	Write(offset uint32, v []byte) bool
}

// exports implements the puzli_host functions independently of the engine.
type exports struct {
	bridge hostbridge.Bridge
}

func (e *exports) log(mem memory, ptr, size uint32) error {
	if mem == nil {
		return errors.Wrap(errNoMemory, ModuleName+"."+FuncLog)
	}
	buf, ok := mem.Read(ptr, size)
	if !ok {
		return errors.Errorf("%s.%s: message at %d (%d bytes) is out of guest memory", ModuleName, FuncLog, ptr, size)
	}
	e.bridge.Log(string(buf))
	return nil
}

func (e *exports) userAgent(mem memory, ptr, capacity uint32) (uint32, error) {
	return writeString(mem, FuncUserAgent, ptr, capacity, e.bridge.UserAgent)
}

func (e *exports) canvasSize(mem memory, ptr, capacity uint32) (uint32, error) {
	return writeString(mem, FuncCanvasSize, ptr, capacity, e.bridge.CanvasSize)
}

// writeString copies the result of call into the guest buffer, truncated to
// capacity, and returns its full length.
func writeString(mem memory, name string, ptr, capacity uint32, call func() string) (uint32, error) {
	if mem == nil {
		return 0, errors.Wrap(errNoMemory, ModuleName+"."+name)
	}
	s := call()
	n := uint32(len(s))
	w := n
	if w > capacity {
		w = capacity
	}
	if w > 0 && !mem.Write(ptr, []byte(s[:w])) {
		return 0, errors.Errorf("%s.%s: buffer at %d (%d bytes) is out of guest memory", ModuleName, name, ptr, w)
	}
	return n, nil
}
