//go:build wasip1

package hostbridge

import (
	"runtime"
	"unsafe"
)

// Host functions served by package hostmodule.

//go:wasmimport puzli_host log
func hostLog(ptr, size uint32)

//go:wasmimport puzli_host user_agent
func hostUserAgent(ptr, capacity uint32) uint32

//go:wasmimport puzli_host canvas_size
func hostCanvasSize(ptr, capacity uint32) uint32

// initialReadSize fits every canvas size and most user agents in one call.
const initialReadSize = 256

// Guest is the Bridge of a WASI program whose runtime provides the puzli_host
// module.
type Guest struct{}

func (Guest) Log(message string) {
	if len(message) == 0 {
		hostLog(0, 0)
		return
	}
	buf := []byte(message)
	hostLog(bufPtr(buf), uint32(len(buf)))
	runtime.KeepAlive(buf)
}

func (Guest) UserAgent() string {
	return readHostString(hostUserAgent)
}

func (Guest) CanvasSize() string {
	return readHostString(hostCanvasSize)
}

// readHostString calls a string-returning host function. The host reports
// the full length; if it did not fit, the call is repeated with a buffer of
// that length.
func readHostString(fn func(ptr, capacity uint32) uint32) string {
	buf := make([]byte, initialReadSize)
	n := fn(bufPtr(buf), uint32(len(buf)))
	if int(n) > len(buf) {
		buf = make([]byte, n)
		n = fn(bufPtr(buf), uint32(len(buf)))
		if int(n) > len(buf) {
			n = uint32(len(buf))
		}
	}
	runtime.KeepAlive(buf)
	return string(buf[:n])
}

func bufPtr(buf []byte) uint32 {
	return uint32(uintptr(unsafe.Pointer(&buf[0])))
}

// Default returns the WASI guest bridge.
func Default() Bridge {
	return Guest{}
}
