//go:build js && wasm
// +build js,wasm

package hostbridge

import (
	"syscall/js"
)

// Browser is the Bridge of a page running the program under wasm_exec.js.
type Browser struct{}

func (Browser) Log(message string) {
	js.Global().Get("console").Call("log", message)
}

func (Browser) UserAgent() string {
	return js.Global().Get("navigator").Get("userAgent").String()
}

// CanvasSize reads width and height of document.getElementById("canvas").
//
// A document without such an element yields null, and syscall/js panics on
// the property read. That panic is the host failure and is left alone.
func (Browser) CanvasSize() string {
	canvas := js.Global().Get("document").Call("getElementById", CanvasElementID)
	width := canvas.Get("width").Int()
	height := canvas.Get("height").Int()
	return FormatCanvasSize(width, height)
}

// Default returns the browser bridge.
func Default() Bridge {
	return Browser{}
}
