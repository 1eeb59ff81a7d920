// Package hostbridge exposes the capabilities of the environment hosting a
// compiled go-puzli program: diagnostic logging, the host's identifying user
// agent string, and the pixel size of the rendering surface with the element
// ID "canvas".
//
// Every implementation is a pass-through. Values are returned exactly as the
// host reports them, nothing is cached between calls, and host failures (such
// as a missing canvas element) are not caught, wrapped or replaced with
// sentinel values.
//
// The implementation is picked by build tags:
//
//	GOOS=js GOARCH=wasm       Browser   (console.log, navigator.userAgent, DOM)
//	GOOS=wasip1 GOARCH=wasm   Guest     (puzli_host imports, see package hostmodule)
//	anything else             Terminal  (stderr, runtime identity, tty pixel size)
//
// Package headless provides an in-memory host usable on every platform.
package hostbridge
