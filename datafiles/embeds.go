// Package datafiles holds the files served alongside the browser build.
package datafiles

import _ "embed" // at least "import _ "embed"" is required

// IndexHTML is the page hosting the browser build. It provides the "canvas"
// element and starts main.wasm through wasm_exec.js.
//
//go:embed index.html
var IndexHTML []byte
