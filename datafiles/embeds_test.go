package datafiles

import (
	"bytes"
	"testing"
)

func TestIndexHTMLHasCanvas(t *testing.T) {
	for _, want := range []string{`<canvas id="canvas">`, `wasm_exec.js`, `main.wasm`} {
		if !bytes.Contains(IndexHTML, []byte(want)) {
			t.Errorf("index.html does not contain %q", want)
		}
	}
}
