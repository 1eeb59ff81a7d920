// Package web serves the browser build of go-puzli: the page providing the
// canvas, the Go wasm support script and the compiled program.
package web

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"golang.org/x/net/trace"

	"badc0de.net/pkg/go-puzli/datafiles"
)

// Files served from the static directory.
const (
	WasmFile     = "main.wasm"
	WasmExecFile = "wasm_exec.js"
)

type Handler struct {
	staticDir string
	started   time.Time
}

// NewHandler constructs a web handler serving main.wasm and wasm_exec.js out
// of staticDir.
func NewHandler(staticDir string) *Handler {
	return &Handler{
		staticDir: staticDir,
		started:   time.Now(),
	}
}

func (h *Handler) indexHandler(w http.ResponseWriter, r *http.Request) {
	tr := trace.New("puzliserve.index", r.URL.Path)
	defer tr.Finish()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	http.ServeContent(w, r, "index.html", h.started, bytes.NewReader(datafiles.IndexHTML))
}

func (h *Handler) staticHandler(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["file"]
	tr := trace.New("puzliserve.static", name)
	defer tr.Finish()

	path := filepath.Join(h.staticDir, name)
	f, err := os.Open(path)
	if err != nil {
		tr.LazyPrintf("open %s: %v", path, err)
		tr.SetError()
		http.Error(w, "failed to open "+name, http.StatusNotFound)
		return
	}
	defer f.Close()

	s, err := f.Stat()
	if err != nil {
		glog.Errorf("stat %s: %v", path, err)
		http.Error(w, "failed to stat "+name, http.StatusInternalServerError)
		return
	}

	// The build replaces the files in place; revalidate on every load.
	etag := fmt.Sprintf(`W/"%s:%d:%d"`, name, s.Size(), s.ModTime().UnixNano())
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if name == WasmFile {
		w.Header().Set("Content-Type", "application/wasm")
	}
	tr.LazyPrintf("serving %s (%d bytes)", path, s.Size())
	http.ServeContent(w, r, name, s.ModTime(), f)
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.indexHandler)
	r.HandleFunc("/index.html", h.indexHandler)
	r.HandleFunc("/{file:main\\.wasm|wasm_exec\\.js}", h.staticHandler)
}
