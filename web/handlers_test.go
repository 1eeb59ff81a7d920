package web

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/mux"
)

func newServer(t *testing.T) (*httptest.Server, string) {
	dir, err := ioutil.TempDir("", "puzliweb")
	if err != nil {
		t.Fatalf("TempDir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	r := mux.NewRouter()
	NewHandler(dir).RegisterRoutes(r)
	s := httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s, dir
}

func get(t *testing.T, url string) (*http.Response, string) {
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading %s: %v", url, err)
	}
	return resp, string(body)
}

func TestIndex(t *testing.T) {
	s, _ := newServer(t)

	for _, path := range []string{"/", "/index.html"} {
		resp, body := get(t, s.URL+path)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s: got %d; want 200", path, resp.StatusCode)
		}
		if !strings.Contains(body, `<canvas id="canvas">`) {
			t.Errorf("GET %s: body has no canvas element", path)
		}
	}
}

func TestStatic(t *testing.T) {
	s, dir := newServer(t)
	if err := ioutil.WriteFile(filepath.Join(dir, WasmFile), []byte("\x00asm\x01\x00\x00\x00"), 0644); err != nil {
		t.Fatal(err)
	}

	resp, body := get(t, s.URL+"/main.wasm")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got %d; want 200", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Type"); got != "application/wasm" {
		t.Errorf("got Content-Type %q; want application/wasm", got)
	}
	if resp.Header.Get("ETag") == "" {
		t.Error("got no ETag")
	}
	if body != "\x00asm\x01\x00\x00\x00" {
		t.Errorf("got body %q", body)
	}
}

func TestStaticMissing(t *testing.T) {
	s, _ := newServer(t)

	resp, _ := get(t, s.URL+"/wasm_exec.js")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("got %d; want 404", resp.StatusCode)
	}
}

func TestStaticOnlyKnownFiles(t *testing.T) {
	s, dir := newServer(t)
	ioutil.WriteFile(filepath.Join(dir, "secret.txt"), []byte("x"), 0644)

	resp, _ := get(t, s.URL+"/secret.txt")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("got %d; want 404", resp.StatusCode)
	}
}
