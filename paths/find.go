// Package paths locates go-puzli build outputs, such as the WASI guest or
// the browser build directory, so that binaries have sane flag defaults.
package paths

import (
	"os"
	"path/filepath"

	"github.com/golang/glog"
)

// getPossiblePathDirs lists the directories searched by Find, in order.
func getPossiblePathDirs() []string {
	return []string{
		".",
		"dist",
		filepath.Dir(os.Args[0]),
		os.Args[0] + ".runfiles/go_puzli/dist",
		os.Getenv("GOPATH") + "/src/badc0de.net/pkg/go-puzli/dist",
	}
}

// Find locates the passed build output and returns an absolute or relative
// path to it, or an empty string if it is nowhere to be found.
//
// For example, for "puzliguest.wasm" it may return "dist/puzliguest.wasm".
func Find(fileName string) string {
	for _, dir := range getPossiblePathDirs() {
		path := filepath.Join(dir, fileName)
		if f, err := os.Open(path); err == nil {
			f.Close()
			glog.V(1).Infof("paths.Find(%q)=%s", fileName, path)
			return path
		}
	}
	return ""
}

// FindDir is like Find, but returns the directory containing the file.
func FindDir(fileName string) string {
	path := Find(fileName)
	if path == "" {
		return ""
	}
	return filepath.Dir(path)
}
