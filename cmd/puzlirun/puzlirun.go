// Binary puzlirun runs a go-puzli WASI guest (see cmd/puzliguest) natively,
// serving it the host bridge through the puzli_host module.
//
// By default the guest talks to the terminal puzlirun runs in. With
// --headless it gets an in-memory host instead, whose user agent and canvas
// are set by flags.
package main

import (
	"context"
	"flag"
	"io"
	"io/ioutil"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-puzli/hostbridge"
	"badc0de.net/pkg/go-puzli/hostbridge/headless"
	"badc0de.net/pkg/go-puzli/hostmodule"
	"badc0de.net/pkg/go-puzli/paths"
)

var (
	engine     = flag.String("engine", "wazero", "runtime to use: wazero or wasmer")
	headlessF  = flag.Bool("headless", false, "serve an in-memory host instead of the terminal")
	userAgent  = flag.String("user_agent", "puzlirun (headless)", "user agent reported by the headless host")
	canvasSize = flag.String("canvas_size", "800x600", "size of the headless host's canvas as WxH; empty for no canvas")
)

var wasmPath string

func init() {
	paths.SetupFilePathFlag("puzliguest.wasm", "wasm", &wasmPath)
}

func main() {
	flagutil.Parse()

	if wasmPath == "" {
		glog.Exit("puzliguest.wasm not found; pass --wasm")
	}
	wasm, err := ioutil.ReadFile(wasmPath)
	if err != nil {
		glog.Fatalf("reading guest: %v", err)
	}

	bridge, err := newBridge()
	if err != nil {
		glog.Fatal(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg := hostmodule.Config{Args: flag.Args()}
	glog.Infof("running %s on %s", wasmPath, *engine)
	switch *engine {
	case "wazero":
		err = hostmodule.RunWazero(ctx, wasm, bridge, cfg)
	case "wasmer":
		err = runWasmer(wasm, bridge, cfg)
	default:
		err = errors.Errorf("unknown engine %q", *engine)
	}
	if err != nil {
		glog.Fatal(err)
	}
}

func newBridge() (hostbridge.Bridge, error) {
	if !*headlessF {
		return hostbridge.Terminal{}, nil
	}
	h := headless.New(&lineWriter{os.Stderr}, *userAgent)
	if *canvasSize == "" {
		return h, nil
	}
	w, ht, err := parseSize(*canvasSize)
	if err != nil {
		return nil, err
	}
	h.Document().AddSurface(hostbridge.CanvasElementID, w, ht)
	return h, nil
}

// parseSize parses "WxH".
func parseSize(s string) (w, h int, err error) {
	parts := strings.Split(s, "x")
	if len(parts) != 2 {
		return 0, 0, errors.Errorf("--canvas_size=%q: want WxH", s)
	}
	if w, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, errors.Wrapf(err, "--canvas_size=%q: width", s)
	}
	if h, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, errors.Wrapf(err, "--canvas_size=%q: height", s)
	}
	return w, h, nil
}

// lineWriter puts every write on its own line. hostbridge.Writer has already
// dropped the newline log ends each record with.
type lineWriter struct {
	w io.Writer
}

func (l *lineWriter) Write(p []byte) (int, error) {
	if _, err := l.w.Write(append(p[:len(p):len(p)], '\n')); err != nil {
		return 0, err
	}
	return len(p), nil
}
