// Binary puzliserve serves the browser build of go-puzli.
//
// Build the frontend with
//
//	GOOS=js GOARCH=wasm go build -o dist/main.wasm ./cmd/puzliweb
//	cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" dist/
//
// and run puzliserve --static_dir=dist.
package main

import (
	"flag"
	"net/http"
	"os"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	_ "golang.org/x/net/trace"

	"badc0de.net/pkg/go-puzli/paths"
	"badc0de.net/pkg/go-puzli/web"
)

var (
	listenAddress  = flag.String("listen_address", ":8080", "http listen address for puzliserve")
	debugWebServer = flag.String("debug_web_server_listen_address", "", "where the debug server (/debug/requests) will listen")
)

var staticDir string

func init() {
	paths.SetupDirFlag(web.WasmFile, "static_dir", "dist", &staticDir, "directory holding main.wasm and wasm_exec.js")
}

func main() {
	flagutil.Parse()

	r := mux.NewRouter()
	web.NewHandler(staticDir).RegisterRoutes(r)

	var g errgroup.Group
	g.Go(func() error {
		glog.Infof("puzliserve listening on %s, serving %s", *listenAddress, staticDir)
		return http.ListenAndServe(*listenAddress, handlers.CombinedLoggingHandler(os.Stderr, handlers.CompressHandler(r)))
	})
	if *debugWebServer != "" {
		g.Go(func() error {
			glog.Infof("debug server listening on %s", *debugWebServer)
			return http.ListenAndServe(*debugWebServer, nil)
		})
	}
	glog.Fatal(g.Wait())
}
