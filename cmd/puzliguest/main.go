//go:build wasip1

// Binary puzliguest is the WASI entry point of go-puzli. Build it with
// GOOS=wasip1 GOARCH=wasm and run it with puzlirun.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"badc0de.net/pkg/go-puzli/environment"
	"badc0de.net/pkg/go-puzli/hostbridge"
)

var (
	desktop = flag.Bool("desktop", false, "detect a desktop environment instead of a browser one")
)

func main() {
	flag.Parse()

	bridge := hostbridge.Guest{}
	log.SetFlags(0)
	log.SetOutput(&hostbridge.Writer{Bridge: bridge})

	detect := environment.Detect
	if *desktop {
		detect = environment.DetectDesktop
	}

	cfg := environment.DefaultLaunchConfig()
	env, err := detect(bridge, &cfg)
	if err != nil {
		log.Printf("[E] %v", err)
		os.Exit(1)
	}

	fmt.Printf("platform=%v browser=%q size=%dx%d mobile=%v antialiasing=%v\n",
		env.Platform, env.Browser, env.ScreenWidth, env.ScreenHeight, env.IsMobile(), cfg.Antialiasing)
}
