//go:build js && wasm
// +build js,wasm

// Binary puzliweb is the browser entry point of go-puzli. Build it with
// GOOS=js GOARCH=wasm and serve it with puzliserve.
package main

import (
	"flag"
	"log"

	"badc0de.net/pkg/go-puzli/environment"
	"badc0de.net/pkg/go-puzli/hostbridge"
)

var (
	bridge hostbridge.Bridge = hostbridge.Browser{}

	launchConfig = environment.DefaultLaunchConfig()
	env          environment.Environment
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetOutput(&hostbridge.Writer{Bridge: bridge})

	var err error
	env, err = environment.Detect(bridge, &launchConfig)
	if err != nil {
		log.Printf("[E] %v", err)
	}

	jsGlobalInjectAPI()

	// Prevent go program from exiting.
	select {}
}
