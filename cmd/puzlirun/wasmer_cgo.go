//go:build cgo
// +build cgo

package main

import (
	"badc0de.net/pkg/go-puzli/hostbridge"
	"badc0de.net/pkg/go-puzli/hostmodule"
)

func runWasmer(wasm []byte, b hostbridge.Bridge, cfg hostmodule.Config) error {
	return hostmodule.RunWasmer(wasm, b, cfg)
}
