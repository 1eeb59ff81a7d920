//go:build !cgo
// +build !cgo

package main

import (
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-puzli/hostbridge"
	"badc0de.net/pkg/go-puzli/hostmodule"
)

func runWasmer(wasm []byte, b hostbridge.Bridge, cfg hostmodule.Config) error {
	return errors.New("the wasmer engine needs a cgo build; use --engine=wazero")
}
