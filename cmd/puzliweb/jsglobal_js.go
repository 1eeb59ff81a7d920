//go:build js && wasm
// +build js,wasm

package main

import (
	"log"
	"syscall/js"

	"badc0de.net/pkg/go-puzli/environment"
)

func jsGlobalInjectAPI() {
	js.Global().Set("puzliLog", js.FuncOf(puzliLog))
	js.Global().Set("puzliUserAgent", js.FuncOf(puzliUserAgent))
	js.Global().Set("puzliCanvasSize", js.FuncOf(puzliCanvasSize))
	js.Global().Set("puzliEnvironment", js.FuncOf(puzliEnvironment))
	js.Global().Set("puzliRedetect", js.FuncOf(puzliRedetect))
}

func puzliLog(this js.Value, args []js.Value) interface{} {
	if len(args) == 0 {
		bridge.Log("")
		return nil
	}
	bridge.Log(args[0].String())
	return nil
}

func puzliUserAgent(this js.Value, args []js.Value) interface{} {
	return bridge.UserAgent()
}

func puzliCanvasSize(this js.Value, args []js.Value) interface{} {
	return bridge.CanvasSize()
}

// puzliEnvironment returns the last detected environment as a plain object.
func puzliEnvironment(this js.Value, args []js.Value) interface{} {
	return map[string]interface{}{
		"platform":     env.Platform.String(),
		"browser":      env.Browser,
		"screenWidth":  env.ScreenWidth,
		"screenHeight": env.ScreenHeight,
		"mobile":       env.IsMobile(),
		"antialiasing": launchConfig.Antialiasing,
	}
}

// puzliRedetect runs detection again, e.g. after the canvas was resized.
func puzliRedetect(this js.Value, args []js.Value) interface{} {
	cfg := environment.DefaultLaunchConfig()
	e, err := environment.Detect(bridge, &cfg)
	if err != nil {
		log.Printf("[E] redetect: %v", err)
		return nil
	}
	env, launchConfig = e, cfg
	return puzliEnvironment(this, args)
}
