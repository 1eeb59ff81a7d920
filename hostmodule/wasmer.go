//go:build cgo
// +build cgo

package hostmodule

import (
	"fmt"
	"regexp"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	wasmer "github.com/wasmerio/wasmer-go/wasmer"

	"badc0de.net/pkg/go-puzli/hostbridge"
)

// wasmerMemory adapts a wasmer memory export to memory. It is filled in once
// the instance exists; host functions only run after that.
type wasmerMemory struct {
	m *wasmer.Memory
}

func (w *wasmerMemory) Read(offset, byteCount uint32) ([]byte, bool) {
	if w.m == nil {
		return nil, false
	}
	data := w.m.Data()
	end := uint64(offset) + uint64(byteCount)
	if end > uint64(len(data)) {
		return nil, false
	}
	return data[offset:end], true
}

func (w *wasmerMemory) Write(offset uint32, v []byte) bool {
	if w.m == nil {
		return false
	}
	data := w.m.Data()
	end := uint64(offset) + uint64(len(v))
	if end > uint64(len(data)) {
		return false
	}
	copy(data[offset:end], v)
	return true
}

// cleanExit matches the trap wasmer reports for proc_exit(0).
var cleanExit = regexp.MustCompile(`(?i)exit(ed)?( with)? code:? 0\s*$`)

// RunWasmer is RunWazero on the wasmer engine. The guest always inherits the
// process' stdout and stderr.
func RunWasmer(wasm []byte, b hostbridge.Bridge, cfg Config) error {
	store := wasmer.NewStore(wasmer.NewEngine())
	module, err := wasmer.NewModule(store, wasm)
	if err != nil {
		return errors.Wrap(err, "compiling guest")
	}

	builder := wasmer.NewWasiStateBuilder(cfg.name()).InheritStdout().InheritStderr()
	for _, arg := range cfg.Args {
		builder = builder.Argument(arg)
	}
	wasiEnv, err := builder.Finalize()
	if err != nil {
		return errors.Wrap(err, "building wasi state")
	}
	importObject, err := wasiEnv.GenerateImportObject(store, module)
	if err != nil {
		return errors.Wrap(err, "generating wasi imports")
	}

	e := &exports{bridge: b}
	mem := &wasmerMemory{}
	ptrLen := wasmer.NewValueTypes(wasmer.I32, wasmer.I32)

	importObject.Register(ModuleName, map[string]wasmer.IntoExtern{
		FuncLog: wasmer.NewFunction(store, wasmer.NewFunctionType(ptrLen, wasmer.NewValueTypes()),
			func(args []wasmer.Value) (res []wasmer.Value, err error) {
				defer trap(&err)
				err = e.log(mem, uint32(args[0].I32()), uint32(args[1].I32()))
				return []wasmer.Value{}, err
			}),
		FuncUserAgent: wasmer.NewFunction(store, wasmer.NewFunctionType(ptrLen, wasmer.NewValueTypes(wasmer.I32)),
			func(args []wasmer.Value) (res []wasmer.Value, err error) {
				defer trap(&err)
				n, err := e.userAgent(mem, uint32(args[0].I32()), uint32(args[1].I32()))
				return []wasmer.Value{wasmer.NewI32(int32(n))}, err
			}),
		FuncCanvasSize: wasmer.NewFunction(store, wasmer.NewFunctionType(ptrLen, wasmer.NewValueTypes(wasmer.I32)),
			func(args []wasmer.Value) (res []wasmer.Value, err error) {
				defer trap(&err)
				n, err := e.canvasSize(mem, uint32(args[0].I32()), uint32(args[1].I32()))
				return []wasmer.Value{wasmer.NewI32(int32(n))}, err
			}),
	})

	instance, err := wasmer.NewInstance(module, importObject)
	if err != nil {
		return errors.Wrap(err, "instantiating guest")
	}
	if mem.m, err = instance.Exports.GetMemory("memory"); err != nil {
		return errors.Wrap(err, "guest memory")
	}
	start, err := instance.Exports.GetWasiStartFunction()
	if err != nil {
		return errors.Wrap(err, "guest entry point")
	}

	glog.V(2).Infof("hostmodule: starting guest %q on wasmer", cfg.name())
	if _, err := start(); err != nil && !cleanExit.MatchString(err.Error()) {
		return errors.Wrapf(err, "running guest %q", cfg.name())
	}
	glog.V(2).Infof("hostmodule: guest %q done", cfg.name())
	return nil
}

// trap turns a panic raised by the bridge into the host function's error, so
// that it traps the guest instead of unwinding through cgo.
func trap(err *error) {
	p := recover()
	if p == nil {
		return
	}
	if e, ok := p.(error); ok {
		*err = e
		return
	}
	*err = fmt.Errorf("%v", p)
}
