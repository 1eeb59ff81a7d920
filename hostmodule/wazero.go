package hostmodule

import (
	"context"
	"crypto/rand"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"github.com/tetratelabs/wazero/sys"

	"badc0de.net/pkg/go-puzli/hostbridge"
)

// Instantiate registers the puzli_host module, backed by b, on r.
//
// Errors returned by the functions and panics raised by b trap the calling
// guest function; wazero reports them from the guest call.
func Instantiate(ctx context.Context, r wazero.Runtime, b hostbridge.Bridge) error {
	e := &exports{bridge: b}
	i32 := api.ValueTypeI32

	_, err := r.NewHostModuleBuilder(ModuleName).
		NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
			if err := e.log(mod.Memory(), api.DecodeU32(stack[0]), api.DecodeU32(stack[1])); err != nil {
				panic(err)
			}
		}), []api.ValueType{i32, i32}, []api.ValueType{}).
		WithParameterNames("ptr", "len").
		Export(FuncLog).
		NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
			n, err := e.userAgent(mod.Memory(), api.DecodeU32(stack[0]), api.DecodeU32(stack[1]))
			if err != nil {
				panic(err)
			}
			stack[0] = api.EncodeU32(n)
		}), []api.ValueType{i32, i32}, []api.ValueType{i32}).
		WithParameterNames("ptr", "cap").
		Export(FuncUserAgent).
		NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
			n, err := e.canvasSize(mod.Memory(), api.DecodeU32(stack[0]), api.DecodeU32(stack[1]))
			if err != nil {
				panic(err)
			}
			stack[0] = api.EncodeU32(n)
		}), []api.ValueType{i32, i32}, []api.ValueType{i32}).
		WithParameterNames("ptr", "cap").
		Export(FuncCanvasSize).
		Instantiate(ctx)
	if err != nil {
		return errors.Wrapf(err, "instantiating host module %q", ModuleName)
	}
	return nil
}

// RunWazero runs the WASI command module wasm to completion with b as its
// host bridge. A guest exiting with status 0 is not an error.
func RunWazero(ctx context.Context, wasm []byte, b hostbridge.Bridge, cfg Config) error {
	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	if _, err := wasi_snapshot_preview1.Instantiate(ctx, r); err != nil {
		return errors.Wrap(err, "instantiating wasi_snapshot_preview1")
	}
	if err := Instantiate(ctx, r, b); err != nil {
		return err
	}

	compiled, err := r.CompileModule(ctx, wasm)
	if err != nil {
		return errors.Wrap(err, "compiling guest")
	}
	glog.V(2).Infof("hostmodule: starting guest %q on wazero", cfg.name())

	modCfg := wazero.NewModuleConfig().
		WithName(cfg.name()).
		WithArgs(append([]string{cfg.name()}, cfg.Args...)...).
		WithStdout(cfg.stdout()).
		WithStderr(cfg.stderr()).
		WithSysWalltime().
		WithSysNanotime().
		WithRandSource(rand.Reader)

	_, err = r.InstantiateModule(ctx, compiled, modCfg)
	var exitErr *sys.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 0 {
		err = nil
	}
	if err != nil {
		return errors.Wrapf(err, "running guest %q", cfg.name())
	}
	glog.V(2).Infof("hostmodule: guest %q done", cfg.name())
	return nil
}
