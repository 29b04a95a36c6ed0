//go:build darwin || freebsd || linux

package pybootstrap

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// EntryPoints is the fixed table of CPython entry points the bootstrap
// needs. Each field is bound by exact symbol name when the library is
// opened; later phases receive the table fully populated or not at all.
//
// Pointer-typed parameters and results (wide strings, raw allocations)
// are carried as uintptr because the memory they reference belongs to
// the runtime's allocator, never to the Go heap.
type EntryPoints struct {
	// SetProgramName is Py_SetProgramName(wchar_t *name). The runtime
	// keeps referencing the string; it must stay allocated.
	SetProgramName func(name uintptr)

	// DecodeLocale is Py_DecodeLocale(const char *arg, size_t *size).
	// Returns a PyMem_RawMalloc'd wide string, or 0 on decode failure.
	// The size out-parameter is always passed as NULL here.
	DecodeLocale func(arg string, size uintptr) uintptr

	// SetPath is Py_SetPath(const wchar_t *path). Must run before
	// Initialize for the module search path to take effect.
	SetPath func(path uintptr)

	// Initialize is Py_Initialize().
	Initialize func()

	// InitThreads is PyEval_InitThreads().
	InitThreads func()

	// RunSimpleString is PyRun_SimpleString(const char *s). Returns 0
	// on success, -1 if the source raised.
	RunSimpleString func(src string) int32

	// RawMalloc is PyMem_RawMalloc(size_t). Returns 0 when out of
	// memory.
	RawMalloc func(size uintptr) uintptr

	// RawFree is PyMem_RawFree(void *). The only legal way to release
	// memory produced by RawMalloc or DecodeLocale.
	RawFree func(p uintptr)

	// Main is Py_Main(int argc, wchar_t **argv). Blocks until the
	// interpreter exits and returns its status code.
	Main func(argc int32, argv uintptr) int32
}

// Runtime owns a loaded CPython shared library and its bound entry
// point table. It is created by OpenRuntime and must be closed exactly
// once with Close.
type Runtime struct {
	EntryPoints

	handle uintptr
}

// runtimeSymbols lists the entry points resolved at open time, in
// resolution order. Binding stops at the first missing symbol.
var runtimeSymbols = []string{
	"Py_SetProgramName",
	"Py_DecodeLocale",
	"Py_SetPath",
	"Py_Initialize",
	"PyEval_InitThreads",
	"PyRun_SimpleString",
	"PyMem_RawMalloc",
	"PyMem_RawFree",
	"Py_Main",
}

// OpenRuntime loads the CPython shared library at libPath and binds the
// full entry point table. Any failure, opening the library or resolving
// any single symbol, returns an error carrying the loader's diagnostic;
// no partially bound Runtime is ever returned.
func OpenRuntime(libPath string) (*Runtime, error) {
	handle, err := purego.Dlopen(libPath, purego.RTLD_LAZY)
	if err != nil {
		return nil, fmt.Errorf("dlopen(%q) failed: %v", libPath, err)
	}

	rt := &Runtime{handle: handle}
	if err := rt.bind(); err != nil {
		purego.Dlclose(handle)
		return nil, err
	}
	return rt, nil
}

// bind resolves every symbol in runtimeSymbols and registers it onto
// the matching typed function field, failing fast on the first miss.
func (rt *Runtime) bind() error {
	targets := map[string]interface{}{
		"Py_SetProgramName":  &rt.SetProgramName,
		"Py_DecodeLocale":    &rt.DecodeLocale,
		"Py_SetPath":         &rt.SetPath,
		"Py_Initialize":      &rt.Initialize,
		"PyEval_InitThreads": &rt.InitThreads,
		"PyRun_SimpleString": &rt.RunSimpleString,
		"PyMem_RawMalloc":    &rt.RawMalloc,
		"PyMem_RawFree":      &rt.RawFree,
		"Py_Main":            &rt.Main,
	}

	for _, name := range runtimeSymbols {
		addr, err := purego.Dlsym(rt.handle, name)
		if err != nil {
			return fmt.Errorf("dlsym(%q) failed: %v", name, err)
		}
		purego.RegisterFunc(targets[name], addr)
	}
	return nil
}

// Close releases the library handle. Safe to call more than once and on
// a Runtime that never finished opening.
func (rt *Runtime) Close() error {
	if rt == nil || rt.handle == 0 {
		return nil
	}
	err := purego.Dlclose(rt.handle)
	rt.handle = 0
	if err != nil {
		return fmt.Errorf("dlclose failed: %v", err)
	}
	return nil
}
