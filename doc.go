// Package pybootstrap launches an embedded CPython interpreter from
// within a constrained application sandbox without requiring CGO.
//
// The bootstrap is a strictly linear, one-shot sequence run once at
// process startup:
//
//  1. Resolve the launcher environment (ResolveEnvironment): read the
//     host-provided variables, apply defaults, and re-export the derived
//     values so the interpreter's own startup code observes the same
//     configuration.
//
//  2. Load the runtime (OpenRuntime): dlopen the CPython shared library
//     named by the environment and bind the fixed table of entry points
//     by exact symbol name, failing fast on the first miss.
//
//  3. Install paths: derive the bundle layout
//     (<unpack-root>/_python_bundle/{stdlib.zip, modules, site-packages})
//     and hand the colon-joined search path to Py_SetPath before
//     Py_Initialize, then submit the sys.prefix/sys.path bootstrap
//     statements through PyRun_SimpleString.
//
//  4. Marshal arguments: decode the native argv through Py_DecodeLocale
//     under a scoped native-locale switch, into two parallel vectors
//     allocated with PyMem_RawMalloc. The second vector exists solely so
//     teardown can free the original allocations even if Py_Main mutates
//     the working copy.
//
//  5. Invoke Py_Main and propagate its result as the process exit
//     status, freeing the argument vectors through PyMem_RawFree and
//     closing the library handle on the way out.
//
// Every allocation produced by the runtime (decoded strings, argument
// vectors) is released only through the runtime's own deallocator;
// mixing allocators across that boundary is undefined behavior in
// CPython and is treated as a hard rule here.
//
// Any failure during bootstrap is fatal: a diagnostic is written to
// stderr and the process exits non-zero. There are no retries and no
// fallback search paths; a half-initialized interpreter cannot run
// correctly anyway.
//
// The package builds on Unix-like targets (android, linux, darwin,
// freebsd), where dynamic loading goes through github.com/ebitengine/purego.
package pybootstrap
