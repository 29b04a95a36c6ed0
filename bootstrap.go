//go:build darwin || freebsd || linux

package pybootstrap

import (
	"fmt"
	"log"
)

// interpreterProgramName is the fixed name handed to the runtime's
// program-name setter. The display name in EnvProgramName is exported
// for downstream code but does not influence the interpreter itself.
const interpreterProgramName = "android_python"

// Run executes the full bootstrap sequence: open and bind the runtime
// library named by cfg, install the module search path, initialize the
// interpreter, submit the path/prefix bootstrap statements, marshal
// args into the runtime's wide-string representation, and transfer
// control to the interpreter's main entry point.
//
// The returned int is the interpreter's own exit status and is only
// meaningful when err is nil. Any bootstrap failure is returned as an
// error with the library handle already closed; nothing is retried.
func Run(cfg Config, args []string) (int, error) {
	rt, err := OpenRuntime(cfg.LibraryPath)
	if err != nil {
		return 0, err
	}
	defer rt.Close()

	layout := NewBundleLayout(cfg)
	layout.warnMissing()

	status, err := runBound(&rt.EntryPoints, layout, args)
	if err != nil {
		return 0, err
	}
	return status, nil
}

// runBound drives the bound entry point table through the interpreter
// lifecycle. Split from Run so the sequence can be exercised against a
// substitute table.
func runBound(ep *EntryPoints, layout BundleLayout, args []string) (int, error) {
	// Both decoded strings below are retained by the runtime for its
	// whole lifetime and are intentionally never freed.
	name := ep.DecodeLocale(interpreterProgramName, 0)
	if name == 0 {
		return 0, fmt.Errorf("unable to decode the program name %q", interpreterProgramName)
	}
	ep.SetProgramName(name)

	searchPath := layout.SearchPath()
	wpath := ep.DecodeLocale(searchPath, 0)
	if wpath == 0 {
		return 0, fmt.Errorf("unable to decode the module search path %q", searchPath)
	}
	ep.SetPath(wpath)

	ep.Initialize()
	ep.InitThreads()

	// Statement failures are best-effort path augmentation, not fatal;
	// the interpreter will surface any real damage at import time.
	for _, stmt := range layout.BootstrapStatements() {
		if rc := ep.RunSimpleString(stmt); rc != 0 {
			log.Printf("bootstrap statement failed (%d): %s", rc, stmt)
		}
	}

	restore, err := pushNativeLocale()
	if err != nil {
		return 0, err
	}
	vecs, err := marshalArgs(ep, args)
	restore()
	if err != nil {
		return 0, err
	}

	status := ep.Main(int32(vecs.Count), vecs.Primary)

	vecs.release(ep)

	return int(status), nil
}
