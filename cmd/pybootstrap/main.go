// Command pybootstrap is the process bootstrap shim launched inside the
// application sandbox. It resolves the launcher environment, loads the
// bundled CPython shared library, and hands control to Py_Main. Its
// exit status is the interpreter's own.
package main

import (
	"fmt"
	"os"

	"github.com/calobozan/pybootstrap"
)

func main() {
	cfg, err := pybootstrap.ResolveEnvironment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	status, err := pybootstrap.Run(cfg, os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(status)
}
