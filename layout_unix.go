//go:build darwin || freebsd || linux

package pybootstrap

import (
	"log"

	"golang.org/x/sys/unix"
)

// warnMissing logs a warning for each bundle location that is not
// readable. The search path is still installed as-is; a missing
// directory only means imports from it will fail later, and the
// warning makes that failure mode visible in the host's log.
func (l BundleLayout) warnMissing() {
	for _, path := range []string{l.Bundle, l.StdlibArchive, l.Modules, l.SitePackages, l.VersionedSitePackages} {
		if err := unix.Access(path, unix.R_OK); err != nil {
			log.Printf("bundle path %s is not readable: %v", path, err)
		}
	}
}
