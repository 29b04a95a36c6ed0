package pybootstrap

import (
	"fmt"
	"strings"
)

// bundleDirName is the directory the packaging step extracts the Python
// bundle into, directly under the unpack root.
const bundleDirName = "_python_bundle"

// BundleLayout holds the installation paths derived from a Config. All
// fields are plain string interpolation over the unpack root; nothing
// here touches the filesystem.
type BundleLayout struct {
	// Bundle is <unpack-root>/_python_bundle.
	Bundle string

	// StdlibArchive is the zipped standard library inside the bundle.
	StdlibArchive string

	// Modules is the native extension module directory inside the bundle.
	Modules string

	// SitePackages is the bundle's site-packages directory.
	SitePackages string

	// VersionedSitePackages is <unpack-root>/lib/pythonX.Y/site-packages.
	VersionedSitePackages string

	// Prefix is the value installed as sys.prefix, the unpack root.
	Prefix string
}

// NewBundleLayout derives the installation paths for cfg. It assumes
// the packaging convention _python_bundle/{stdlib.zip, modules,
// site-packages}; the directories are not required to exist.
func NewBundleLayout(cfg Config) BundleLayout {
	bundle := cfg.UnpackRoot + "/" + bundleDirName
	return BundleLayout{
		Bundle:                bundle,
		StdlibArchive:         bundle + "/stdlib.zip",
		Modules:               bundle + "/modules",
		SitePackages:          bundle + "/site-packages",
		VersionedSitePackages: cfg.UnpackRoot + "/lib/python" + cfg.PythonVersion.MinorString() + "/site-packages",
		Prefix:                cfg.UnpackRoot,
	}
}

// SearchPath returns the colon-joined module search path handed to the
// runtime's path setter before initialization: the stdlib archive
// followed by the native module directory.
func (l BundleLayout) SearchPath() string {
	return strings.Join([]string{l.StdlibArchive, l.Modules}, ":")
}

// BootstrapStatements returns the source statements submitted to the
// runtime, in order, after initialization and before the main entry
// point. The first two import the modules the rest rely on and reset
// the interpreter's own argument list to a placeholder; the remainder
// install sys.prefix and extend sys.path.
func (l BundleLayout) BootstrapStatements() []string {
	return []string{
		"import sys, posix\n",
		"import sys\n" +
			"sys.argv = ['notaninterpreterreally']\n" +
			"from os.path import realpath, join, dirname",
		fmt.Sprintf("sys.prefix = '%s'", l.Prefix),
		fmt.Sprintf("sys.path.append('%s')", l.SitePackages),
		fmt.Sprintf("sys.path.append('%s')", l.VersionedSitePackages),
		"sys.path = ['.'] + sys.path",
	}
}
