package pybootstrap

import (
	"fmt"
	"os"
)

// Environment variable names consumed and re-exported by the bootstrap.
// The names follow the python-for-android launcher convention: the host
// application sets these before exec'ing the shim, and the embedded
// interpreter (and any Python code it runs) reads them back.
const (
	// EnvBootstrap identifies the bootstrap flavor to downstream code.
	// Always written with the fixed value BootstrapID.
	EnvBootstrap = "P4A_BOOTSTRAP"

	// EnvAppRoot is the application root directory. Required.
	EnvAppRoot = "ANDROID_ARGUMENT"

	// EnvAppPath is re-exported with the value of EnvAppRoot so Python
	// code can locate the application without knowing the launcher name.
	EnvAppPath = "ANDROID_APP_PATH"

	// EnvEntryPoint names the Python module the host wants started.
	// Read and passed through; the shim itself does not consume it.
	EnvEntryPoint = "ANDROID_ENTRYPOINT"

	// EnvProgramName is the interpreter display name. Defaults to
	// DefaultProgramName and is written back when unset.
	EnvProgramName = "PYTHON_NAME"

	// EnvUnpackRoot is the directory the application bundle was
	// extracted under. Defaults to EnvAppRoot when unset.
	EnvUnpackRoot = "ANDROID_UNPACK"

	// EnvWaitForExit is a flag consulted by downstream code after the
	// interpreter returns. Read and passed through only.
	EnvWaitForExit = "WAIT_FOR_EXIT"

	// EnvLibraryPath is the filesystem path of the CPython shared
	// library to load.
	EnvLibraryPath = "EXEPATH"

	// EnvPythonVersion optionally overrides the interpreter version used
	// to derive the versioned site-packages directory.
	EnvPythonVersion = "PYTHON_VERSION"
)

// BootstrapID is the fixed marker exported as EnvBootstrap.
const BootstrapID = "SDL2"

// DefaultProgramName is used when EnvProgramName is unset.
const DefaultProgramName = "python"

// defaultPythonVersion matches the interpreter version shipped in the
// application bundle when EnvPythonVersion does not say otherwise.
const defaultPythonVersion = "3.8"

// Config is a read-once snapshot of the bootstrap environment. It is
// populated by ResolveEnvironment and passed by value into the later
// phases, which never re-read process state.
type Config struct {
	// AppRoot is the application root directory (EnvAppRoot).
	AppRoot string

	// UnpackRoot is the directory the bundle was extracted under.
	// Equal to AppRoot when EnvUnpackRoot was unset.
	UnpackRoot string

	// EntryPoint is the startup module name requested by the host.
	EntryPoint string

	// ProgramName is the interpreter display name, exported for
	// downstream code. The runtime's program-name setter receives a
	// fixed value independent of it.
	ProgramName string

	// WaitForExit is the raw EnvWaitForExit value, passed through for
	// downstream code. The shim does not act on it.
	WaitForExit string

	// LibraryPath is the shared library to load (EnvLibraryPath).
	LibraryPath string

	// PythonVersion selects the lib/pythonX.Y/site-packages path
	// element appended to the module search path.
	PythonVersion Version
}

// ResolveEnvironment reads the bootstrap environment variables once,
// applies defaults, and re-exports the derived values so that both this
// process and the embedded interpreter observe a consistent
// configuration.
//
// Exported side effects:
//   - EnvBootstrap is set to BootstrapID
//   - EnvAppPath is set to the application root
//   - EnvUnpackRoot is set to the application root when it was unset
//   - EnvProgramName is set to DefaultProgramName when it was unset
//
// Resolution is idempotent: running it again with the derived values
// already exported produces the same Config and environment.
//
// An unset application root is fatal: every later path derivation
// interpolates it, so proceeding would bake garbage into the module
// search path.
func ResolveEnvironment() (Config, error) {
	cfg := Config{}

	cfg.AppRoot = os.Getenv(EnvAppRoot)
	if cfg.AppRoot == "" {
		return Config{}, fmt.Errorf("%s is not set; the host application must provide the application root", EnvAppRoot)
	}

	if err := os.Setenv(EnvBootstrap, BootstrapID); err != nil {
		return Config{}, fmt.Errorf("error exporting %s: %v", EnvBootstrap, err)
	}
	if err := os.Setenv(EnvAppPath, cfg.AppRoot); err != nil {
		return Config{}, fmt.Errorf("error exporting %s: %v", EnvAppPath, err)
	}

	cfg.UnpackRoot = os.Getenv(EnvUnpackRoot)
	if cfg.UnpackRoot == "" {
		cfg.UnpackRoot = cfg.AppRoot
		if err := os.Setenv(EnvUnpackRoot, cfg.UnpackRoot); err != nil {
			return Config{}, fmt.Errorf("error exporting %s: %v", EnvUnpackRoot, err)
		}
	}

	cfg.ProgramName = os.Getenv(EnvProgramName)
	if cfg.ProgramName == "" {
		cfg.ProgramName = DefaultProgramName
		if err := os.Setenv(EnvProgramName, cfg.ProgramName); err != nil {
			return Config{}, fmt.Errorf("error exporting %s: %v", EnvProgramName, err)
		}
	}

	cfg.EntryPoint = os.Getenv(EnvEntryPoint)
	cfg.WaitForExit = os.Getenv(EnvWaitForExit)
	cfg.LibraryPath = os.Getenv(EnvLibraryPath)

	versionStr := os.Getenv(EnvPythonVersion)
	if versionStr == "" {
		versionStr = defaultPythonVersion
	}
	version, err := ParseVersion(versionStr)
	if err != nil {
		return Config{}, fmt.Errorf("error parsing %s %q: %v", EnvPythonVersion, versionStr, err)
	}
	cfg.PythonVersion = version

	return cfg, nil
}
