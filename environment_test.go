package pybootstrap

import (
	"os"
	"testing"
)

// clearBootstrapEnv empties every variable the resolver reads or
// writes, with t.Setenv so the prior values come back after the test.
func clearBootstrapEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvBootstrap, EnvAppRoot, EnvAppPath, EnvEntryPoint,
		EnvProgramName, EnvUnpackRoot, EnvWaitForExit,
		EnvLibraryPath, EnvPythonVersion,
	} {
		t.Setenv(key, "")
	}
}

func TestResolveEnvironmentRequiresAppRoot(t *testing.T) {
	clearBootstrapEnv(t)

	_, err := ResolveEnvironment()
	if err == nil {
		t.Fatal("Expected error when application root is unset")
	}
}

func TestResolveEnvironmentDefaults(t *testing.T) {
	clearBootstrapEnv(t)
	t.Setenv(EnvAppRoot, "/data/app-root")
	t.Setenv(EnvLibraryPath, "/data/app-root/lib/libruntime.so")

	cfg, err := ResolveEnvironment()
	if err != nil {
		t.Fatalf("ResolveEnvironment failed: %v", err)
	}

	if cfg.AppRoot != "/data/app-root" {
		t.Errorf("Expected app root '/data/app-root', got %q", cfg.AppRoot)
	}
	if cfg.UnpackRoot != "/data/app-root" {
		t.Errorf("Expected unpack root to default to app root, got %q", cfg.UnpackRoot)
	}
	if cfg.ProgramName != DefaultProgramName {
		t.Errorf("Expected program name %q, got %q", DefaultProgramName, cfg.ProgramName)
	}
	if cfg.LibraryPath != "/data/app-root/lib/libruntime.so" {
		t.Errorf("Expected library path passthrough, got %q", cfg.LibraryPath)
	}
	if got := cfg.PythonVersion.MinorString(); got != "3.8" {
		t.Errorf("Expected default python version 3.8, got %q", got)
	}

	// Derived values must be visible to the interpreter's own
	// environment-sensing code.
	if got := os.Getenv(EnvBootstrap); got != BootstrapID {
		t.Errorf("Expected %s exported as %q, got %q", EnvBootstrap, BootstrapID, got)
	}
	if got := os.Getenv(EnvAppPath); got != "/data/app-root" {
		t.Errorf("Expected %s exported as app root, got %q", EnvAppPath, got)
	}
	if got := os.Getenv(EnvUnpackRoot); got != "/data/app-root" {
		t.Errorf("Expected %s exported as app root, got %q", EnvUnpackRoot, got)
	}
	if got := os.Getenv(EnvProgramName); got != DefaultProgramName {
		t.Errorf("Expected %s exported as %q, got %q", EnvProgramName, DefaultProgramName, got)
	}
}

func TestResolveEnvironmentIdempotent(t *testing.T) {
	clearBootstrapEnv(t)
	t.Setenv(EnvAppRoot, "/data/app-root")

	first, err := ResolveEnvironment()
	if err != nil {
		t.Fatalf("first resolution failed: %v", err)
	}
	second, err := ResolveEnvironment()
	if err != nil {
		t.Fatalf("second resolution failed: %v", err)
	}
	if first != second {
		t.Errorf("Expected identical configs, got %+v and %+v", first, second)
	}
}

func TestResolveEnvironmentExplicitValues(t *testing.T) {
	clearBootstrapEnv(t)
	t.Setenv(EnvAppRoot, "/data/app-root")
	t.Setenv(EnvUnpackRoot, "/data/unpack")
	t.Setenv(EnvProgramName, "mypython")
	t.Setenv(EnvEntryPoint, "main")
	t.Setenv(EnvWaitForExit, "1")
	t.Setenv(EnvPythonVersion, "3.11")

	cfg, err := ResolveEnvironment()
	if err != nil {
		t.Fatalf("ResolveEnvironment failed: %v", err)
	}

	if cfg.UnpackRoot != "/data/unpack" {
		t.Errorf("Expected explicit unpack root preserved, got %q", cfg.UnpackRoot)
	}
	if cfg.ProgramName != "mypython" {
		t.Errorf("Expected explicit program name preserved, got %q", cfg.ProgramName)
	}
	if cfg.EntryPoint != "main" {
		t.Errorf("Expected entry point 'main', got %q", cfg.EntryPoint)
	}
	if cfg.WaitForExit != "1" {
		t.Errorf("Expected wait-for-exit passthrough '1', got %q", cfg.WaitForExit)
	}
	if got := cfg.PythonVersion.MinorString(); got != "3.11" {
		t.Errorf("Expected python version 3.11, got %q", got)
	}
}

func TestResolveEnvironmentBadVersion(t *testing.T) {
	clearBootstrapEnv(t)
	t.Setenv(EnvAppRoot, "/data/app-root")
	t.Setenv(EnvPythonVersion, "not-a-version")

	_, err := ResolveEnvironment()
	if err == nil {
		t.Fatal("Expected error for unparseable python version")
	}
}
