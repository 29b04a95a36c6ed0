package pybootstrap

import (
	"strings"
	"testing"
)

func testConfig() Config {
	return Config{
		AppRoot:       "/data/app-root",
		UnpackRoot:    "/data/app-root",
		ProgramName:   DefaultProgramName,
		PythonVersion: Version{Major: 3, Minor: 8, Patch: -1},
	}
}

func TestBundleLayout(t *testing.T) {
	layout := NewBundleLayout(testConfig())

	if layout.Bundle != "/data/app-root/_python_bundle" {
		t.Errorf("Expected bundle root '/data/app-root/_python_bundle', got %q", layout.Bundle)
	}
	if layout.Prefix != "/data/app-root" {
		t.Errorf("Expected prefix '/data/app-root', got %q", layout.Prefix)
	}
	if layout.VersionedSitePackages != "/data/app-root/lib/python3.8/site-packages" {
		t.Errorf("Expected versioned site-packages path, got %q", layout.VersionedSitePackages)
	}

	want := "/data/app-root/_python_bundle/stdlib.zip:/data/app-root/_python_bundle/modules"
	if got := layout.SearchPath(); got != want {
		t.Errorf("Expected search path %q, got %q", want, got)
	}
}

func TestBundleLayoutVersionOverride(t *testing.T) {
	cfg := testConfig()
	cfg.PythonVersion = Version{Major: 3, Minor: 11, Patch: -1}

	layout := NewBundleLayout(cfg)
	if layout.VersionedSitePackages != "/data/app-root/lib/python3.11/site-packages" {
		t.Errorf("Expected python3.11 site-packages path, got %q", layout.VersionedSitePackages)
	}
}

func TestBootstrapStatements(t *testing.T) {
	layout := NewBundleLayout(testConfig())
	stmts := layout.BootstrapStatements()

	if len(stmts) != 6 {
		t.Fatalf("Expected 6 bootstrap statements, got %d", len(stmts))
	}

	if !strings.Contains(stmts[0], "import sys") {
		t.Errorf("Expected import preamble first, got %q", stmts[0])
	}
	if !strings.Contains(stmts[1], "sys.argv = ['notaninterpreterreally']") {
		t.Errorf("Expected argv reset in preamble, got %q", stmts[1])
	}
	if stmts[2] != "sys.prefix = '/data/app-root'" {
		t.Errorf("Expected prefix statement, got %q", stmts[2])
	}
	if stmts[3] != "sys.path.append('/data/app-root/_python_bundle/site-packages')" {
		t.Errorf("Expected bundle site-packages append, got %q", stmts[3])
	}
	if stmts[4] != "sys.path.append('/data/app-root/lib/python3.8/site-packages')" {
		t.Errorf("Expected versioned site-packages append, got %q", stmts[4])
	}
	if stmts[5] != "sys.path = ['.'] + sys.path" {
		t.Errorf("Expected current-directory prepend last, got %q", stmts[5])
	}
}
