package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Justype/subprep/internal/resource"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"
)

// isolate points every config search path at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	LoadDefaults()
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	if diff := cmp.Diff(resource.DefaultTypes(), Global.ResourceTypes); diff != "" {
		t.Errorf("ResourceTypes mismatch (-want +got):\n%s", diff)
	}
	if Global.SecurityEnabled {
		t.Error("SecurityEnabled should default to false")
	}
	if Global.DefaultNumWorkers != 1 {
		t.Errorf("DefaultNumWorkers = %d; want 1", Global.DefaultNumWorkers)
	}
	if Global.Output != OutputTable {
		t.Errorf("Output = %q; want %q", Global.Output, OutputTable)
	}
}

func TestInitViperWithoutConfigFile(t *testing.T) {
	isolate(t)

	if err := InitViper(""); err != nil {
		t.Fatalf("InitViper failed: %v", err)
	}
	LoadFromViper()

	reg := Global.Registry()
	for _, name := range resource.DefaultTypes() {
		if !reg.Has(name) {
			t.Errorf("registry missing default type %q", name)
		}
	}
}

func TestInitViperExplicitFile(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "cluster.yaml")
	content := `resource_types:
  - memory-mb
  - vcores
  - yarn.io/gpu
  - resource1
security_enabled: true
kinit_bin: /usr/local/bin/kinit
default_num_workers: 4
output: yaml
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if err := InitViper(path); err != nil {
		t.Fatalf("InitViper failed: %v", err)
	}
	LoadFromViper()

	want := []string{"memory-mb", "vcores", "yarn.io/gpu", "resource1"}
	if diff := cmp.Diff(want, Global.ResourceTypes); diff != "" {
		t.Errorf("ResourceTypes mismatch (-want +got):\n%s", diff)
	}
	if !Global.SecurityEnabled {
		t.Error("SecurityEnabled = false; want true")
	}
	if Global.KinitBin != "/usr/local/bin/kinit" {
		t.Errorf("KinitBin = %q", Global.KinitBin)
	}
	if Global.KlistBin != "klist" {
		t.Errorf("KlistBin = %q; want default klist", Global.KlistBin)
	}
	if Global.DefaultNumWorkers != 4 {
		t.Errorf("DefaultNumWorkers = %d; want 4", Global.DefaultNumWorkers)
	}
	if Global.Output != OutputYAML {
		t.Errorf("Output = %q; want yaml", Global.Output)
	}
	if Global.Registry().Has(resource.FPGAURI) {
		t.Error("fpga should not be registered when the config omits it")
	}

	var inUse int
	for _, sp := range GetConfigSearchPaths() {
		if sp.InUse {
			inUse++
			if sp.Type != "explicit" {
				t.Errorf("in-use path type = %q; want explicit", sp.Type)
			}
		}
	}
	if inUse != 1 {
		t.Errorf("%d search paths in use; want 1", inUse)
	}
}

func TestInitViperMissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	if err := InitViper(filepath.Join(dir, "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestEnvOverridesResourceTypes(t *testing.T) {
	isolate(t)
	t.Setenv("SUBPREP_RESOURCE_TYPES", "memory-mb, vcores,disk")
	t.Setenv("SUBPREP_OUTPUT", "xml")

	if err := InitViper(""); err != nil {
		t.Fatalf("InitViper failed: %v", err)
	}
	LoadFromViper()

	if diff := cmp.Diff([]string{"memory-mb", "vcores", "disk"}, Global.ResourceTypes); diff != "" {
		t.Errorf("ResourceTypes mismatch (-want +got):\n%s", diff)
	}
	// invalid output formats are ignored
	if Global.Output != OutputTable {
		t.Errorf("Output = %q; want table", Global.Output)
	}
}

func TestSaveConfigTo(t *testing.T) {
	dir := isolate(t)
	if err := InitViper(""); err != nil {
		t.Fatal(err)
	}
	viper.Set("security_enabled", true)

	path := filepath.Join(dir, "out", "config.yaml")
	if err := SaveConfigTo(path); err != nil {
		t.Fatalf("SaveConfigTo failed: %v", err)
	}

	viper.Reset()
	LoadDefaults()
	if err := InitViper(path); err != nil {
		t.Fatalf("re-reading saved config failed: %v", err)
	}
	LoadFromViper()
	if !Global.SecurityEnabled {
		t.Error("saved security_enabled was not read back")
	}
}

func TestSplitList(t *testing.T) {
	got := splitList([]string{"a,b", " c ", "", "d,,e"})
	if diff := cmp.Diff([]string{"a", "b", "c", "d", "e"}, got); diff != "" {
		t.Errorf("splitList mismatch (-want +got):\n%s", diff)
	}
}

func TestIsValidOutput(t *testing.T) {
	if !IsValidOutput("table") || !IsValidOutput("yaml") || IsValidOutput("json") {
		t.Error("IsValidOutput returned unexpected result")
	}
}

func TestInitViperExplicitFileWithoutYamlExtension(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "subprep.conf")
	if err := os.WriteFile(path, []byte("default_num_workers: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := InitViper(path); err != nil {
		t.Fatalf("InitViper(%s) failed: %v", path, err)
	}
	LoadFromViper()

	if Global.DefaultNumWorkers != 3 {
		t.Errorf("DefaultNumWorkers = %d; want 3", Global.DefaultNumWorkers)
	}
}
