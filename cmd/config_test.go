package cmd

import (
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Justype/subprep/internal/config"
)

func TestConfigValueCompletion(t *testing.T) {
	opts := configValueCompletion("output")
	for _, e := range []string{config.OutputTable, config.OutputYAML} {
		found := false
		for _, o := range opts {
			if o == e {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected completion option %q not present", e)
		}
	}
	if got := configValueCompletion("kinit_bin"); got != nil {
		t.Errorf("configValueCompletion(kinit_bin) = %v; want nil", got)
	}
}

func TestParseConfigValue(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		want    interface{}
		wantErr bool
	}{
		{"resource_types", "memory-mb, vcores,,yarn.io/gpu", []string{"memory-mb", "vcores", "yarn.io/gpu"}, false},
		{"resource_types", " , ", nil, true},
		{"security_enabled", "true", true, false},
		{"security_enabled", "yes", nil, true},
		{"default_num_workers", "4", 4, false},
		{"default_num_workers", "0", nil, true},
		{"default_num_workers", "many", nil, true},
		{"output", "yaml", "yaml", false},
		{"output", "json", nil, true},
		{"kinit_bin", "/usr/bin/kinit", "/usr/bin/kinit", false},
	}

	for _, tt := range tests {
		got, err := parseConfigValue(tt.key, tt.value)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseConfigValue(%q, %q) expected error, got %v", tt.key, tt.value, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseConfigValue(%q, %q) unexpected error: %v", tt.key, tt.value, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("parseConfigValue(%q, %q) mismatch (-want +got):\n%s", tt.key, tt.value, diff)
		}
	}
}

func TestGetConfigEnvVars(t *testing.T) {
	vars := getConfigEnvVars()
	expected := make([]string, 0, len(configKeys))
	for _, key := range configKeys {
		expected = append(expected, "SUBPREP_"+strings.ToUpper(key))
	}
	sort.Strings(expected)

	if diff := cmp.Diff(expected, vars); diff != "" {
		t.Errorf("getConfigEnvVars mismatch (-want +got):\n%s", diff)
	}
}
