package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
)

func TestDetectShell(t *testing.T) {
	tests := map[string]string{
		"/usr/bin/fish":  "fish",
		"/bin/zsh":       "zsh",
		"/usr/bin/pwsh":  "powershell",
		"/bin/bash":      "bash",
		"":               "bash",
		"/usr/bin/tcsh":  "bash",
		"/opt/ZSH/bin/z": "zsh",
	}
	for in, want := range tests {
		if got := detectShell(in); got != want {
			t.Errorf("detectShell(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestResourceSuggestions(t *testing.T) {
	names := []string{"memory-mb", "vcores", "yarn.io/gpu"}

	tests := []struct {
		toComplete string
		want       []string
	}{
		{"", []string{"memory-mb=", "vcores=", "yarn.io/gpu="}},
		{"v", []string{"vcores="}},
		{"memory-mb=4G,", []string{"memory-mb=4G,memory-mb=", "memory-mb=4G,vcores=", "memory-mb=4G,yarn.io/gpu="}},
		{"memory-mb=4G,y", []string{"memory-mb=4G,yarn.io/gpu="}},
		{"vcores=", nil},
		{"x", []string{}},
	}
	for _, tt := range tests {
		got := resourceSuggestions(names, tt.toComplete)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("resourceSuggestions(%q) mismatch (-want +got):\n%s", tt.toComplete, diff)
		}
	}
}

func TestPostProcessBashCompletion(t *testing.T) {
	script := `args=("${words[@]:1}")
    requestComp="${words[0]} __complete ${args[*]}"`
	got := postProcessBashCompletion(script)
	if !strings.Contains(got, `if [[ "$word" == "--" ]]; then`) {
		t.Errorf("-- handling not injected:\n%s", got)
	}
	if got := postProcessBashCompletion("unrelated"); got != "unrelated" {
		t.Errorf("unrelated script changed: %q", got)
	}
}

func TestWriteCompletionRestoresShorthands(t *testing.T) {
	root := &cobra.Command{Use: "tool"}
	child := &cobra.Command{Use: "child", Run: func(*cobra.Command, []string) {}}
	child.Flags().StringP("output", "o", "", "")
	root.AddCommand(child)

	var buf bytes.Buffer
	if err := writeCompletion(root, "bash", &buf); err != nil {
		t.Fatalf("writeCompletion failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("empty completion script")
	}
	if f := child.Flags().Lookup("output"); f.Shorthand != "o" {
		t.Errorf("Shorthand = %q; want restored to \"o\"", f.Shorthand)
	}

	if err := writeCompletion(root, "tcsh", &buf); err == nil {
		t.Error("expected error for unsupported shell")
	}
}
