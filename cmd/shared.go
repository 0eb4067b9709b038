package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Justype/subprep/internal/config"
	"github.com/Justype/subprep/internal/launch"
	"github.com/Justype/subprep/internal/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Exit codes used by various commands
const (
	// Generic error code
	ExitCodeError = 1
)

// ExitWithError prints an error and exits with ExitCodeError
func ExitWithError(format string, a ...interface{}) {
	utils.PrintError(format, a...)
	os.Exit(ExitCodeError)
}

// ParamFlags holds the placeholder values shared by launch-cmd and run
type ParamFlags struct {
	InputPath      string
	CheckpointPath string
	SavedModelPath string
}

// Flag names for the placeholder values
const (
	flagInputPath      = "input_path"
	flagCheckpointPath = "checkpoint_path"
	flagSavedModelPath = "saved_model_path"
)

// RegisterParamFlags registers the placeholder flags on a cobra command
func RegisterParamFlags(cmd *cobra.Command, flags *ParamFlags) {
	cmd.Flags().StringVar(&flags.InputPath, flagInputPath, "", "value for "+launch.Token(launch.InputPath))
	cmd.Flags().StringVar(&flags.CheckpointPath, flagCheckpointPath, "", "value for "+launch.Token(launch.CheckpointPath))
	cmd.Flags().StringVar(&flags.SavedModelPath, flagSavedModelPath, "", "value for "+launch.Token(launch.SavedModelPath))
}

// Params converts the flags to launch.Params. Only flags given on the command
// line are set, so an explicit empty value still replaces its placeholder.
func (f *ParamFlags) Params(fs *pflag.FlagSet) launch.Params {
	var p launch.Params
	if fs.Changed(flagInputPath) {
		p.InputPath = &f.InputPath
	}
	if fs.Changed(flagCheckpointPath) {
		p.CheckpointPath = &f.CheckpointPath
	}
	if fs.Changed(flagSavedModelPath) {
		p.SavedModelPath = &f.SavedModelPath
	}
	return p
}

// outputFormat returns the --output flag if given, else the configured default
func outputFormat(cmd *cobra.Command, flagValue string) (string, error) {
	format := config.Global.Output
	if cmd.Flags().Changed("output") {
		format = flagValue
	}
	if !config.IsValidOutput(format) {
		return "", fmt.Errorf("unknown output format %q (use %s or %s)", format, config.OutputTable, config.OutputYAML)
	}
	return format, nil
}

// printYAML writes v to stdout as YAML
func printYAML(v interface{}) error {
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

// ============================================================================
// Shell Completion Functions
// ============================================================================

// resourceSpecCompletion completes the name= part of a resource spec.
// Already typed pairs are kept as prefix.
func resourceSpecCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return resourceSuggestions(config.Global.ResourceTypes, toComplete), cobra.ShellCompDirectiveNoSpace | cobra.ShellCompDirectiveNoFileComp
}

func resourceSuggestions(names []string, toComplete string) []string {
	prefix := ""
	current := toComplete
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix = toComplete[:i+1]
		current = toComplete[i+1:]
	}
	if strings.Contains(current, "=") {
		return nil
	}

	suggestions := []string{}
	for _, name := range names {
		if strings.HasPrefix(name, current) {
			suggestions = append(suggestions, prefix+name+"=")
		}
	}
	sort.Strings(suggestions)
	return suggestions
}
