package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

// detectShell picks the shell from $SHELL, falling back to bash
func detectShell(shellEnv string) string {
	shellLower := strings.ToLower(shellEnv)
	switch {
	case strings.Contains(shellLower, "fish"):
		return "fish"
	case strings.Contains(shellLower, "zsh"):
		return "zsh"
	case strings.Contains(shellLower, "pwsh"), strings.Contains(shellLower, "powershell"):
		return "powershell"
	}
	return "bash"
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for subprep.

If no shell is specified, it is detected from $SHELL (bash if unknown).

Bash:
  $ source <(subprep completion bash)
  $ subprep completion bash > /etc/bash_completion.d/subprep

Zsh:
  $ subprep completion zsh > "${fpath[1]}/_subprep"

Fish:
  $ subprep completion fish > ~/.config/fish/completions/subprep.fish

PowerShell:
  PS> subprep completion powershell | Out-String | Invoke-Expression

Resource specs complete one name= at a time, e.g.
  subprep resource memory=4G,<TAB>`,
	DisableFlagsInUseLine: true,
	ValidArgs:             completionShells,
	Args:                  cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	SilenceUsage:          true,
	RunE: func(cmd *cobra.Command, args []string) error {
		shell := detectShell(os.Getenv("SHELL"))
		if len(args) > 0 {
			shell = args[0]
		}
		return writeCompletion(cmd.Root(), shell, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// writeCompletion generates the completion script for shell. Short flag
// shorthands are hidden while generating so only long options are offered.
func writeCompletion(root *cobra.Command, shell string, w io.Writer) error {
	saved := stripShortFlagShorthands(root)
	defer restoreShortFlagShorthands(root, saved)

	switch shell {
	case "bash":
		var buf bytes.Buffer
		if err := root.GenBashCompletionV2(&buf, true); err != nil {
			return err
		}
		_, err := io.WriteString(w, postProcessBashCompletion(buf.String()))
		return err
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	}
	return fmt.Errorf("unsupported shell %q", shell)
}

// postProcessBashCompletion falls back to file completion after "--", where
// launch-cmd takes the raw command line.
func postProcessBashCompletion(script string) string {
	oldCode := `args=("${words[@]:1}")
    requestComp="${words[0]} __complete ${args[*]}"`

	newCode := `args=("${words[@]:1}")
    for word in "${words[@]}"; do
        if [[ "$word" == "--" ]]; then
            return
        fi
    done
    requestComp="${words[0]} __complete ${args[*]}"`

	return strings.Replace(script, oldCode, newCode, 1)
}

// stripShortFlagShorthands clears every flag shorthand in the command tree
// and returns the saved values keyed by flag name.
func stripShortFlagShorthands(root *cobra.Command) map[string]string {
	saved := make(map[string]string)
	visitFlags(root, func(f *pflag.Flag) {
		if f.Shorthand != "" {
			saved[f.Name] = f.Shorthand
			f.Shorthand = ""
		}
	})
	return saved
}

func restoreShortFlagShorthands(root *cobra.Command, saved map[string]string) {
	visitFlags(root, func(f *pflag.Flag) {
		if old, ok := saved[f.Name]; ok {
			f.Shorthand = old
		}
	})
}

// visitFlags applies fn to the local, persistent and inherited flags of
// every command below root.
func visitFlags(root *cobra.Command, fn func(*pflag.Flag)) {
	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		c.LocalFlags().VisitAll(fn)
		c.PersistentFlags().VisitAll(fn)
		c.InheritedFlags().VisitAll(fn)
		for _, child := range c.Commands() {
			walk(child)
		}
	}
	walk(root)
}
