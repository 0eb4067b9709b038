package cmd

import (
	"fmt"
	"strings"

	"github.com/Justype/subprep/internal/launch"
	"github.com/Justype/subprep/internal/utils"
	"github.com/spf13/cobra"
)

var launchFlags ParamFlags

var launchCmd = &cobra.Command{
	Use:   "launch-cmd [flags] <command>",
	Short: "Substitute job parameters into a launch command",
	Long: `Replace the placeholders %INPUT_PATH%, %CHECKPOINT_PATH% and
%SAVED_MODEL_PATH% in a launch command with the values given by flags.

Placeholders without a matching flag are left untouched. Several words after
the flags are joined with spaces.`,
	Example: `  subprep launch-cmd --input_path hdfs://data 'python train.py --data %INPUT_PATH%'
  subprep launch-cmd --saved_model_path /models -- python export.py --out %SAVED_MODEL_PATH%`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		command := strings.Join(args, " ")
		resolved := launch.Resolve(command, launchFlags.Params(cmd.Flags()))

		if left := launch.Unresolved(resolved); len(left) > 0 {
			utils.PrintWarning("Unresolved placeholders: %s", strings.Join(left, ", "))
		}
		fmt.Println(resolved)
		return nil
	},
}

func init() {
	RegisterParamFlags(launchCmd, &launchFlags)
	launchCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(launchCmd)
}
