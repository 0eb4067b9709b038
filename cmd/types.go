package cmd

import (
	"fmt"

	"github.com/Justype/subprep/internal/config"
	"github.com/Justype/subprep/internal/resource"
	"github.com/Justype/subprep/internal/utils"
	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the recognised resource types",
	Long: `List every resource type name a resource spec may use, and the aliases
that map onto them.

The list comes from the resource_types setting.`,
	Example: `  subprep types
  SUBPREP_RESOURCE_TYPES=memory-mb,vcores,disk subprep types`,
	Args: cobra.NoArgs,
	Run:  runTypes,
}

func init() {
	rootCmd.AddCommand(typesCmd)
}

func runTypes(cmd *cobra.Command, args []string) {
	reg := config.Global.Registry()

	// Structured output, no [SUB] prefix
	fmt.Println("Resource Types:")
	for _, name := range reg.Names() {
		fmt.Printf("  %s\n", utils.StyleName(name))
	}

	fmt.Println()
	fmt.Println("Aliases:")
	for _, alias := range []string{"memory", "gpu", "fpga"} {
		canonical := resource.Canonicalize(alias)
		status := ""
		if !reg.Has(canonical) {
			status = " " + utils.StyleWarning("(not registered)")
		}
		fmt.Printf("  %-8s -> %s%s\n", alias, canonical, status)
	}
}
