package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Justype/subprep/internal/config"
	"github.com/Justype/subprep/internal/resource"
	"github.com/Justype/subprep/internal/utils"
	"github.com/spf13/cobra"
)

var resourceOutput string

var resourceCmd = &cobra.Command{
	Use:   "resource <spec>",
	Short: "Parse and validate a resource spec",
	Long: `Parse a resource spec of the form name=amount[unit],... and print the
canonical resource map.

Aliases:
  memory   -> memory-mb   (M/G converted to MiB, no unit means bytes)
  gpu      -> yarn.io/gpu
  fpga     -> yarn.io/fpga

Units: M/m (MiB), G/g (GiB) or none. Every resource name must be listed in the
resource_types setting (see 'subprep types').`,
	Example: `  subprep resource memory=4G,vcores=2
  subprep resource memory-mb=2048,vcores=1,gpu=2 -o yaml`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: resourceSpecCompletion,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := outputFormat(cmd, resourceOutput)
		if err != nil {
			return err
		}

		res, err := resource.CreateResource(args[0], config.Global.Registry())
		if err != nil {
			return err
		}
		if utils.DebugMode {
			pairs := make([]string, 0, len(res.Names()))
			for _, a := range res.Amounts() {
				pairs = append(pairs, utils.StyleResource(a.Name, a.Quantity))
			}
			utils.PrintDebug("Parsed %s", strings.Join(pairs, ","))
		}

		if format == config.OutputYAML {
			return printYAML(res)
		}
		printResourceTable(os.Stdout, res)
		return nil
	},
}

// printResourceTable writes one row per resource type; memory also shows a
// human readable size.
func printResourceTable(w io.Writer, res *resource.Resource) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tAMOUNT\t")
	for _, a := range res.Amounts() {
		if a.Name == resource.MemoryURI {
			fmt.Fprintf(tw, "%s\t%d\t(%s)\n", a.Name, a.Quantity, utils.FormatMebibytes(a.Quantity))
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t\n", a.Name, a.Quantity)
	}
	tw.Flush()
}

func init() {
	resourceCmd.Flags().StringVarP(&resourceOutput, "output", "o", config.OutputTable, "output format: table or yaml")
	rootCmd.AddCommand(resourceCmd)
}
