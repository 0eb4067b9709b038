package cmd

import (
	"github.com/Justype/subprep/internal/cliutil"
	"github.com/Justype/subprep/internal/config"
	"github.com/Justype/subprep/internal/job"
	"github.com/Justype/subprep/internal/resource"
	"github.com/Justype/subprep/internal/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	runOpts      job.Options
	runParams    ParamFlags
	runKeytab    string
	runPrincipal string
)

var runCmd = &cobra.Command{
	Use:   "run [flags]",
	Short: "Validate a training job and print its launch plan",
	Long: `Validate every role of a distributed training job and print the resolved
plan as YAML.

Each role (worker, ps) takes a resource spec and a launch command. Launch
commands may use %INPUT_PATH%, %CHECKPOINT_PATH% and %SAVED_MODEL_PATH%.

When security_enabled is set, the submitting user must either hold a Kerberos
ticket or pass --keytab together with --principal.`,
	Example: `  subprep run --name mnist --num_workers 2 \
    --worker_resources memory=4G,vcores=2,gpu=1 \
    --worker_launch_cmd 'python train.py --data %INPUT_PATH%' \
    --input_path hdfs://data/mnist`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if changedLocalFlags(cmd) == 0 && cliutil.ArgsForHelp(args) {
			return cmd.Help()
		}

		if !cmd.Flags().Changed(job.FlagNumWorkers) {
			runOpts.NumWorkers = config.Global.DefaultNumWorkers
		}
		runOpts.Params = runParams.Params(cmd.Flags())

		ctx := cmd.Context()
		auth := cliutil.NewKerberosAuthenticator(config.Global.SecurityEnabled,
			config.Global.KinitBin, config.Global.KlistBin)
		if err := cliutil.LoginIfSecure(ctx, auth, runKeytab, runPrincipal); err != nil {
			return err
		}

		plan, err := job.Build(ctx, runOpts, config.Global.Registry())
		if err != nil {
			return err
		}

		for _, line := range plan.Summary() {
			utils.PrintMessage("%s", line)
		}
		total := plan.Total()
		utils.PrintMessage("total: memory %s, vcores %d",
			utils.FormatMebibytes(total[resource.MemoryURI]), total[resource.VCoresURI])
		return printYAML(plan)
	},
}

// changedLocalFlags counts the command's own flags set on the command line;
// persistent flags such as --debug are not counted.
func changedLocalFlags(cmd *cobra.Command) int {
	n := 0
	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			n++
		}
	})
	return n
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&runOpts.Name, job.FlagName, "", "name of the job")
	f.IntVar(&runOpts.NumWorkers, job.FlagNumWorkers, 1, "number of worker tasks (default from default_num_workers)")
	f.StringVar(&runOpts.WorkerResources, job.FlagWorkerResources, "", "resources of each worker, e.g. memory=4G,vcores=2,gpu=1")
	f.StringVar(&runOpts.WorkerLaunchCmd, job.FlagWorkerLaunchCmd, "", "command run by each worker")
	f.IntVar(&runOpts.NumPS, job.FlagNumPS, 0, "number of parameter server tasks")
	f.StringVar(&runOpts.PSResources, job.FlagPSResources, "", "resources of each parameter server")
	f.StringVar(&runOpts.PSLaunchCmd, job.FlagPSLaunchCmd, "", "command run by each parameter server")
	RegisterParamFlags(runCmd, &runParams)
	f.StringVar(&runKeytab, cliutil.KeytabFlag, "", "keytab file used to log in when security is enabled")
	f.StringVar(&runPrincipal, cliutil.PrincipalFlag, "", "principal used with --keytab")

	runCmd.RegisterFlagCompletionFunc(job.FlagWorkerResources, resourceSpecCompletion)
	runCmd.RegisterFlagCompletionFunc(job.FlagPSResources, resourceSpecCompletion)

	rootCmd.AddCommand(runCmd)
}
