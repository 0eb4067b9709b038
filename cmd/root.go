package cmd

import (
	"os"
	"strings"

	"github.com/Justype/subprep/internal/config"
	"github.com/Justype/subprep/internal/utils"
	"github.com/spf13/cobra"
)

var (
	debugMode  bool
	quietMode  bool
	configFile string
)

var rootCmd = &cobra.Command{
	Use:           "subprep",
	Short:         "subprep: validate resource specs and launch commands before job submission.",
	Version:       config.VERSION,
	SilenceErrors: true,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Step 1: Load defaults
		config.LoadDefaults()

		// Step 2: Initialize Viper (read config file, env vars)
		if err := config.InitViper(configFile); err != nil {
			// An explicit --config that cannot be read is fatal, a broken
			// file found by search is not.
			if configFile != "" {
				ExitWithError("%v", err)
			}
			utils.PrintDebug("Error reading config file: %v", err)
		}

		// Step 3: Load values from Viper into Global config
		config.LoadFromViper()

		// Step 4: Apply command-line flags (highest priority)
		if quietMode {
			utils.QuietMode = true
		}
		if debugMode {
			utils.DebugMode = true
			config.Global.Debug = true
			utils.PrintDebug("Debug mode enabled")
			utils.PrintDebug("subprep Version: %s", utils.StyleInfo(config.VERSION))
			utils.PrintDebug("Resource Types: %s", strings.Join(config.Global.ResourceTypes, ", "))
			utils.PrintDebug("Security Enabled: %v", config.Global.SecurityEnabled)
			if config.Global.SecurityEnabled {
				utils.PrintDebug("kinit Binary: %s", config.Global.KinitBin)
				utils.PrintDebug("klist Binary: %s", config.Global.KlistBin)
			}
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra's automatic error printing is silenced. A failed kinit/klist
		// run carries the tool's own output in its message.
		utils.PrintError("%v", err)
		os.Exit(ExitCodeError)
	}
}

func init() {
	// Subcommands are attached to rootCmd in their respective init() functions
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode with verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Only print errors and command output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: search ~/.config/subprep, ~/.subprep, /etc/subprep)")
}
