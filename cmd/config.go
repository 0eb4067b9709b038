package cmd

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/Justype/subprep/internal/config"
	"github.com/Justype/subprep/internal/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	showPath  bool
	initForce bool
)

// configKeys is the list of known configuration keys for shell completion
var configKeys = []string{
	"resource_types",
	"security_enabled",
	"kinit_bin",
	"klist_bin",
	"default_num_workers",
	"output",
}

// configKeysCompletion returns config keys for shell completion
func configKeysCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		// First arg: complete config keys
		return configKeys, cobra.ShellCompDirectiveNoFileComp
	}
	if len(args) == 1 {
		// Second arg: complete values based on the key
		return configValueCompletion(args[0]), cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

// configValueCompletion returns suggested values for a config key
func configValueCompletion(key string) []string {
	switch key {
	case "security_enabled":
		return []string{"true", "false"}
	case "default_num_workers":
		return []string{"1", "2", "4", "8"}
	case "output":
		return []string{config.OutputTable, config.OutputYAML}
	case "resource_types":
		return []string{strings.Join(config.Global.ResourceTypes, ",")}
	default:
		return nil
	}
}

// getConfigEnvVars returns the environment variable names that override config keys
func getConfigEnvVars() []string {
	vars := make([]string, 0, len(configKeys))
	for _, key := range configKeys {
		vars = append(vars, config.EnvPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")))
	}
	sort.Strings(vars)
	return vars
}

// parseConfigValue converts the string given to 'config set' into the type
// stored for key.
func parseConfigValue(key, value string) (interface{}, error) {
	switch key {
	case "resource_types":
		var names []string
		for _, name := range strings.Split(value, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
		if len(names) == 0 {
			return nil, fmt.Errorf("resource_types needs at least one name")
		}
		return names, nil
	case "security_enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean %q", value)
		}
		return b, nil
	case "default_num_workers":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("default_num_workers must be a positive integer, got %q", value)
		}
		return n, nil
	case "output":
		if !config.IsValidOutput(value) {
			return nil, fmt.Errorf("output must be %s or %s, got %q", config.OutputTable, config.OutputYAML, value)
		}
		return value, nil
	default:
		return value, nil
	}
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage subprep configuration",
	Long: `Manage subprep configuration settings.

Configuration priority (highest to lowest):
  1. Command-line flags
  2. Environment variables (SUBPREP_*)
  3. Config file given with --config
  4. User config file (~/.config/subprep/config.yaml)
  5. Home config file (~/.subprep/config.yaml)
  6. System config file (/etc/subprep/config.yaml)
  7. ./config.yaml
  8. Defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Display current configuration values and their sources.

Shows:
  - Config file search paths and which one is in use
  - All configuration settings
  - Environment variable overrides`,
	Run: func(cmd *cobra.Command, args []string) {
		if showPath {
			printConfigPath()
			return
		}

		// Show config file search paths
		fmt.Println(utils.StyleTitle("Config File Search Paths:"))
		foundActive := false
		for i, sp := range config.GetConfigSearchPaths() {
			status := ""
			if sp.InUse {
				status = " " + utils.StyleSuccess("← in use")
				foundActive = true
			} else if sp.Exists {
				status = " " + utils.StyleInfo("(exists)")
			}
			fmt.Printf("  %d. [%s] %s%s\n", i+1, sp.Type, sp.Path, status)
		}
		if !foundActive {
			fmt.Printf("  %s (use 'subprep config init' to create)\n", utils.StyleWarning("No config file found"))
		}
		fmt.Println()

		fmt.Println(utils.StyleTitle("Resources:"))
		fmt.Printf("  resource_types:       %s\n", strings.Join(config.Global.ResourceTypes, ", "))
		fmt.Printf("  default_num_workers:  %d\n", config.Global.DefaultNumWorkers)
		fmt.Println()

		fmt.Println(utils.StyleTitle("Security:"))
		fmt.Printf("  security_enabled:     %v\n", config.Global.SecurityEnabled)
		fmt.Printf("  kinit_bin:            %s%s\n", config.Global.KinitBin, binaryStatus(config.Global.KinitBin))
		fmt.Printf("  klist_bin:            %s%s\n", config.Global.KlistBin, binaryStatus(config.Global.KlistBin))
		fmt.Println()

		fmt.Println(utils.StyleTitle("Output:"))
		fmt.Printf("  output:               %s\n", config.Global.Output)
		fmt.Println()

		// Show environment variable overrides
		fmt.Println(utils.StyleTitle("Environment Variable Overrides:"))
		hasEnvOverrides := false
		for _, envVar := range getConfigEnvVars() {
			if val := os.Getenv(envVar); val != "" {
				fmt.Printf("  %s=%s\n", envVar, val)
				hasEnvOverrides = true
			}
		}
		if !hasEnvOverrides {
			fmt.Printf("  %s\n", utils.StyleInfo("none"))
		}
	},
}

// binaryStatus marks binaries that cannot be found
func binaryStatus(bin string) string {
	if config.ValidateBinary(bin) {
		return ""
	}
	return " " + utils.StyleWarning("(not found)")
}

func printConfigPath() {
	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Println(used)
		return
	}
	configPath, err := config.GetUserConfigPath()
	if err != nil {
		ExitWithError("Failed to get config path: %v", err)
	}
	fmt.Println(configPath)
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Long:  "Print the config file in use, or the user config path when none is loaded",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printConfigPath()
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a specific configuration value.

Examples:
  subprep config get resource_types
  subprep config get security_enabled`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: configKeysCompletion,
	Run: func(cmd *cobra.Command, args []string) {
		key := args[0]
		value := viper.Get(key)
		if value == nil {
			ExitWithError("Unknown config key: %s", key)
		}
		if list, ok := value.([]string); ok {
			fmt.Println(strings.Join(list, ","))
			return
		}
		fmt.Println(value)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and save to the user config file.

Examples:
  subprep config set resource_types memory-mb,vcores,yarn.io/gpu
  subprep config set security_enabled true
  subprep config set kinit_bin /usr/bin/kinit
  subprep config set output yaml`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: configKeysCompletion,
	Run: func(cmd *cobra.Command, args []string) {
		key := args[0]

		known := false
		for _, k := range configKeys {
			if k == key {
				known = true
				break
			}
		}
		if !known {
			utils.PrintWarning("Warning: '%s' is not a standard config key", key)
		}

		value, err := parseConfigValue(key, args[1])
		if err != nil {
			ExitWithError("Invalid value: %v", err)
		}
		if (key == "kinit_bin" || key == "klist_bin") && !config.ValidateBinary(args[1]) {
			utils.PrintWarning("%s not found or not executable", utils.StylePath(args[1]))
		}

		viper.Set(key, value)

		if err := config.SaveConfig(); err != nil {
			ExitWithError("Failed to save config: %v", err)
		}

		configPath, _ := config.GetUserConfigPath()
		utils.PrintSuccess("Set %s = %s", utils.StyleInfo(key), utils.StyleInfo(args[1]))
		utils.PrintNote("Config saved to: %s", configPath)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file with defaults",
	Long: `Create the user config file (~/.config/subprep/config.yaml) with the
current settings, including any environment overrides.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, err := config.GetUserConfigPath()
		if err != nil {
			ExitWithError("Failed to get config path: %v", err)
		}

		if utils.FileExists(configPath) && !initForce {
			utils.PrintWarning("Config file already exists: %s", configPath)
			if !utils.IsInteractiveShell() {
				utils.PrintHint("Use --force to overwrite")
				return
			}
			fmt.Print("Overwrite? [y/N]: ")
			var response string
			fmt.Scanln(&response)
			response = strings.ToLower(strings.TrimSpace(response))
			if response != "y" && response != "yes" {
				utils.PrintNote("Cancelled")
				return
			}
		}

		// Persist the effective values, not only what was read from a file
		for _, key := range configKeys {
			viper.Set(key, viper.Get(key))
		}
		if err := config.SaveConfigTo(configPath); err != nil {
			ExitWithError("Failed to save config: %v", err)
		}

		utils.PrintSuccess("Config file created")
		fmt.Printf("  Location: %s\n", utils.StylePath(configPath))
	},
}

func init() {
	configShowCmd.Flags().BoolVar(&showPath, "path", false, "Show only the config file path")
	configInitCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)

	rootCmd.AddCommand(configCmd)
}
