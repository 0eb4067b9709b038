package config

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/Justype/subprep/internal/resource"
	"github.com/Justype/subprep/internal/utils"
	"github.com/spf13/viper"
)

// ConfigFilename is the name of the config file
const ConfigFilename = "config"

// ConfigType is the type of config file (yaml, json, toml)
const ConfigType = "yaml"

// EnvPrefix is the prefix for environment variable overrides (SUBPREP_*)
const EnvPrefix = "SUBPREP"

// ConfigSearchPath describes one location a config file is looked up in
type ConfigSearchPath struct {
	Type   string // user, home, system, cwd or explicit
	Path   string // Full path to the config file
	Exists bool
	InUse  bool
}

// InitViper initializes Viper with proper search paths and defaults
// Priority (highest to lowest):
// 1. Command-line flags (handled by cobra)
// 2. Environment variables (SUBPREP_*)
// 3. Explicit config file (--config)
// 4. User config file (~/.config/subprep/config.yaml)
// 5. System config file (/etc/subprep/config.yaml)
// 6. Defaults
func InitViper(configFile string) error {
	if configFile != "" {
		viper.SetConfigFile(configFile)
		// Files without a .yaml/.yml extension are still read as YAML
		if !utils.IsYaml(configFile) {
			viper.SetConfigType(ConfigType)
		}
	} else {
		viper.SetConfigName(ConfigFilename)
		viper.SetConfigType(ConfigType)
		for _, sp := range searchDirs() {
			viper.AddConfigPath(sp.dir)
		}
	}

	// Environment variables: resource_types -> SUBPREP_RESOURCE_TYPES
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set defaults (lowest priority)
	setDefaults()

	// Read config file (non-fatal if not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	utils.PrintDebug("Using config file: %s", utils.StylePath(viper.ConfigFileUsed()))
	return nil
}

// setDefaults sets default values for all config keys
func setDefaults() {
	viper.SetDefault("resource_types", resource.DefaultTypes())
	viper.SetDefault("security_enabled", false)
	viper.SetDefault("kinit_bin", "kinit")
	viper.SetDefault("klist_bin", "klist")
	viper.SetDefault("default_num_workers", 1)
	viper.SetDefault("output", OutputTable)
}

type searchDir struct {
	kind string
	dir  string
}

// searchDirs returns config directories in lookup order (highest priority first)
func searchDirs() []searchDir {
	var dirs []searchDir
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, searchDir{"user", filepath.Join(userConfigDir, "subprep")})
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, searchDir{"home", filepath.Join(home, ".subprep")})
	}
	dirs = append(dirs, searchDir{"system", "/etc/subprep"})
	dirs = append(dirs, searchDir{"cwd", "."})
	return dirs
}

// GetConfigSearchPaths returns every config file location and whether it is in use
func GetConfigSearchPaths() []ConfigSearchPath {
	used := viper.ConfigFileUsed()
	if used != "" {
		if abs, err := filepath.Abs(used); err == nil {
			used = abs
		}
	}

	var paths []ConfigSearchPath
	for _, sd := range searchDirs() {
		p := filepath.Join(sd.dir, ConfigFilename+"."+ConfigType)
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		paths = append(paths, ConfigSearchPath{
			Type:   sd.kind,
			Path:   p,
			Exists: utils.FileExists(p),
			InUse:  used != "" && abs == used,
		})
	}

	// An explicit --config file is not part of the search list
	if used != "" {
		found := false
		for _, p := range paths {
			if p.InUse {
				found = true
				break
			}
		}
		if !found {
			paths = append([]ConfigSearchPath{{Type: "explicit", Path: used, Exists: true, InUse: true}}, paths...)
		}
	}
	return paths
}

// GetUserConfigPath returns the path to the user config file
func GetUserConfigPath() (string, error) {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".subprep", ConfigFilename+"."+ConfigType), nil
	}

	return filepath.Join(userConfigDir, "subprep", ConfigFilename+"."+ConfigType), nil
}

// SaveConfig saves current Viper config to user config file
func SaveConfig() error {
	configPath, err := GetUserConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return SaveConfigTo(configPath)
}

// SaveConfigTo saves current Viper config to the given path
func SaveConfigTo(configPath string) error {
	if err := utils.EnsureDir(filepath.Dir(configPath)); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ValidateBinary checks if a binary exists and is executable
func ValidateBinary(binPath string) bool {
	if binPath == "" {
		return false
	}

	// If it's a full path, check directly
	if filepath.IsAbs(binPath) {
		info, err := os.Stat(binPath)
		if err != nil {
			return false
		}
		// Check if it's executable (unix-style check)
		return info.Mode()&0111 != 0
	}

	// Otherwise, try to find it in PATH
	_, err := exec.LookPath(binPath)
	return err == nil
}

// LoadFromViper loads config from Viper into Global struct
func LoadFromViper() {
	if types := splitList(viper.GetStringSlice("resource_types")); len(types) > 0 {
		Global.ResourceTypes = types
	} else {
		utils.PrintWarning("resource_types is empty; using defaults")
	}

	Global.SecurityEnabled = viper.GetBool("security_enabled")

	if bin := viper.GetString("kinit_bin"); bin != "" {
		Global.KinitBin = bin
	}
	if bin := viper.GetString("klist_bin"); bin != "" {
		Global.KlistBin = bin
	}

	if n := viper.GetInt("default_num_workers"); n > 0 {
		Global.DefaultNumWorkers = n
	}

	if output := viper.GetString("output"); output != "" {
		if IsValidOutput(output) {
			Global.Output = output
		} else {
			utils.PrintWarning("Unknown output format %q in config; using %s", output, Global.Output)
		}
	}
}

// splitList flattens list values that arrived as a comma-separated string
// (e.g. SUBPREP_RESOURCE_TYPES=memory-mb,vcores) and drops blanks.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}
