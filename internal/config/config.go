package config

import (
	"github.com/Justype/subprep/internal/resource"
)

const VERSION = "0.4.1"

// Config holds global application settings
type Config struct {
	Debug   bool
	Version string

	// ResourceTypes are the resource names the cluster recognises.
	ResourceTypes []string

	SecurityEnabled bool
	KinitBin        string
	KlistBin        string

	DefaultNumWorkers int
	Output            string // table or yaml
}

// Global holds the singleton configuration instance
var Global Config

// Output formats accepted by the output setting.
const (
	OutputTable = "table"
	OutputYAML  = "yaml"
)

func LoadDefaults() {
	Global = Config{
		Debug:   false,
		Version: VERSION,

		ResourceTypes: resource.DefaultTypes(),

		SecurityEnabled: false,
		KinitBin:        "kinit",
		KlistBin:        "klist",

		DefaultNumWorkers: 1,
		Output:            OutputTable,
	}
}

// Registry builds the resource type registry from the configured names.
func (c Config) Registry() *resource.SetRegistry {
	return resource.NewRegistry(c.ResourceTypes...)
}

// IsValidOutput reports whether format is a supported output format.
func IsValidOutput(format string) bool {
	return format == OutputTable || format == OutputYAML
}
