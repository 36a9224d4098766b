// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is baked into the binary with //go:embed; forks edit it
// instead of touching the command sources.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	ProjectFile string `yaml:"project_file"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:     "addplugin",
			DisplayName: "addplugin",
			Description: "Scaffold dotbot plugin sources from a template",
			HomeDir:     ".addplugin",
			EnvPrefix:   "ADDPLUGIN",
			ProjectFile: "addplugin.yaml",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "addplugin").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".addplugin").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "ADDPLUGIN").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ProjectFile returns the project manifest file name looked up in the
// working directory (e.g., "addplugin.yaml").
func ProjectFile() string { load(); return defaults.ProjectFile }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("plugins_dir") → "ADDPLUGIN_PLUGINS_DIR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
