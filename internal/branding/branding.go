// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package and rebuild; Go's //go:embed
// bakes the values into the binary.
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
	CLIName          string `yaml:"cli_name"`
	DisplayName      string `yaml:"display_name"`
	Description      string `yaml:"description"`
	HomeDir          string `yaml:"home_dir"`
	ClientConfigFile string `yaml:"client_config_file"`
	EnvPrefix        string `yaml:"env_prefix"`
	GitHubRepo       string `yaml:"github_repo"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:          "ecc",
			DisplayName:      "Everything Claude Code",
			Description:      "Installer for battle-tested Claude Code configurations",
			HomeDir:          ".claude",
			ClientConfigFile: ".claude.json",
			EnvPrefix:        "ECC",
			GitHubRepo:       "ecc-labs/everything-claude-code",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "ecc").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".claude").
func HomeDir() string { load(); return defaults.HomeDir }

// ClientConfigFile returns the client config file name under $HOME
// (e.g., ".claude.json").
func ClientConfigFile() string { load(); return defaults.ClientConfigFile }

// EnvPrefix returns the environment variable prefix (e.g., "ECC").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GitHubRepo returns the "owner/repo" string used for release checks.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("SOURCE") → "ECC_SOURCE".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
