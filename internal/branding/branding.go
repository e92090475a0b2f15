// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package; //go:embed bakes it into the
// binary, so a rebuild is all a rebrand takes.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

// B holds the parsed branding values, loaded once on first access.
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
	GoModule    string `yaml:"go_module"`
	GitHubRepo  string `yaml:"github_repo"`
	HubBaseURL  string `yaml:"hub_base_url"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "skillyard",
			DisplayName: "Skillyard",
			Description: "Catalog manager for AI assistant skill bundles",
			HomeDir:     ".skillyard",
			EnvPrefix:   "SKILLYARD",
			GoModule:    "github.com/skillyard-labs/skillyard",
			GitHubRepo:  "skillyard-labs/skillyard",
			HubBaseURL:  "https://skills.sh",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "skillyard").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Skillyard").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".skillyard").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "SKILLYARD").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path recorded in branding.yaml. Forks
// rewrite their import paths against it; nothing consumes it at runtime.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string (e.g., "skillyard-labs/skillyard").
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// HubBaseURL returns the default base URL of the public skill hub.
func HubBaseURL() string { load(); return defaults.HubBaseURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "SKILLYARD_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
