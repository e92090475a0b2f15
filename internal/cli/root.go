package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillyard-labs/skillyard/internal/branding"
	"github.com/skillyard-labs/skillyard/internal/catalog"
	"github.com/skillyard-labs/skillyard/internal/config"
	"github.com/skillyard-labs/skillyard/internal/updater"
	"github.com/skillyard-labs/skillyard/internal/userdata"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` catalogs the skill bundles installed for AI coding assistants
(Claude Code, Cursor, Codex, and friends), and lets you browse, edit, copy,
and import them across tools from one place.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()

		if cmd.Name() == "version" {
			return
		}

		// Non-blocking banner from the cached version check.
		if cacheDir, err := userdata.GetCacheDir(); err == nil {
			u := updater.New(buildVersion)
			u.CheckAndPrintBanner(os.Stderr, cacheDir)
		}
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// service builds the catalog service every command talks to.
func service() (*catalog.Service, error) {
	svc, err := catalog.New()
	if err != nil {
		return nil, fmt.Errorf("initializing catalog: %w", err)
	}
	return svc, nil
}

// printJSON writes v indented to the command's stdout.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
