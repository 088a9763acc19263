package cli

import (
	"os"

	"github.com/ecc-labs/ecc/internal/branding"
	"github.com/ecc-labs/ecc/internal/config"
	"github.com/ecc-labs/ecc/internal/updater"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` installs agent, command, and rule definitions into your
per-user Claude directory and merges hook and MCP server configuration with
your existing settings without destroying prior customizations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Skip the banner for commands that report version state themselves.
		for c := cmd; c != nil; c = c.Parent() {
			if c.Name() == "version" || c.Name() == "config" {
				return
			}
		}

		// Non-blocking banner from cached version check.
		u := updater.New(buildVersion)
		u.CheckAndPrintBanner(os.Stderr, config.Dir())
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
