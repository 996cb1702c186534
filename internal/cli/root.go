package cli

import (
	"github.com/spf13/cobra"

	"github.com/kingjethro999/best-web-starter/internal/branding"
	"github.com/kingjethro999/best-web-starter/internal/ui"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` walks you through creating a new front-end web project:
pick a framework, template, and package manager, layer in styling and
state-management libraries, initialize git, and start the dev server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with build info injected via ldflags.
// Fatal errors are printed here so every failure path ends with a
// human-readable message.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		ui.Error("[ERROR] %v\n", err)
	}
	return err
}
