package cli

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/kingjethro999/best-web-starter/internal/generator"
	"github.com/kingjethro999/best-web-starter/internal/plugin"
	"github.com/kingjethro999/best-web-starter/internal/prompt"
	"github.com/kingjethro999/best-web-starter/internal/runner"
	"github.com/kingjethro999/best-web-starter/internal/setup"
	"github.com/kingjethro999/best-web-starter/internal/ui"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

var (
	createPackageManager string
	createTemplate       string
	createSkipGit        bool
	createVerbose        bool
)

func init() {
	createCmd.Flags().StringVar(&createPackageManager, "package-manager", "", "Package manager to use: npm, yarn, or pnpm (skips the prompt)")
	createCmd.Flags().StringVar(&createTemplate, "template", "", "Template to use: javascript or typescript (skips the prompt)")
	createCmd.Flags().BoolVar(&createSkipGit, "skip-git", false, "Do not offer git initialization")
	createCmd.Flags().BoolVarP(&createVerbose, "verbose", "v", false, "Stream output of external commands")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <app-name>",
	Short: "Create a new web project",
	Long: `Create a new front-end project in ./<app-name>.

The wizard asks for a framework, a template, a package manager, and optional
features, then runs the matching starter kit, installs dependencies, and
starts the dev server. Answers can be saved as defaults for the next run.

Examples:
  bws create my-app
  bws create my-app --template typescript --package-manager pnpm
  bws create my-app --skip-git`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := validateName(name); err != nil {
		return err
	}

	if createPackageManager != "" {
		if _, ok := generator.ParsePackageManager(createPackageManager); !ok {
			return fmt.Errorf("invalid --package-manager %q: expected npm, yarn, or pnpm", createPackageManager)
		}
	}
	if createTemplate != "" && createTemplate != generator.TemplateJavaScript && createTemplate != generator.TemplateTypeScript {
		return fmt.Errorf("invalid --template %q: expected javascript or typescript", createTemplate)
	}

	ui.Init(createVerbose)

	prompter := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
	run := &runner.ExecRunner{Verbose: createVerbose}
	registry := plugin.Defaults(prompter, run)
	server := &runner.DevServer{}

	orch := setup.New(prompter, run, registry, server, setup.Options{
		PackageManager: createPackageManager,
		Template:       createTemplate,
		SkipGit:        createSkipGit,
	})

	return orch.Run(cmd.Context(), name)
}

// validateName enforces the app-name shape: lowercase alphanumerics and
// hyphens, not starting with a hyphen.
func validateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid app name %q: must match %s", name, namePattern.String())
	}
	return nil
}
