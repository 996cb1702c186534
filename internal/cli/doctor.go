package cli

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kingjethro999/best-web-starter/internal/prefs"
	"github.com/kingjethro999/best-web-starter/internal/ui"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the tools the wizard depends on",
	Long: `Probe for Node.js, git, and the supported package managers and report
which are available. The wizard needs node and at least npm; yarn, pnpm,
and git are optional.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tools := []struct {
			name     string
			args     []string
			required bool
		}{
			{"node", []string{"--version"}, true},
			{"npm", []string{"--version"}, true},
			{"yarn", []string{"--version"}, false},
			{"pnpm", []string{"--version"}, false},
			{"git", []string{"--version"}, false},
		}

		missingRequired := false
		for _, tool := range tools {
			version, err := probeTool(tool.name, tool.args)
			if err != nil {
				if tool.required {
					missingRequired = true
					ui.Error("[ERROR] %s: not found (required)\n", tool.name)
				} else {
					ui.Warn("[WARN] %s: not found\n", tool.name)
				}
				continue
			}
			ui.Info("[INFO] %s: %s\n", tool.name, version)
		}

		detected := prefs.DetectPackageManager()
		fmt.Printf("\nDefault package manager: %s\n", detected)

		if missingRequired {
			return fmt.Errorf("required tools are missing")
		}
		return nil
	},
}

func probeTool(name string, args []string) (string, error) {
	bin, err := exec.LookPath(name)
	if err != nil {
		return "", err
	}
	out, err := exec.Command(bin, args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
