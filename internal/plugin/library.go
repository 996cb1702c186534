package plugin

import (
	"context"
	"fmt"
	"strings"

	"github.com/kingjethro999/best-web-starter/internal/generator"
	"github.com/kingjethro999/best-web-starter/internal/prompt"
	"github.com/kingjethro999/best-web-starter/internal/runner"
	"github.com/kingjethro999/best-web-starter/internal/setup"
	"github.com/kingjethro999/best-web-starter/internal/ui"
)

// libraryOption is one selectable library in a library plugin's multi-select.
// An option with no packages is a sentinel: it is presented but never
// installs anything. PostInstall is an extra one-shot command issued after a
// successful install (e.g. the Tailwind initializer).
type libraryOption struct {
	Label       string
	Packages    []string
	PostInstall []string
}

// libraryPlugin is the shared shape of the built-in plugins: a lazy
// multi-select of libraries, one package-manager install per selection, all
// run inside the app directory. The first failing step aborts the remaining
// installs of this plugin only.
type libraryPlugin struct {
	name        string
	description string
	question    string
	prompter    *prompt.Prompter
	runner      runner.Runner
	options     []libraryOption
}

func (p *libraryPlugin) Name() string        { return p.name }
func (p *libraryPlugin) Description() string { return p.description }

func (p *libraryPlugin) Apply(ctx context.Context, sc *setup.Context) error {
	labels := make([]string, len(p.options))
	byLabel := make(map[string]libraryOption, len(p.options))
	for i, opt := range p.options {
		labels[i] = opt.Label
		byLabel[opt.Label] = opt
	}

	selected, err := p.prompter.MultiSelect(p.question, labels)
	if err != nil {
		return &ApplyError{Plugin: p.name, Err: err}
	}
	if len(selected) == 0 {
		ui.Info("[INFO] No %s libraries selected\n", p.name)
		return nil
	}

	for _, label := range selected {
		opt := byLabel[label]
		if len(opt.Packages) == 0 {
			// Sentinel option: nothing to install.
			ui.Debug("[DEBUG] %s: %q needs no install\n", p.name, label)
			continue
		}

		ui.Info("[INFO] Installing %s...\n", label)
		if err := p.runInApp(ctx, sc, generator.AddCommand(sc.PackageManager, opt.Packages...)); err != nil {
			return &ApplyError{Plugin: p.name, Err: fmt.Errorf("installing %s: %w", label, err)}
		}

		if len(opt.PostInstall) > 0 {
			ui.Info("[INFO] Initializing %s...\n", label)
			if err := p.runInApp(ctx, sc, opt.PostInstall); err != nil {
				return &ApplyError{Plugin: p.name, Err: fmt.Errorf("initializing %s: %w", label, err)}
			}
		}
	}
	return nil
}

// runInApp runs argv inside the app directory and converts a non-zero exit
// into an error.
func (p *libraryPlugin) runInApp(ctx context.Context, sc *setup.Context, argv []string) error {
	out, err := p.runner.Run(ctx, sc.AppDir, argv[0], argv[1:]...)
	if err != nil {
		return err
	}
	if out.ExitCode != 0 {
		return fmt.Errorf("%s exited with status %d: %s",
			strings.Join(argv, " "), out.ExitCode, strings.TrimSpace(out.Stderr))
	}
	return nil
}
