package setup

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kingjethro999/best-web-starter/internal/generator"
	"github.com/kingjethro999/best-web-starter/internal/prefs"
	"github.com/kingjethro999/best-web-starter/internal/prompt"
	"github.com/kingjethro999/best-web-starter/internal/runner"
	"github.com/kingjethro999/best-web-starter/internal/ui"
)

// State names the phases of the guided-setup flow.
type State string

const (
	StateIdle                  State = "idle"
	StateCollectingPreferences State = "collecting-preferences"
	StatePrompting             State = "prompting"
	StateScaffolding           State = "scaffolding"
	StateInstallingDeps        State = "installing-deps"
	StateApplyingPlugins       State = "applying-plugins"
	StateInitializingVCS       State = "initializing-vcs"
	StateLaunchingServer       State = "launching-server"
	StateReady                 State = "ready"
	StateFailed                State = "failed"
)

// Fatal stage errors. Anything wrapping these terminates the run with a
// non-zero exit; plugin and VCS failures are reported but never fatal.
var (
	ErrScaffold = errors.New("scaffold failed")
	ErrInstall  = errors.New("dependency install failed")
)

// FeatureRegistry applies a selected optional feature to the shared context.
type FeatureRegistry interface {
	Apply(ctx context.Context, name string, sc *Context) error
	Names() []string
}

// DevLauncher starts the long-lived dev server and reports readiness.
type DevLauncher interface {
	Launch(ctx context.Context, dir string, argv []string) (<-chan runner.ReadyEvent, error)
}

// FeatureGit is the sentinel feature handled by the orchestrator itself
// rather than by a plugin.
const FeatureGit = "git"

// Options carries the CLI flag pre-answers. A non-empty value suppresses the
// corresponding prompt.
type Options struct {
	PackageManager string
	Template       string
	SkipGit        bool
}

// Orchestrator drives the whole guided-setup flow: preference loading,
// prompting, scaffolding, dependency install, plugin application, VCS init,
// and dev-server supervision. All collaborators are injected.
type Orchestrator struct {
	Prompter *prompt.Prompter
	Runner   runner.Runner
	Registry FeatureRegistry
	Server   DevLauncher
	Options  Options

	// WorkDir is the directory the app is created under. Empty means the
	// current working directory.
	WorkDir string

	// LoadPrefs and SavePrefs default to the preference store; settable for
	// testing.
	LoadPrefs func() *prefs.Preferences
	SavePrefs func(*prefs.Preferences) error

	state State
}

// New returns an Orchestrator wired to the real preference store.
func New(prompter *prompt.Prompter, run runner.Runner, registry FeatureRegistry, server DevLauncher, opts Options) *Orchestrator {
	return &Orchestrator{
		Prompter:  prompter,
		Runner:    run,
		Registry:  registry,
		Server:    server,
		Options:   opts,
		LoadPrefs: prefs.Load,
		SavePrefs: prefs.Save,
		state:     StateIdle,
	}
}

// State returns the current phase of the flow.
func (o *Orchestrator) State() State { return o.state }

// Run executes the full setup flow for appName. It returns nil only when the
// dev server reported ready. A half-created app directory is deliberately
// left on disk when a fatal step fails, so the user can inspect and retry.
func (o *Orchestrator) Run(ctx context.Context, appName string) error {
	o.state = StateCollectingPreferences
	p := o.LoadPrefs()

	sc, err := o.newContext(appName)
	if err != nil {
		return o.fail(err)
	}

	o.state = StatePrompting
	if err := o.promptPhase(p, sc); err != nil {
		return o.fail(err)
	}

	o.state = StateScaffolding
	if err := o.scaffold(ctx, sc); err != nil {
		return o.fail(err)
	}

	o.state = StateInstallingDeps
	if err := o.installDeps(ctx, sc); err != nil {
		return o.fail(err)
	}

	o.state = StateApplyingPlugins
	o.applyPlugins(ctx, sc)

	if sc.HasFeature(FeatureGit) {
		o.state = StateInitializingVCS
		o.initVCS(ctx, sc)
	}

	o.state = StateLaunchingServer
	if err := o.launchServer(ctx, sc); err != nil {
		return o.fail(err)
	}

	o.state = StateReady
	return nil
}

func (o *Orchestrator) fail(err error) error {
	o.state = StateFailed
	return err
}

func (o *Orchestrator) newContext(appName string) (*Context, error) {
	if o.WorkDir != "" {
		return &Context{
			AppName: appName,
			AppDir:  filepath.Join(o.WorkDir, appName),
		}, nil
	}
	return NewContext(appName)
}

// promptPhase runs the sequential elicitation: framework, template (options
// depend on the framework answer), package manager, features, and the
// optional save-as-defaults confirmation.
func (o *Orchestrator) promptPhase(p *prefs.Preferences, sc *Context) error {
	frameworks := generator.Frameworks()
	names := make([]string, len(frameworks))
	for i, f := range frameworks {
		names[i] = string(f)
	}

	answer, err := o.Prompter.Select("Which framework do you want to use?", names, p.DefaultFramework)
	if err != nil {
		return err
	}
	framework, ok := generator.ParseFramework(answer)
	if !ok {
		return fmt.Errorf("unsupported framework %q", answer)
	}
	sc.Framework = framework

	sc.Template = o.Options.Template
	if sc.Template == "" {
		options := generator.TemplateOptions(framework)
		sc.Template, err = o.Prompter.Select("Which template?", options, options[0])
		if err != nil {
			return err
		}
	}

	pmAnswer := o.Options.PackageManager
	if pmAnswer == "" {
		managers := generator.PackageManagers()
		pmNames := make([]string, len(managers))
		for i, m := range managers {
			pmNames[i] = string(m)
		}
		pmAnswer, err = o.Prompter.Select("Which package manager?", pmNames, p.PackageManager)
		if err != nil {
			return err
		}
	}
	pm, ok := generator.ParsePackageManager(pmAnswer)
	if !ok {
		return fmt.Errorf("unsupported package manager %q", pmAnswer)
	}
	sc.PackageManager = pm

	featureChoices := o.Registry.Names()
	if !o.Options.SkipGit {
		featureChoices = append(featureChoices, FeatureGit)
	}
	sc.Features, err = o.Prompter.MultiSelect("Which optional features do you want?", featureChoices)
	if err != nil {
		return err
	}

	save, err := o.Prompter.Confirm("Save these choices as defaults?", false)
	if err != nil {
		return err
	}
	if save {
		p.PackageManager = string(sc.PackageManager)
		p.DefaultFramework = string(sc.Framework)
		p.GitInit = sc.HasFeature(FeatureGit)
		if err := o.SavePrefs(p); err != nil {
			// ConfigSaveError: reported, non-fatal.
			ui.Warn("[WARN] Could not save preferences: %v\n", err)
		}
	}

	return nil
}

func (o *Orchestrator) scaffold(ctx context.Context, sc *Context) error {
	argv := generator.ScaffoldCommand(sc.Framework, sc.Template, sc.AppName)
	if len(argv) == 0 {
		return fmt.Errorf("%w: no scaffold command for framework %q", ErrScaffold, sc.Framework)
	}

	ui.Step("Creating %s app %q...\n", sc.Framework, sc.AppName)
	workDir := filepath.Dir(sc.AppDir)
	if err := o.runStep(ctx, workDir, argv); err != nil {
		return fmt.Errorf("%w: %v", ErrScaffold, err)
	}
	return nil
}

func (o *Orchestrator) installDeps(ctx context.Context, sc *Context) error {
	argv := generator.InstallCommand(sc.PackageManager)

	ui.Step("Installing dependencies with %s...\n", sc.PackageManager)
	if err := o.runStep(ctx, sc.AppDir, argv); err != nil {
		return fmt.Errorf("%w: %v", ErrInstall, err)
	}
	return nil
}

// applyPlugins invokes every selected feature except git, in selection order.
// A single plugin's failure is reported and does not abort its siblings.
func (o *Orchestrator) applyPlugins(ctx context.Context, sc *Context) {
	for _, feature := range sc.Features {
		if feature == FeatureGit {
			continue
		}
		if err := o.Registry.Apply(ctx, feature, sc); err != nil {
			ui.Error("[ERROR] Feature %q failed: %v\n", feature, err)
		}
	}
}

// initVCS initializes a repository, stages everything, and creates the
// initial commit. Failures are reported but never fatal.
func (o *Orchestrator) initVCS(ctx context.Context, sc *Context) {
	ui.Step("Initializing git repository...\n")
	steps := [][]string{
		{"git", "init"},
		{"git", "add", "-A"},
		{"git", "commit", "-m", "Initial commit from best-web-starter"},
	}
	for _, argv := range steps {
		if err := o.runStep(ctx, sc.AppDir, argv); err != nil {
			ui.Warn("[WARN] Git setup failed: %v\n", err)
			return
		}
	}
}

// launchServer spawns the dev server and blocks until its output contains
// the listening marker, then prints the banner and leaves the process
// running. There is no timeout when the marker never appears; the user
// cancels out-of-band.
func (o *Orchestrator) launchServer(ctx context.Context, sc *Context) error {
	argv := generator.DevCommand(sc.PackageManager)

	ui.Step("Starting the dev server (%s)...\n", strings.Join(argv, " "))
	ready, err := o.Server.Launch(ctx, sc.AppDir, argv)
	if err != nil {
		return err
	}

	select {
	case ev, ok := <-ready:
		if !ok {
			return fmt.Errorf("dev server exited before reporting ready")
		}
		ui.Bannerln(sc.AppName, ev.LocalURL, ev.NetworkURL)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// runStep runs one external command to completion, turning a non-zero exit
// into an error carrying the command line and captured stderr.
func (o *Orchestrator) runStep(ctx context.Context, dir string, argv []string) error {
	ui.Debug("[DEBUG] Running %s in %s\n", strings.Join(argv, " "), dir)
	out, err := o.Runner.Run(ctx, dir, argv[0], argv[1:]...)
	if err != nil {
		return err
	}
	if out.ExitCode != 0 {
		detail := strings.TrimSpace(out.Stderr)
		if detail == "" {
			detail = strings.TrimSpace(out.Stdout)
		}
		return fmt.Errorf("%s exited with status %d: %s", strings.Join(argv, " "), out.ExitCode, detail)
	}
	return nil
}
