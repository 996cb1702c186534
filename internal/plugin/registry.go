package plugin

import (
	"context"
	"fmt"

	"github.com/kingjethro999/best-web-starter/internal/prompt"
	"github.com/kingjethro999/best-web-starter/internal/runner"
	"github.com/kingjethro999/best-web-starter/internal/setup"
	"github.com/kingjethro999/best-web-starter/internal/ui"
)

// Plugin is an optional add-on step of the setup flow. Plugins receive only
// the shared context; they elicit their own choices lazily in Apply so the
// user is never prompted for features they did not select.
type Plugin interface {
	Name() string
	Description() string
	Apply(ctx context.Context, sc *setup.Context) error
}

// ApplyError reports the failure of a single plugin. It never aborts sibling
// plugins or the overall setup.
type ApplyError struct {
	Plugin string
	Err    error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("plugin %s: %v", e.Plugin, e.Err)
}

func (e *ApplyError) Unwrap() error { return e.Err }

// Registry maps feature names to plugins. It is an explicit value passed into
// the orchestrator; there is no ambient global registry. Registration order
// is preserved for listing.
type Registry struct {
	order   []string
	plugins map[string]Plugin
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{plugins: make(map[string]Plugin)}
}

// Register inserts or overwrites the plugin under its own name.
func (r *Registry) Register(p Plugin) {
	name := p.Name()
	if _, exists := r.plugins[name]; !exists {
		r.order = append(r.order, name)
	}
	r.plugins[name] = p
}

// Apply invokes the named plugin with the shared context. An unregistered
// name is a warned no-op, never an error.
func (r *Registry) Apply(ctx context.Context, name string, sc *setup.Context) error {
	p, ok := r.plugins[name]
	if !ok {
		ui.Warn("[WARN] No plugin registered for feature %q, skipping\n", name)
		return nil
	}
	return p.Apply(ctx, sc)
}

// Names returns the registered plugin names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Defaults returns a registry with all built-in plugins registered.
func Defaults(prompter *prompt.Prompter, run runner.Runner) *Registry {
	r := NewRegistry()
	r.Register(NewStylingPlugin(prompter, run))
	r.Register(NewStatePlugin(prompter, run))
	r.Register(NewTestingPlugin(prompter, run))
	r.Register(NewLintPlugin(prompter, run))
	return r
}
