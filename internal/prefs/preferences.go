package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kingjethro999/best-web-starter/internal/branding"
	"github.com/kingjethro999/best-web-starter/internal/generator"
	"github.com/kingjethro999/best-web-starter/internal/ui"
)

const preferencesFile = "preferences.json"

// Preferences holds the persisted user defaults for the wizard.
type Preferences struct {
	PackageManager   string   `json:"packageManager"`
	DefaultFramework string   `json:"defaultFramework"`
	GitInit          bool     `json:"gitInit"`
	Plugins          []string `json:"plugins"`

	// Older releases wrote the framework under defaultTemplate; folded into
	// DefaultFramework on load.
	LegacyTemplate string `json:"defaultTemplate,omitempty"`
}

// FilePath returns the path to the preferences file (~/.bws/preferences.json).
// The BWS_PREFS environment variable overrides it.
func FilePath() (string, error) {
	if v := os.Getenv(branding.EnvVar("PREFS")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir(), preferencesFile), nil
}

// Defaults returns the preferences used when nothing valid is on disk:
// auto-detected package manager, react, git enabled, no plugins.
func Defaults() *Preferences {
	return &Preferences{
		PackageManager:   string(DetectPackageManager()),
		DefaultFramework: string(generator.React),
		GitInit:          true,
	}
}

// Load reads the persisted preferences. It never fails outward: a missing,
// unreadable, malformed, or schema-invalid file degrades to Defaults, with a
// warning for anything other than a simply absent file.
func Load() *Preferences {
	path, err := FilePath()
	if err != nil {
		ui.Warn("[WARN] Could not resolve preferences path: %v. Using defaults.\n", err)
		return Defaults()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			ui.Debug("[DEBUG] No preferences file at %s, using defaults\n", path)
		} else {
			ui.Warn("[WARN] Could not read preferences: %v. Using defaults.\n", err)
		}
		return Defaults()
	}

	result, err := Validate(data)
	if err != nil {
		ui.Warn("[WARN] Preferences file %s is not valid JSON: %v. Using defaults.\n", path, err)
		return Defaults()
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			ui.Warn("[WARN] Preferences %s: %s\n", issue.Path, issue.Message)
		}
		ui.Warn("[WARN] Preferences file %s failed validation. Using defaults.\n", path)
		return Defaults()
	}

	var p Preferences
	if err := json.Unmarshal(data, &p); err != nil {
		ui.Warn("[WARN] Could not parse preferences: %v. Using defaults.\n", err)
		return Defaults()
	}

	// Fold the legacy key and fill gaps with defaults so callers always see
	// a complete value.
	if p.DefaultFramework == "" {
		p.DefaultFramework = p.LegacyTemplate
	}
	p.LegacyTemplate = ""
	if _, ok := generator.ParsePackageManager(p.PackageManager); !ok {
		p.PackageManager = string(DetectPackageManager())
	}
	if p.DefaultFramework == "" {
		p.DefaultFramework = string(generator.React)
	}

	return &p
}

// Save writes the whole preferences document. Failure is returned for the
// caller to report; it is never fatal to a run.
func Save(p *Preferences) error {
	path, err := FilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating preferences directory: %w", err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing preferences to %s: %w", path, err)
	}
	return nil
}
