package prefs

import (
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/kingjethro999/best-web-starter/internal/generator"
	"github.com/kingjethro999/best-web-starter/internal/ui"
)

// VersionProber runs `<tool> --version` and returns its output. Injectable so
// detection can be tested without the tools installed.
type VersionProber func(tool string) (string, error)

func execProbe(tool string) (string, error) {
	bin, err := exec.LookPath(tool)
	if err != nil {
		return "", err
	}
	out, err := exec.Command(bin, "--version").Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// DetectPackageManager probes for an available package manager in preference
// order (yarn, then pnpm) and falls back to npm.
func DetectPackageManager() generator.PackageManager {
	return DetectWith(execProbe)
}

// DetectWith runs the detection with a custom prober. A tool counts as
// available only when its version query succeeds and the output parses as a
// semantic version.
func DetectWith(probe VersionProber) generator.PackageManager {
	for _, pm := range []generator.PackageManager{generator.Yarn, generator.PNPM} {
		out, err := probe(string(pm))
		if err != nil {
			ui.Debug("[DEBUG] %s not available: %v\n", pm, err)
			continue
		}
		if _, err := parseVersion(out); err != nil {
			ui.Debug("[DEBUG] %s version output %q did not parse: %v\n", pm, strings.TrimSpace(out), err)
			continue
		}
		return pm
	}
	return generator.NPM
}

// parseVersion strips whitespace and a leading "v" and parses as semver.
func parseVersion(out string) (*semver.Version, error) {
	s := strings.TrimSpace(out)
	s = strings.TrimPrefix(s, "v")
	return semver.NewVersion(s)
}
