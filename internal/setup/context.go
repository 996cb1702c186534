package setup

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kingjethro999/best-web-starter/internal/generator"
)

// Context is the shared record threaded through the whole guided-setup flow.
// It is created once per invocation, filled in as prompt answers arrive, and
// is the only channel of information between the orchestrator and plugins.
type Context struct {
	AppName        string
	AppDir         string // always <cwd>/<AppName>
	PackageManager generator.PackageManager
	Framework      generator.Framework
	Template       string
	Features       []string
}

// NewContext builds a Context rooted in the current working directory.
func NewContext(appName string) (*Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}
	return &Context{
		AppName: appName,
		AppDir:  filepath.Join(cwd, appName),
	}, nil
}

// HasFeature reports whether the user selected the named feature.
func (c *Context) HasFeature(name string) bool {
	for _, f := range c.Features {
		if f == name {
			return true
		}
	}
	return false
}
