package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

// Colorized printf-style functions for the different message levels.
var (
	Info  = color.New(color.FgGreen).PrintfFunc()
	Warn  = color.New(color.FgHiMagenta).PrintfFunc()
	Error = color.New(color.FgRed).PrintfFunc()
	Step  = color.New(color.FgCyan, color.Bold).PrintfFunc()
)

// Debug prints cyan debug messages once Init enables them; otherwise a no-op.
var Debug func(format string, a ...any) = func(format string, a ...any) {}

// Init enables or disables debug output for the whole process.
func Init(verbose bool) {
	if verbose {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}

var (
	bannerTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF"))

	bannerBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 2)
)

// ReadyBanner renders the boxed success banner shown once the dev server is
// listening. networkURL may be empty when the server only binds locally.
func ReadyBanner(w io.Writer, appName, localURL, networkURL string) {
	lines := []string{
		bannerTitle.Render(fmt.Sprintf("%s is ready!", appName)),
		"",
		fmt.Sprintf("Local:   %s", localURL),
	}
	if networkURL != "" {
		lines = append(lines, fmt.Sprintf("Network: %s", networkURL))
	}
	fmt.Fprintln(w, bannerBox.Render(strings.Join(lines, "\n")))
}

// Bannerln prints the banner to stdout.
func Bannerln(appName, localURL, networkURL string) {
	ReadyBanner(os.Stdout, appName, localURL, networkURL)
}
