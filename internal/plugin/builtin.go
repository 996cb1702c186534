package plugin

import (
	"github.com/kingjethro999/best-web-starter/internal/prompt"
	"github.com/kingjethro999/best-web-starter/internal/runner"
)

// Feature names the built-in plugins register under.
const (
	FeatureStyling = "styling"
	FeatureState   = "state"
	FeatureTesting = "testing"
	FeatureLint    = "lint"
)

// NewStylingPlugin returns the styling library plugin. Tailwind carries a
// one-shot initializer that runs after its install.
func NewStylingPlugin(prompter *prompt.Prompter, run runner.Runner) Plugin {
	return &libraryPlugin{
		name:        FeatureStyling,
		description: "CSS frameworks and preprocessors",
		question:    "Which styling libraries do you want?",
		prompter:    prompter,
		runner:      run,
		options: []libraryOption{
			{
				Label:       "Tailwind CSS",
				Packages:    []string{"tailwindcss", "postcss", "autoprefixer"},
				PostInstall: []string{"npx", "tailwindcss", "init", "-p"},
			},
			{Label: "Bootstrap", Packages: []string{"bootstrap"}},
			{Label: "Sass", Packages: []string{"sass"}},
			{Label: "styled-components", Packages: []string{"styled-components"}},
		},
	}
}

// NewStatePlugin returns the state-management plugin. The "None" option is a
// sentinel that installs nothing.
func NewStatePlugin(prompter *prompt.Prompter, run runner.Runner) Plugin {
	return &libraryPlugin{
		name:        FeatureState,
		description: "State-management libraries",
		question:    "Which state-management library do you want?",
		prompter:    prompter,
		runner:      run,
		options: []libraryOption{
			{Label: "Redux Toolkit", Packages: []string{"@reduxjs/toolkit", "react-redux"}},
			{Label: "Zustand", Packages: []string{"zustand"}},
			{Label: "MobX", Packages: []string{"mobx", "mobx-react-lite"}},
			{Label: "None (built-in state)"},
		},
	}
}

// NewTestingPlugin returns the test tooling plugin.
func NewTestingPlugin(prompter *prompt.Prompter, run runner.Runner) Plugin {
	return &libraryPlugin{
		name:        FeatureTesting,
		description: "Test runners and utilities",
		question:    "Which testing tools do you want?",
		prompter:    prompter,
		runner:      run,
		options: []libraryOption{
			{Label: "Vitest", Packages: []string{"vitest"}},
			{Label: "Testing Library", Packages: []string{"@testing-library/react", "@testing-library/jest-dom"}},
			{Label: "Playwright", Packages: []string{"@playwright/test"}},
		},
	}
}

// NewLintPlugin returns the lint/format plugin.
func NewLintPlugin(prompter *prompt.Prompter, run runner.Runner) Plugin {
	return &libraryPlugin{
		name:        FeatureLint,
		description: "Linting and formatting tools",
		question:    "Which lint/format tools do you want?",
		prompter:    prompter,
		runner:      run,
		options: []libraryOption{
			{Label: "ESLint", Packages: []string{"eslint"}},
			{Label: "Prettier", Packages: []string{"prettier"}},
		},
	}
}
