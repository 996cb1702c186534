// Package setup contains the guided-setup orchestrator: the state machine
// that loads preferences, walks the user through the wizard prompts, runs the
// external scaffold generator, installs dependencies, applies the selected
// feature plugins, initializes git, and supervises the dev-server launch
// until it reports ready. The shared Context record it threads through the
// flow is the only channel between the orchestrator and plugins.
package setup
