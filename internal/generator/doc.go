// Package generator holds the pure command tables of the wizard: the mapping
// from (framework, template, app name) to the external scaffold invocation,
// the framework-dependent template option sets, and the per-package-manager
// install/add/dev invocations. Nothing in this package touches the filesystem
// or spawns processes.
package generator
