// Package prompt implements the interactive question boundary used by the
// setup wizard: single selection from a numbered list, multi-selection,
// yes/no confirmation, and free-form input. All prompts read and write
// through injected streams so flows can be scripted in tests.
package prompt
