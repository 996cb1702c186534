// Package prefs is the preference store: it loads and saves the user's
// persisted defaults (package manager, framework, git preference, plugin
// list) from ~/.bws/preferences.json, validating the document against an
// embedded JSON Schema. Loading never fails outward; anything wrong with the
// file degrades to detected defaults with a warning. It also houses the
// package-manager auto-detection probe.
package prefs
