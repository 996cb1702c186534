// Package plugin implements the feature registry of the setup wizard and its
// built-in plugins (styling, state management, testing, lint/format). Each
// plugin presents its own multi-select lazily and issues one package-manager
// install per chosen library inside the app directory. A plugin failure is
// contained: it aborts that plugin's remaining installs but never the rest
// of the setup.
package plugin
