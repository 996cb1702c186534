// Package ui holds the console output helpers: colorized level printers for
// info/warn/error/debug messages and the boxed banner shown when the dev
// server comes up. All user-facing formatting lives here so the rest of the
// code prints through one surface.
package ui
