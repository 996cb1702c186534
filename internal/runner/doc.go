// Package runner is the process boundary of the wizard. It provides a
// Runner interface for synchronous call-and-wait execution of external
// commands (scaffold generators, package managers, git) and a DevServer type
// that supervises the long-lived dev-server child, scanning its output for
// the listening marker and extracting the local and network URLs.
package runner
