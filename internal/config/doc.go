// Package config manages user-level settings stored at ~/.bws/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default verbosity used by the create wizard.
package config
