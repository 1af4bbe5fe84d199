// Package config loads Sigscan's YAML configuration from repo-local and
// global locations. Precedence is resolved by the CLI layer: flags beat the
// local file, which beats the global file.
package config
