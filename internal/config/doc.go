// Package config loads the demo server configuration from demo.toml.
//
// Configuration is resolved in three layers: built-in defaults, then the
// TOML file (when present), then any command-line overrides applied by the
// caller. A missing config file is not an error; the defaults stand.
package config
