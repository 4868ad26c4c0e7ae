// Package config handles configuration loading, parsing, and validation
// from defaults, an optional YAML file and UNITCALC_-prefixed environment
// variables. Environment variables take precedence over file values.
package config
