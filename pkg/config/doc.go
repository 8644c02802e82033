// Package config handles configuration management for gensec.
// It layers embedded defaults, a user TOML file, GENSEC_ environment
// variables and command-line flags, then resolves the result into
// generation parameters.
package config
