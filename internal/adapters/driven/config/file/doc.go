// Package file provides a TOML-backed implementation of the
// SettingsStore port. Settings live in a single config.toml inside
// the docstat config directory.
package file
