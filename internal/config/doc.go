// Package config loads, normalizes, and validates lineage configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. Configuration resolves from an explicit
// --config path, then ~/.config/lineage/config.toml, then a project-local
// lineage.toml; a missing file falls back to defaults so the tool works out
// of the box against a local data directory.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
