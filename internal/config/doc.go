// Package config loads, normalizes, and validates sortd configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and canonicalizes custom category tables so
// downstream code sees title-cased names and lowercase dot-prefixed
// extensions. The Config type centralizes the state directory (ledger +
// lock), log directory, and organize knobs.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors.
package config
