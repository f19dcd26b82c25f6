// Package config loads, normalizes, and validates larder configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// LARDER_DATA_DIR and LARDER_UNIT_SYSTEM. The Config type centralizes every
// knob the CLI needs: where the database lives, which unit system to display,
// how the shopping list labels manual items, and how logs are written.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical enum values, and clear validation errors.
package config
